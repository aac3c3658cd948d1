// Package tables decodes the loosely typed table exports the dashboard is
// built from. Exports come in three shapes; all of them reduce to Table.
package tables

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one exported row keyed by whatever column labels the export used.
type Record map[string]any

// Table is one exported dataset. Only the fields the dashboard reads are
// kept; the export's counters and selection metadata are ignored.
type Table struct {
	Index   int
	Name    string
	Headers []string
	Data    []Record

	indexed bool
}

// Rows returns the table's records, or nil for a nil table.
func (t *Table) Rows() []Record {
	if t == nil {
		return nil
	}
	return t.Data
}

// TeamDocument is the index-addressed multi-table export for one team.
type TeamDocument struct {
	Filename string
	Tables   []Table
}

// Table indexes inside a team export.
const (
	TeamRosterIndex   = 0
	TeamStatsIndex    = 2
	TeamScheduleIndex = 3
)

// TableByIndex finds a table by its table_index, not its slice position.
// Tables whose table_index is missing or unusable never match.
func (d TeamDocument) TableByIndex(index int) (*Table, bool) {
	for i := range d.Tables {
		if d.Tables[i].indexed && d.Tables[i].Index == index {
			return &d.Tables[i], true
		}
	}
	return nil, false
}

// RecordList is the single flat table used by transfer portal exports.
type RecordList struct {
	Name    string
	Headers []string
	Data    []Record
}

// TableArrayDocument is the table-array export used for international
// prospects and RSCI rankings. Only the first table is meaningful.
type TableArrayDocument struct {
	Filename string
	Tables   []Table
}

// First returns the first table in the document.
func (d TableArrayDocument) First() (*Table, bool) {
	if len(d.Tables) == 0 {
		return nil, false
	}
	return &d.Tables[0], true
}

// DecodeTeam decodes a team export.
func DecodeTeam(raw []byte) (TeamDocument, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return TeamDocument{}, fmt.Errorf("decode team document: %w", err)
	}
	return TeamDocument{
		Filename: stringField(obj, "filename"),
		Tables:   tableList(obj["tables"]),
	}, nil
}

// DecodeRecordList decodes a flat record list export.
func DecodeRecordList(raw []byte) (RecordList, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return RecordList{}, fmt.Errorf("decode record list: %w", err)
	}
	return RecordList{
		Name:    stringField(obj, "table_name"),
		Headers: headerList(obj["headers"]),
		Data:    recordList(obj["data"]),
	}, nil
}

// DecodeTableArray decodes a table-array export.
func DecodeTableArray(raw []byte) (TableArrayDocument, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return TableArrayDocument{}, fmt.Errorf("decode table array: %w", err)
	}
	return TableArrayDocument{
		Filename: stringField(obj, "filename"),
		Tables:   tableList(obj["tables"]),
	}, nil
}

// decodeObject fails only on malformed JSON. Valid JSON of any other shape
// becomes an empty object, and every field is read leniently afterwards.
// Numbers stay json.Number so identifiers like "0012" versus 12 are not
// rounded through float64.
func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	obj, _ := v.(map[string]any)
	return obj, nil
}

func tableList(v any) []Table {
	items, _ := v.([]any)
	out := make([]Table, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		index, indexed := tableIndex(obj["table_index"])
		out = append(out, Table{
			Index:   index,
			Name:    stringField(obj, "table_name"),
			Headers: headerList(obj["headers"]),
			Data:    recordList(obj["data"]),
			indexed: indexed,
		})
	}
	return out
}

// tableIndex accepts 0, 0.0 and "0"; anything that is not a whole number is
// unusable.
func tableIndex(v any) (int, bool) {
	var raw string
	switch x := v.(type) {
	case json.Number:
		raw = x.String()
	case string:
		raw = strings.TrimSpace(x)
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func recordList(v any) []Record {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Record(obj))
		}
	}
	return out
}

func headerList(v any) []string {
	items, _ := v.([]any)
	var out []string
	for _, item := range items {
		switch x := item.(type) {
		case string:
			out = append(out, x)
		case json.Number:
			out = append(out, x.String())
		}
	}
	return out
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
