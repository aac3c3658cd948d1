package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

// NewBufferLogger returns a debug-level text logger writing to the returned
// buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// NewJSONBufferLogger is NewBufferLogger with one JSON object per line, for
// tests that inspect individual fields with LogEntries.
func NewJSONBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// LogEntries decodes JSON log lines written by NewJSONBufferLogger.
func LogEntries(t testing.TB, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

// FindLog returns the first entry whose msg equals msg.
func FindLog(entries []map[string]any, msg string) (map[string]any, bool) {
	for _, e := range entries {
		if e["msg"] == msg {
			return e, true
		}
	}
	return nil, false
}
