package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/app/roster"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/rating"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/sources"
	"github.com/preston-bernstein/recruiting-dashboard-service/internal/testutil"
)

// run executes dashctl against docs written to a temp dir, with the theme
// preference isolated to another temp dir.
func run(t *testing.T, docs map[string][]byte, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("SOURCES_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	dir := testutil.WriteDocuments(t, docs)
	themeFile := filepath.Join(t.TempDir(), "themeMode")
	full := append([]string{"--data-dir", dir, "--theme-file", themeFile}, args...)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(full)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRosterPrintsTable(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "roster")
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	for _, want := range []string{"Roster", "Ada Guard", "Bo Forward", "Cy Center", "82"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Ghost Walkon") {
		t.Fatalf("stats-only player should not be listed:\n%s", out)
	}
}

func TestRosterJSON(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "--json", "roster")
	if err != nil {
		t.Fatalf("roster --json: %v", err)
	}
	var rows []roster.Row
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Line.Points != 15.4 || !rows[0].HasStats {
		t.Fatalf("expected joined stats for first row, got %+v", rows[0])
	}
	if !rows[2].DXV.Unknown || rows[2].Line.Points != 0 {
		t.Fatalf("expected zero line and unknown swatch for third row, got %+v", rows[2])
	}
}

func TestLoadFailureReportsAggregateMessage(t *testing.T) {
	docs := testutil.Without(testutil.SampleDocuments(), sources.RankingsDocument)
	_, err := run(t, docs, "rankings")
	if err == nil {
		t.Fatalf("expected load error")
	}
	if !strings.Contains(err.Error(), "failed to fetch one or more data files") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestStateJSON(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "--json", "state")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["phase"] != string(domain.PhaseReady) {
		t.Fatalf("expected ready phase, got %v", got["phase"])
	}
	if got["rankings"] != float64(2) || got["transfers_committed"] != float64(1) {
		t.Fatalf("unexpected counts %v", got)
	}
}

func TestTransfersStatusFilter(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "--json", "transfers", "--status", "WITHDRAWN")
	if err != nil {
		t.Fatalf("transfers: %v", err)
	}
	var portal domain.TransferPortal
	if err := json.Unmarshal([]byte(out), &portal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(portal.Available) != 1 || portal.Available[0].Name != "Eli Post" {
		t.Fatalf("expected only Eli Post, got %+v", portal.Available)
	}
	if len(portal.Committed) != 0 {
		t.Fatalf("expected no committed matches, got %+v", portal.Committed)
	}
}

func TestTransfersTableShowsBothLists(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "transfers")
	if err != nil {
		t.Fatalf("transfers: %v", err)
	}
	for _, want := range []string{"Available", "Committed", "Dee Wing", "Fay Point"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRankingsUnrankedLast(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "--json", "rankings")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	var list []players.RankedPlayer
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 || list[0].RankOrZero() != 1 || list[1].Rank != nil {
		t.Fatalf("unexpected order %+v", list)
	}

	table, err := run(t, testutil.SampleDocuments(), "rankings")
	if err != nil {
		t.Fatalf("rankings table: %v", err)
	}
	if !strings.Contains(table, "Ivy Unranked") || !strings.Contains(table, rating.UnknownLabel) {
		t.Fatalf("expected unranked row with placeholder:\n%s", table)
	}
}

func TestScheduleAndStrip(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "schedule")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if !strings.Contains(out, "Canisius") || !strings.Contains(out, "Fordham") {
		t.Fatalf("expected completed opponents in output:\n%s", out)
	}

	strip, err := run(t, testutil.SampleDocuments(), "strip", "--n", "2")
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	if !strings.Contains(strip, "Dayton") || !strings.Contains(strip, "Fordham") || strings.Contains(strip, "Canisius") {
		t.Fatalf("expected only the last two schedule rows:\n%s", strip)
	}
}

func TestInternationalAndTeam(t *testing.T) {
	out, err := run(t, testutil.SampleDocuments(), "international")
	if err != nil {
		t.Fatalf("international: %v", err)
	}
	if !strings.Contains(out, "Gus Lindqvist") || !strings.Contains(out, "SWE") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	team, err := run(t, testutil.SampleDocuments(), "--team", "Bonnies", "team")
	if err != nil {
		t.Fatalf("team: %v", err)
	}
	if !strings.Contains(team, "Bonnies") || !strings.Contains(team, "st_bonaventure_2024.html") {
		t.Fatalf("unexpected team output:\n%s", team)
	}
}

func TestColorCommand(t *testing.T) {
	out, err := run(t, nil, "--json", "color", "0.25")
	if err != nil {
		t.Fatalf("color: %v", err)
	}
	var sw rating.Swatch
	if err := json.Unmarshal([]byte(out), &sw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sw.CSS != "rgb(157, 198, 255)" {
		t.Fatalf("unexpected swatch %+v", sw)
	}

	out, err = run(t, nil, "--json", "color", "--dxv", "100")
	if err != nil {
		t.Fatalf("color --dxv: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &sw); err != nil || sw.Color != rating.HighColor {
		t.Fatalf("expected high anchor, got %+v (%v)", sw, err)
	}

	if _, err := run(t, nil, "color", "abc"); err == nil {
		t.Fatalf("expected invalid percentile error")
	}
}

func TestThemeSetShowToggle(t *testing.T) {
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("SOURCES_FILE", "")
	themeFile := filepath.Join(t.TempDir(), "prefs", "themeMode")

	exec := func(args ...string) string {
		t.Helper()
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--theme-file", themeFile}, args...))
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return strings.TrimSpace(out.String())
	}

	if got := exec("theme", "set", "light"); got != "light" {
		t.Fatalf("expected light, got %q", got)
	}
	if got := exec("theme", "show"); got != "light" {
		t.Fatalf("expected stored light, got %q", got)
	}
	if got := exec("theme", "toggle"); got != "dark" {
		t.Fatalf("expected toggle to dark, got %q", got)
	}
	raw, err := os.ReadFile(themeFile)
	if err != nil || strings.TrimSpace(string(raw)) != "dark" {
		t.Fatalf("expected dark persisted, got %q (%v)", raw, err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--theme-file", themeFile, "theme", "set", "sepia"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected invalid theme error")
	}
}
