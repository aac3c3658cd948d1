package timeutil

import (
	"testing"
	"time"
)

func TestParseSlashDate(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	got, err := ParseSlashDate("1/4/2025", loc)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	want := time.Date(2025, time.January, 4, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestParseSlashDateDefaultsToLocal(t *testing.T) {
	got, err := ParseSlashDate("12/31/2024", nil)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got.Location() != time.Local {
		t.Fatalf("expected local location, got %s", got.Location())
	}
	if got.Month() != time.December || got.Day() != 31 {
		t.Fatalf("unexpected date %s", got)
	}
}

func TestParseSlashDateRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "2025-01-04", "1/4", "a/b/c"} {
		if _, err := ParseSlashDate(raw, time.UTC); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	in := time.Date(2025, 3, 9, 17, 45, 12, 99, loc)
	got := StartOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 9 || got.Location() != loc {
		t.Fatalf("unexpected start of day %s", got)
	}
}
