package rating

import (
	"math"
	"testing"
)

func pct(v float64) *float64 { return &v }

func TestPercentileColorAnchors(t *testing.T) {
	if got := PercentileColor(pct(0)).Color; got != LowColor {
		t.Fatalf("expected low anchor at 0, got %+v", got)
	}
	if got := PercentileColor(pct(0.5)).Color; got != MidColor {
		t.Fatalf("expected white at 0.5, got %+v", got)
	}
	if got := PercentileColor(pct(1)).Color; got != HighColor {
		t.Fatalf("expected high anchor at 1, got %+v", got)
	}
}

func TestPercentileColorClamps(t *testing.T) {
	if got := PercentileColor(pct(-3)); got.Color != LowColor || got.Label != "0" {
		t.Fatalf("expected clamp to low, got %+v", got)
	}
	if got := PercentileColor(pct(7)); got.Color != HighColor || got.Label != "100" {
		t.Fatalf("expected clamp to high, got %+v", got)
	}
}

func TestPercentileColorUnknown(t *testing.T) {
	got := PercentileColor(nil)
	if !got.Unknown || got.Label != UnknownLabel {
		t.Fatalf("expected unknown swatch with '-', got %+v", got)
	}
	if got.Color != PercentileColor(pct(0.5)).Color {
		t.Fatalf("expected unknown to use midpoint color, got %+v", got.Color)
	}
	if nan := PercentileColor(pct(math.NaN())); !nan.Unknown {
		t.Fatalf("expected NaN to be unknown")
	}
}

func TestPercentileColorFormatsCSS(t *testing.T) {
	got := PercentileColor(pct(0.25))
	// Halfway from #3A8DFF to white: 156.5 -> 157, 198, 255.
	if got.CSS != "rgb(157, 198, 255)" {
		t.Fatalf("unexpected css %s", got.CSS)
	}
	if got.Label != "25" {
		t.Fatalf("expected label 25, got %s", got.Label)
	}
	if LowColor.Hex() != "#3A8DFF" || HighColor.Hex() != "#FF9100" {
		t.Fatalf("unexpected anchor hex %s %s", LowColor.Hex(), HighColor.Hex())
	}
}

func TestPercentileColorMonotonicPerSegment(t *testing.T) {
	prev := PercentileColor(pct(0)).Color
	for i := 1; i <= 50; i++ {
		c := PercentileColor(pct(float64(i) / 100)).Color
		if c.R < prev.R || c.G < prev.G || c.B < prev.B {
			t.Fatalf("lower segment not monotonic at %d: %+v after %+v", i, c, prev)
		}
		prev = c
	}
	for i := 51; i <= 100; i++ {
		c := PercentileColor(pct(float64(i) / 100)).Color
		if c.R > prev.R || c.G > prev.G || c.B > prev.B {
			t.Fatalf("upper segment not monotonic at %d: %+v after %+v", i, c, prev)
		}
		prev = c
	}
}

func TestDXVPercentile(t *testing.T) {
	if got := DXVPercentile("85"); got == nil || *got != 0.85 {
		t.Fatalf("expected 0.85, got %v", got)
	}
	if got := DXVPercentile(" "); got != nil {
		t.Fatalf("expected nil for blank rating")
	}
	if got := DXVPercentile("n/a"); got != nil {
		t.Fatalf("expected nil for non-numeric rating")
	}
	if sw := DXVSwatch(""); !sw.Unknown {
		t.Fatalf("expected unknown swatch for blank rating")
	}
	if sw := DXVSwatch("100"); sw.Color != HighColor {
		t.Fatalf("expected top rating to be high anchor, got %+v", sw.Color)
	}
}
