package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	keys := []string{AttrMethod, AttrPath, AttrStatus, AttrDocument, AttrOutcome}
	for _, k := range keys {
		if k == "" {
			t.Fatalf("expected metric attribute keys to be non-empty")
		}
	}
	if OutcomeReady == OutcomeFailed || OutcomeFailed == OutcomeStale {
		t.Fatalf("expected distinct load outcomes")
	}
}
