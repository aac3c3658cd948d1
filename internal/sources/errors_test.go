package sources

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Document: "rsci.json", StatusCode: http.StatusNotFound, Message: "not found"}
	got := err.Error()
	if !strings.Contains(got, "rsci.json") || !strings.Contains(got, "status=404") {
		t.Fatalf("expected document and status in error string, got %q", got)
	}
	if (&StatusError{}).Error() == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", &StatusError{StatusCode: http.StatusNotFound})
	statusErr, ok := AsStatusError(wrapped)
	if !ok || !statusErr.NotFound() {
		t.Fatalf("expected wrapped 404 status error, got %+v", statusErr)
	}
	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestStatusErrorPermanent(t *testing.T) {
	cases := map[int]bool{
		http.StatusNotFound:            true,
		http.StatusForbidden:           true,
		http.StatusTooManyRequests:     false,
		http.StatusRequestTimeout:      false,
		http.StatusInternalServerError: false,
	}
	for code, want := range cases {
		if got := (&StatusError{StatusCode: code}).Permanent(); got != want {
			t.Fatalf("status %d permanent expected %v, got %v", code, want, got)
		}
	}
	var nilErr *StatusError
	if nilErr.Permanent() || nilErr.NotFound() {
		t.Fatalf("expected nil status error to be neither permanent nor not found")
	}
}
