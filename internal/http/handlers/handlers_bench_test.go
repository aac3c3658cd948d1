package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkRoster(b *testing.B) {
	f := newFixture(b, true)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rr := httptest.NewRecorder()
			f.handler.Roster(rr, httptest.NewRequest(http.MethodGet, "/api/roster", nil))
			if rr.Code != http.StatusOK {
				b.Fatalf("unexpected status %d", rr.Code)
			}
		}
	})
}

func BenchmarkTransfersFiltered(b *testing.B) {
	f := newFixture(b, true)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			rr := httptest.NewRecorder()
			f.handler.Transfers(rr, httptest.NewRequest(http.MethodGet, "/api/transfers?status=entered", nil))
			if rr.Code != http.StatusOK {
				b.Fatalf("unexpected status %d", rr.Code)
			}
		}
	})
}
