package testutil

import (
	"time"

	"github.com/preston-bernstein/recruiting-dashboard-service/internal/timeutil"
)

// NowAt returns a clock fixed at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustGameDate parses an export date such as "11/4/2024" as local midnight
// and panics on malformed input.
func MustGameDate(v string) time.Time {
	t, err := timeutil.ParseSlashDate(v, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
