// Package timeutil parses export dates and day boundaries.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSlashDate parses a month/day/year string such as "1/4/2025" into
// midnight in loc. Components are not zero padded in the exports, so this
// splits on "/" instead of using a layout.
func ParseSlashDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected month/day/year", value)
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
		}
		nums[i] = n
	}
	return time.Date(nums[2], time.Month(nums[0]), nums[1], 0, 0, 0, 0, loc), nil
}

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
