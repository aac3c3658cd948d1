package recruiting

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchStatus reports whether a free-text transfer status contains pattern,
// ignoring case. An empty pattern matches every status.
func MatchStatus(status, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(status), fold.String(pattern))
}
