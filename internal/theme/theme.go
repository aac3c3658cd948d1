// Package theme resolves the light/dark display preference.
package theme

import "strings"

// Mode is a display theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// StorageKey names the persisted preference wherever it is stored.
const StorageKey = "themeMode"

// Parse accepts exactly "light" or "dark", ignoring surrounding space.
func Parse(raw string) (Mode, bool) {
	switch Mode(strings.TrimSpace(raw)) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Resolve picks a valid stored preference, falling back to the system
// preference.
func Resolve(stored string, prefersDark bool) Mode {
	if mode, ok := Parse(stored); ok {
		return mode
	}
	if prefersDark {
		return Dark
	}
	return Light
}

// Toggle flips between light and dark.
func Toggle(mode Mode) Mode {
	if mode == Light {
		return Dark
	}
	return Light
}
