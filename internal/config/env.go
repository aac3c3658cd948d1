package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration is the config-facing alias for time.Duration.
type Duration = time.Duration

// envValue reads key and converts it with parse. Blank values and values
// parse rejects yield def.
func envValue[T any](key string, def T, parse func(string) (T, bool)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if v, ok := parse(raw); ok {
		return v
	}
	return def
}

func envOrDefault(key, def string) string {
	return envValue(key, def, func(raw string) (string, bool) { return raw, true })
}

// durationEnvOrDefault accepts only positive durations.
func durationEnvOrDefault(key string, def time.Duration) time.Duration {
	return envValue(key, def, func(raw string) (time.Duration, bool) {
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

// durationEnvAllowZero accepts zero, including a bare "0", for settings
// where zero turns the feature off.
func durationEnvAllowZero(key string, def time.Duration) time.Duration {
	return envValue(key, def, func(raw string) (time.Duration, bool) {
		if raw == "0" {
			return 0, true
		}
		d, err := time.ParseDuration(raw)
		return d, err == nil && d >= 0
	})
}

// intEnvOrDefault accepts only positive integers.
func intEnvOrDefault(key string, def int) int {
	return envValue(key, def, func(raw string) (int, bool) {
		n, err := strconv.Atoi(raw)
		return n, err == nil && n > 0
	})
}

func boolEnvOrDefault(key string, def bool) bool {
	return envValue(key, def, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
		return false, false
	})
}
