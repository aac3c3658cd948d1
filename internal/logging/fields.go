package logging

import "log/slog"

// Field keys shared by every package so loads, fetches and requests can be
// joined on load_id, document and request_id.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldError      = "error"
	FieldSource     = "source"
	FieldDocument   = "document"
	FieldAttempt    = "attempt"
	FieldBytes      = "bytes"
	FieldLoadID     = "load_id"
	FieldGeneration = "generation"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)

// serviceAttrs tags every record with the binary name and build version.
func serviceAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
