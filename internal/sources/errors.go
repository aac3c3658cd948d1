package sources

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a document that could not be served, with the
// HTTP-style status of the failure.
type StatusError struct {
	Source     string
	Document   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "document unavailable"
	}
	if e.Document != "" {
		msg = fmt.Sprintf("%s: %s", e.Document, msg)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// NotFound reports whether the document does not exist.
func (e *StatusError) NotFound() bool {
	return e != nil && e.StatusCode == http.StatusNotFound
}

// Permanent reports whether repeating the request cannot help.
func (e *StatusError) Permanent() bool {
	return e != nil && e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusRequestTimeout && e.StatusCode != http.StatusTooManyRequests
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
