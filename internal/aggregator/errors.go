package aggregator

import "errors"

var (
	// ErrFetchFailed is the user-facing failure for any document that could
	// not be retrieved.
	ErrFetchFailed = errors.New("failed to fetch one or more data files")
	// ErrDecodeFailed reports a document that was retrieved but is not JSON.
	ErrDecodeFailed = errors.New("failed to parse one or more data files")
	// ErrSuperseded is returned by a load that a newer load replaced before
	// it could publish.
	ErrSuperseded = errors.New("load superseded by a newer load")
)
