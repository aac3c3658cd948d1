package httpsource

import "time"

const (
	// Name identifies this source in logs and errors.
	Name = "http"

	defaultBaseURL     = "http://localhost:3000/dashboard"
	defaultHTTPTimeout = 10 * time.Second
	maxDocumentBytes   = 32 << 20
	maxErrorBodyBytes  = 512
)
