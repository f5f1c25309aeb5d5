package clients

import (
	"net/http"
	"time"
)

const timeout = time.Second * 15

// NewHTTPClient returns the shared outbound HTTP client. External lookups are
// best-effort, so the timeout bounds how long a request can degrade latency.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: timeout}
}
