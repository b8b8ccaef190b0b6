package webex

import (
	"errors"
	"fmt"
)

// ErrNoCredentials indicates that no usable Webex credential was configured.
// It carries remediation text because it is shown to end users verbatim.
var ErrNoCredentials = errors.New(
	"WEBEX_ACCESS_TOKEN environment variable is required. " +
		"Get your token from: https://developer.webex.com/docs/getting-started")

// APIError is a non-2xx response from the Webex API. The message and tracking
// ID come straight from the response body; the core treats them as opaque text.
type APIError struct {
	StatusCode int
	Message    string
	TrackingID string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}
	if e.TrackingID != "" {
		return fmt.Sprintf("%s [status=%d, tracking=%s]", msg, e.StatusCode, e.TrackingID)
	}
	return fmt.Sprintf("%s [status=%d]", msg, e.StatusCode)
}
