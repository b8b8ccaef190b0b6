package tools

import (
	"errors"
	"fmt"

	"webex-mcp/internal/webex"
)

// ToolError is a categorized error from tool execution. The category only
// affects logging and the failure-text prefix; every variant collapses to the
// same result shape at the transport boundary.
type ToolError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrorCode categorizes tool errors.
type ErrorCode string

const (
	// ErrCodeConfiguration: credential missing at first use.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeInvalidParams: a handler's argument precondition is unmet.
	ErrCodeInvalidParams ErrorCode = "INVALID_PARAMS"
	// ErrCodeBackend: the Webex API rejected or failed a call.
	ErrCodeBackend ErrorCode = "BACKEND"
	// ErrCodeMethodNotFound: invocation of a tool not in the catalog.
	ErrCodeMethodNotFound ErrorCode = "METHOD_NOT_FOUND"
	// ErrCodeInternal: anything else, including panics and transport faults.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// NewToolError creates a tool error.
func NewToolError(code ErrorCode, message string) *ToolError {
	return &ToolError{Code: code, Message: message}
}

// WrapClientError converts Webex client errors into ToolErrors. API-level
// failures keep their upstream message verbatim; transport-level failures
// below the API's own error type count as internal.
func WrapClientError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *webex.APIError
	if errors.As(err, &apiErr) {
		return NewToolError(ErrCodeBackend, apiErr.Error())
	}

	return NewToolError(ErrCodeInternal, err.Error())
}
