package tools

import (
	"sync"

	"github.com/rs/zerolog"

	"webex-mcp/internal/webex"
)

// ClientFactory builds the Webex client handle. It runs at most once per
// ToolContext; a returned error (typically webex.ErrNoCredentials) surfaces
// as a configuration failure on every invocation until the process restarts.
type ClientFactory func() (*webex.Client, error)

// ToolContext provides shared resources for tool handlers. It owns the
// process-wide Webex client handle, constructed lazily on first use and
// read-only afterwards.
type ToolContext struct {
	Logger *zerolog.Logger

	newClient ClientFactory

	mu  sync.Mutex
	api *webex.Client
}

// NewToolContext creates a tool context. The factory is not invoked here;
// construction is deferred to the first API() call.
func NewToolContext(logger *zerolog.Logger, newClient ClientFactory) *ToolContext {
	return &ToolContext{
		Logger:    logger,
		newClient: newClient,
	}
}

// API returns the Webex client handle, constructing it on first use.
// Dispatch is serialized in practice, but the mutex keeps the
// single-construction invariant even if a transport pipelines calls.
func (tc *ToolContext) API() (*webex.Client, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.api != nil {
		return tc.api, nil
	}

	api, err := tc.newClient()
	if err != nil {
		return nil, NewToolError(ErrCodeConfiguration, err.Error())
	}

	tc.api = api
	tc.Logger.Info().Msg("webex client initialized")
	return tc.api, nil
}
