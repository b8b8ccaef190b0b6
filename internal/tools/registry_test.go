package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webex-mcp/internal/webex"
)

// offlineContext returns a ToolContext whose client construction succeeds but
// points at an unreachable backend. Good enough for tests that never hit the
// network.
func offlineContext() *ToolContext {
	logger := zerolog.Nop()
	return NewToolContext(&logger, func() (*webex.Client, error) {
		return webex.NewClient("http://127.0.0.1:0", "test-token"), nil
	})
}

func echoHandler(text string) Handler {
	return func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
		return text, nil
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	err := r.Register(ToolDefinition{Name: "a", Description: "first"}, echoHandler("a"))
	require.NoError(t, err)

	assert.Error(t, r.Register(ToolDefinition{Name: ""}, echoHandler("x")))
	assert.Error(t, r.Register(ToolDefinition{Name: "b"}, nil))
	assert.Error(t, r.Register(ToolDefinition{Name: "a"}, echoHandler("dup")))
}

func TestRegistry_ListPreservesOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.MustRegister(ToolDefinition{Name: name}, echoHandler(name))
	}

	descriptors := r.List()
	require.Len(t, descriptors, 3)
	assert.Equal(t, "zeta", descriptors[0].Name)
	assert.Equal(t, "alpha", descriptors[1].Name)
	assert.Equal(t, "mid", descriptors[2].Name)
}

func TestRegistry_CallSuccessShape(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "ping"}, echoHandler("pong"))

	result := r.Call(context.Background(), offlineContext(), CallRequest{Name: "ping"})

	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Equal(t, "pong", result.Content[0].Text)
}

func TestRegistry_CallUnknownTool(t *testing.T) {
	r := NewRegistry()

	result := r.Call(context.Background(), offlineContext(), CallRequest{Name: "nope"})

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "Error: Unknown tool: nope", result.Content[0].Text)
}

func TestRegistry_CallMissingCredentials(t *testing.T) {
	logger := zerolog.Nop()
	tc := NewToolContext(&logger, func() (*webex.Client, error) {
		return nil, webex.ErrNoCredentials
	})

	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "ping"}, echoHandler("pong"))

	result := r.Call(context.Background(), tc, CallRequest{Name: "ping"})

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Contains(t, result.Content[0].Text, "Error: ")
	assert.Contains(t, result.Content[0].Text, "WEBEX_ACCESS_TOKEN")
}

func TestRegistry_ClientConstructedOnce(t *testing.T) {
	constructions := 0
	logger := zerolog.Nop()
	tc := NewToolContext(&logger, func() (*webex.Client, error) {
		constructions++
		return webex.NewClient("http://127.0.0.1:0", "t"), nil
	})

	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "ping"}, echoHandler("pong"))

	for i := 0; i < 3; i++ {
		result := r.Call(context.Background(), tc, CallRequest{Name: "ping"})
		assert.False(t, result.IsError)
	}

	assert.Equal(t, 1, constructions)
}

func TestRegistry_CallHandlerPanic(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "boom"}, func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
		panic("unexpected state")
	})
	r.MustRegister(ToolDefinition{Name: "ping"}, echoHandler("pong"))

	tc := offlineContext()

	result := r.Call(context.Background(), tc, CallRequest{Name: "boom"})
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "panic in tool handler")

	// One failing call must not take the dispatcher down.
	result = r.Call(context.Background(), tc, CallRequest{Name: "ping"})
	assert.False(t, result.IsError)
}

func TestRegistry_BackendFailurePrefix(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "fail"}, func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
		return "", WrapClientError(&webex.APIError{StatusCode: 502, Message: "upstream exploded"})
	})

	result := r.Call(context.Background(), offlineContext(), CallRequest{Name: "fail"})

	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Content[0].Text, "Webex API Error: "))
	assert.Contains(t, result.Content[0].Text, "upstream exploded")
}

func TestRegistry_NonBackendFailurePrefix(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "fail"}, func(ctx context.Context, tc *ToolContext, raw json.RawMessage) (string, error) {
		return "", NewToolError(ErrCodeInvalidParams, "room_id is required")
	})

	result := r.Call(context.Background(), offlineContext(), CallRequest{Name: "fail"})

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: room_id is required", result.Content[0].Text)
}

func TestWrapClientError(t *testing.T) {
	apiErr := &webex.APIError{StatusCode: 404, Message: "not found", TrackingID: "T1"}
	wrapped := WrapClientError(apiErr)

	var toolErr *ToolError
	require.True(t, errors.As(wrapped, &toolErr))
	assert.Equal(t, ErrCodeBackend, toolErr.Code)
	assert.Contains(t, toolErr.Message, "not found")
	assert.Contains(t, toolErr.Message, "status=404")

	wrapped = WrapClientError(errors.New("dial tcp: connection refused"))
	require.True(t, errors.As(wrapped, &toolErr))
	assert.Equal(t, ErrCodeInternal, toolErr.Code)
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(ToolDefinition{Name: "ping", Description: "reply pong"}, echoHandler("pong"))

	def, ok := r.Get("ping")
	require.True(t, ok)
	assert.Equal(t, "reply pong", def.Description)

	_, ok = r.Get("absent")
	assert.False(t, ok)
}
