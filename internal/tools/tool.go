package tools

import (
	"context"
	"encoding/json"
)

// ToolDefinition describes a tool with its name, description, and input schema.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Handler processes a tool invocation. It returns the formatted text for the
// result content block, or an error (normally a *ToolError) that the registry
// converts into a failure result.
type Handler func(context.Context, *ToolContext, json.RawMessage) (string, error)

// ToolDescriptor is the catalog entry returned by tools/list.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// CallRequest represents one tools/call invocation.
type CallRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// CallResult is the single result shape for both success and failure: a list
// of text content blocks, with IsError distinguishing failures.
type CallResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one piece of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
