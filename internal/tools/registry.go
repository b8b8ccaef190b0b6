package tools

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Registry manages tool definitions and dispatches tool calls.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]*toolEntry
	ordering []string // preserve registration order for a stable tools/list
}

type toolEntry struct {
	def     ToolDefinition
	handler Handler
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*toolEntry),
	}
}

// Register adds a tool definition and handler to the registry.
func (r *Registry) Register(def ToolDefinition, handler Handler) error {
	if def.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool %s already registered", def.Name)
	}

	r.tools[def.Name] = &toolEntry{
		def:     def,
		handler: handler,
	}
	r.ordering = append(r.ordering, def.Name)

	return nil
}

// MustRegister registers a tool or panics on error (for init-time registration).
func (r *Registry) MustRegister(def ToolDefinition, handler Handler) {
	if err := r.Register(def, handler); err != nil {
		panic(err)
	}
}

// List returns all registered tool descriptors in registration order.
func (r *Registry) List() []ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]ToolDescriptor, 0, len(r.ordering))
	for _, name := range r.ordering {
		entry := r.tools[name]
		descriptors = append(descriptors, ToolDescriptor{
			Name:        entry.def.Name,
			Description: entry.def.Description,
			InputSchema: entry.def.InputSchema,
		})
	}

	return descriptors
}

// Call executes a tool by name. It never returns an error to the transport:
// every failure, from a missing credential or unknown tool up to a handler
// panic, is converted into a text failure result, so one bad invocation can
// never take the server down.
func (r *Registry) Call(ctx context.Context, tc *ToolContext, req CallRequest) CallResult {
	// The client handle is built inside the guarded path so a construction
	// failure is an ordinary failure result, not a process fault.
	if _, err := tc.API(); err != nil {
		return r.failure(tc, req.Name, err)
	}

	r.mu.RLock()
	entry, exists := r.tools[req.Name]
	r.mu.RUnlock()

	if !exists {
		return r.failure(tc, req.Name, NewToolError(ErrCodeMethodNotFound, "Unknown tool: "+req.Name))
	}

	text, err := r.invoke(ctx, tc, entry, req.Arguments)
	if err != nil {
		return r.failure(tc, req.Name, err)
	}

	return CallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// invoke runs the handler with panic recovery.
func (r *Registry) invoke(ctx context.Context, tc *ToolContext, entry *toolEntry, raw []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = NewToolError(ErrCodeInternal, fmt.Sprintf("panic in tool handler: %v", p))
		}
	}()

	return entry.handler(ctx, tc, raw)
}

// failure converts an error into the uniform failure result. Backend-reported
// failures and everything else are distinguished only in the log line and the
// text prefix; the result shape is identical.
func (r *Registry) failure(tc *ToolContext, name string, err error) CallResult {
	var text string

	var toolErr *ToolError
	if errors.As(err, &toolErr) && toolErr.Code == ErrCodeBackend {
		tc.Logger.Error().Str("tool", name).Err(err).Msg("webex api call failed")
		text = "Webex API Error: " + toolErr.Message
	} else {
		tc.Logger.Error().Str("tool", name).Err(err).Msg("tool invocation failed")
		message := err.Error()
		if toolErr != nil {
			message = toolErr.Message
		}
		text = "Error: " + message
	}

	return CallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Get retrieves a tool definition by name (for testing).
func (r *Registry) Get(name string) (*ToolDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.tools[name]
	if !exists {
		return nil, false
	}

	return &entry.def, true
}
