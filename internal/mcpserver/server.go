package mcpserver

import (
	"context"
	"encoding/json"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"webex-mcp/internal/tools"
)

// Server binds the tool registry to the official MCP Go SDK, which owns the
// wire protocol: framing, initialize handshake, and capability negotiation.
// The registry stays the single dispatch point; the SDK handlers here only
// translate shapes at the boundary.
type Server struct {
	server   *mcp.Server
	registry *tools.Registry
	toolCtx  *tools.ToolContext
}

// New creates a Server exposing every tool in the registry.
func New(name, version string, registry *tools.Registry, toolCtx *tools.ToolContext) *Server {
	s := &Server{
		server:   mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		registry: registry,
		toolCtx:  toolCtx,
	}

	for _, desc := range registry.List() {
		s.server.AddTool(&mcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: mustRawSchema(desc.InputSchema),
		}, s.handlerFor(desc.Name))
	}

	return s
}

// Serve serves MCP over stdio-style streams. It blocks until ctx is cancelled
// or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}
	return s.run(ctx, transport)
}

// run starts the server on the given transport. Tests use this directly with
// in-memory transports.
func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// handlerFor adapts one registry tool to an SDK handler. Tool failures are
// reported through the result's IsError flag, never as Go errors, so they can
// never surface as protocol-level faults.
func (s *Server) handlerFor(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if args == nil {
			args = json.RawMessage("{}")
		}

		result := s.registry.Call(ctx, s.toolCtx, tools.CallRequest{
			Name:      name,
			Arguments: args,
		})

		content := make([]mcp.Content, 0, len(result.Content))
		for _, block := range result.Content {
			content = append(content, &mcp.TextContent{Text: block.Text})
		}

		return &mcp.CallToolResult{
			Content: content,
			IsError: result.IsError,
		}, nil
	}
}

// mustRawSchema serializes a catalog schema for the SDK. Catalog schemas are
// static maps built at registration time, so failure here is a programming
// defect worth a panic at startup.
func mustRawSchema(schema map[string]any) json.RawMessage {
	data, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return json.RawMessage(data)
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
