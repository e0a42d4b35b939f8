package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ServerName    = "career-coach-mcp"
	ServerVersion = "0.1.0"

	defaultProtocolVersion = "2024-11-05"
	defaultMaxInFlight     = 8
	maxLineBytes           = 4 << 20
)

// JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// isNotification reports whether the request expects no reply.
func (r Request) isNotification() bool {
	return r.ID == nil
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type ToolCallResult struct {
	Content []ContentItem `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type initializeParams struct {
	ProtocolVersion string `json:"protocolVersion"`
}

type initializeResult struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ServerInfo      serverInfo     `json:"serverInfo"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Server speaks MCP over newline-delimited JSON-RPC. Requests are handled
// concurrently; each response is written as a single line.
type Server struct {
	registry    *Registry
	logger      *zap.Logger
	maxInFlight int

	mu  sync.Mutex
	out io.Writer
}

func NewServer(registry *Registry, logger *zap.Logger, maxInFlight int) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	return &Server{registry: registry, logger: logger, maxInFlight: maxInFlight}
}

// Serve reads requests from in until EOF or ctx is done and waits for
// in-flight requests before returning.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.out = out

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxInFlight)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	for sc.Scan() {
		if gctx.Err() != nil {
			break
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("mcp parse error", zap.Error(err))
			s.writeError(nil, CodeParseError, "Parse error", err.Error())
			continue
		}

		g.Go(func() error {
			s.handle(gctx, req)
			return nil
		})
	}

	waitErr := g.Wait()
	if err := sc.Err(); err != nil {
		return err
	}
	if waitErr != nil {
		return waitErr
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) handle(ctx context.Context, req Request) {
	if req.JSONRPC != "2.0" || req.Method == "" {
		if !req.isNotification() {
			s.writeError(req.ID, CodeInvalidRequest, "Invalid Request", nil)
		}
		return
	}
	if req.isNotification() {
		s.logger.Debug("mcp notification", zap.String("method", req.Method))
		return
	}

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "ping":
		s.writeResult(req.ID, struct{}{})
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(ctx, req)
	default:
		s.writeError(req.ID, CodeMethodNotFound, "Method not found", req.Method)
	}
}

func (s *Server) handleInitialize(req Request) {
	var params initializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.writeError(req.ID, CodeInvalidParams, "Invalid params", err.Error())
			return
		}
	}
	version := params.ProtocolVersion
	if version == "" {
		version = defaultProtocolVersion
	}

	s.writeResult(req.ID, initializeResult{
		ProtocolVersion: version,
		Capabilities:    map[string]any{"tools": map[string]any{}},
		ServerInfo:      serverInfo{Name: ServerName, Version: ServerVersion},
	})
}

func (s *Server) handleToolsList(req Request) {
	tools := s.registry.List()

	definitions := make([]ToolDefinition, 0, len(tools))
	for _, tool := range tools {
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}

	s.writeResult(req.ID, map[string]any{"tools": definitions})
}

func (s *Server) handleToolsCall(ctx context.Context, req Request) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, CodeInvalidParams, "Invalid params", err.Error())
		return
	}
	tool, ok := s.registry.Get(params.Name)
	if !ok {
		s.writeError(req.ID, CodeInvalidParams, "Unknown tool", params.Name)
		return
	}

	s.logger.Info("mcp tool call", zap.String("tool", params.Name))
	result, err := tool.Execute(ctx, params.Arguments)
	if err != nil {
		s.logger.Warn("mcp tool failed", zap.String("tool", params.Name), zap.Error(err))
		s.writeResult(req.ID, ToolCallResult{
			Content: []ContentItem{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
		return
	}

	s.writeResult(req.ID, ToolCallResult{
		Content: []ContentItem{{Type: "text", Text: string(result)}},
	})
}

func (s *Server) writeResult(id json.RawMessage, result any) {
	s.write(Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, msg string, data any) {
	s.write(Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: msg, Data: data}})
}

func (s *Server) write(resp Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("mcp encode response", zap.Error(err))
		return
	}
	b = append(b, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(b); err != nil {
		s.logger.Error("mcp write response", zap.Error(err))
	}
}
