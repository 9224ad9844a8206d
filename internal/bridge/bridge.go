// Package bridge exposes the store as named operations to the desktop
// shell. The shell speaks line-delimited JSON-RPC 2.0 over the process's
// stdin/stdout; each request names one operation and carries its typed
// payload as params.
package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Handler handles one named operation.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Request is a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// Response is a JSON-RPC 2.0 response. Result must NOT have omitempty;
// null results are meaningful (get_settings on a fresh database).
type Response struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result"`
	Error   *RPCError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

// RPCError carries the classified error string, never a raw driver error.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeOperation      = -32000
)

// Server dispatches named operations.
type Server struct {
	log      *logrus.Logger
	handlers map[string]Handler
}

func NewServer(log *logrus.Logger) *Server {
	return &Server{log: log, handlers: make(map[string]Handler)}
}

// Register adds a handler. Registering a duplicate name is a programming
// error and panics at startup.
func (s *Server) Register(name string, h Handler) {
	if _, dup := s.handlers[name]; dup {
		panic(fmt.Sprintf("bridge: duplicate operation %q", name))
	}
	s.handlers[name] = h
}

// Invoke runs one operation by name. The returned error, if any, already
// carries the user-facing message.
func (s *Server) Invoke(ctx context.Context, name string, params json.RawMessage) (any, error) {
	h, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", name)
	}
	res, err := h(ctx, params)
	if err != nil {
		s.log.WithFields(logrus.Fields{"operation": name}).Warnf("operation failed: %v", err)
		return nil, err
	}
	return res, nil
}

// ServeStdio reads one JSON-RPC request per line from r and writes one
// response per line to w, until r is exhausted or ctx is cancelled.
// Requests are served sequentially; the store below is what bounds
// concurrency, not this loop.
func (s *Server) ServeStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := enc.Encode(errorResponse(nil, codeParseError, "invalid request: "+err.Error())); err != nil {
				return err
			}
			continue
		}

		resp := s.handle(ctx, req)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *Server) handle(ctx context.Context, req Request) Response {
	if _, ok := s.handlers[req.Method]; !ok {
		return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("unknown operation %q", req.Method))
	}
	res, err := s.Invoke(ctx, req.Method, req.Params)
	if err != nil {
		return errorResponse(req.ID, codeOperation, err.Error())
	}
	return Response{JSONRPC: "2.0", Result: res, ID: req.ID}
}

func errorResponse(id any, code int, msg string) Response {
	return Response{JSONRPC: "2.0", Error: &RPCError{Code: code, Message: msg}, ID: id}
}
