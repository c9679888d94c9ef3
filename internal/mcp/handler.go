// Package mcp implements the relay's MCP endpoint: a JSON-RPC 2.0 method
// dispatcher over HTTP POST plus a keep-alive SSE stream over GET. The
// server exposes exactly one tool, "notify".
// file: internal/mcp/handler.go
package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dkoosis/agentrelay/internal/httputils"
	"github.com/dkoosis/agentrelay/internal/jsonrpc"
	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/dkoosis/agentrelay/internal/notify"
	"github.com/dkoosis/agentrelay/internal/relayerr"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ProtocolVersion is the MCP HTTP Stream transport revision this server speaks.
const ProtocolVersion = "2025-11-25"

// serverName identifies the relay in initialize results.
const serverName = "agent-relay"

// defaultKeepAliveInterval is how often the SSE stream emits its comment event.
const defaultKeepAliveInterval = 25 * time.Second

// Gate reports whether the relay is logically listening. When it is not,
// every request short-circuits with 503 before any parsing.
type Gate interface {
	Listening() bool
}

// methodFunc handles one JSON-RPC method and produces the response envelope.
type methodFunc func(ctx context.Context, id json.RawMessage, params json.RawMessage) jsonrpc.Response

// Handler serves the /mcp route. It is stateless across requests apart from
// the shared gate.
type Handler struct {
	gate       Gate
	dispatcher *notify.Dispatcher
	logger     logging.Logger
	version    string
	keepAlive  time.Duration

	// methods is the closed dispatch table; unknown names fall through to -32601.
	methods map[string]methodFunc

	// argumentsSchema is the compiled tool input schema. Compiling it at
	// construction guards the advertised descriptor against drift.
	argumentsSchema *jsonschema.Schema
}

// Option configures a Handler.
type Option func(*Handler)

// WithKeepAliveInterval overrides the SSE keep-alive period (tests use this).
func WithKeepAliveInterval(d time.Duration) Option {
	return func(h *Handler) { h.keepAlive = d }
}

// NewHandler creates the MCP handler. version is reported by initialize.
func NewHandler(gate Gate, dispatcher *notify.Dispatcher, version string, logger logging.Logger, opts ...Option) (*Handler, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	schema, err := jsonschema.CompileString("notify_input_schema.json", notifyToolInputSchema())
	if err != nil {
		return nil, errors.Wrap(err, "notify tool input schema does not compile")
	}

	h := &Handler{
		gate:            gate,
		dispatcher:      dispatcher,
		logger:          logger.WithField("component", "mcp_handler"),
		version:         version,
		keepAlive:       defaultKeepAliveInterval,
		argumentsSchema: schema,
	}
	h.methods = map[string]methodFunc{
		"initialize": h.handleInitialize,
		"tools/list": h.handleToolsList,
		"tools/call": h.handleToolsCall,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// ServeHTTP routes POST to the JSON-RPC dispatcher and GET to the SSE stream.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handlePost(w, r)
	case http.MethodGet:
		h.handleSSE(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handlePost implements the JSON-RPC entry rules. Protocol-level errors are
// returned inside HTTP 200 envelopes; only the closed gate and a malformed
// body use non-200 statuses.
func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	if !h.gate.Listening() {
		h.logger.Debug("Rejected request.", "error", relayerr.NewGateClosed())
		httputils.WriteMessage(w, http.StatusServiceUnavailable, "Server is not listening")
		return
	}

	var env jsonrpc.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		h.logger.Debug("Rejected request.", "error", relayerr.NewProtocol(err))
		httputils.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Responses and notifications the server doesn't act on: acknowledge and stop.
	if !env.HasMethod() {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	if !env.HasID() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	method, ok := env.MethodName()
	if !ok {
		h.writeResponse(w, jsonrpc.NewErrorResponse(nil, jsonrpc.CodeInvalidRequest, "Invalid request: method must be a string"))
		return
	}

	handler, known := h.methods[method]
	if !known {
		h.writeResponse(w, jsonrpc.NewErrorResponse(env.ID, jsonrpc.CodeMethodNotFound, "Method not found"))
		return
	}

	h.logger.Debug("Dispatching MCP method.", "method", method)
	h.writeResponse(w, handler(r.Context(), env.ID, env.Params))
}

// writeResponse writes a JSON-RPC envelope as HTTP 200.
func (h *Handler) writeResponse(w http.ResponseWriter, resp jsonrpc.Response) {
	httputils.WriteJSON(w, http.StatusOK, resp)
}

// successOrInternal wraps result marshaling; a marshal failure is a bug and
// surfaces as -32603.
func (h *Handler) successOrInternal(id json.RawMessage, result interface{}) jsonrpc.Response {
	resp, err := jsonrpc.NewSuccessResponse(id, result)
	if err != nil {
		h.logger.Error("Failed to marshal result.", "error", err)
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeInternalError, "Internal error")
	}
	return resp
}

// handleInitialize reports the protocol version, server identity, and the
// fixed capability set.
func (h *Handler) handleInitialize(_ context.Context, id json.RawMessage, _ json.RawMessage) jsonrpc.Response {
	result := map[string]interface{}{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]interface{}{
			"name":    serverName,
			"version": h.version,
		},
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{"listChanged": false},
		},
	}
	return h.successOrInternal(id, result)
}

// handleToolsList returns the single notify tool. There is no pagination.
func (h *Handler) handleToolsList(_ context.Context, id json.RawMessage, _ json.RawMessage) jsonrpc.Response {
	result := map[string]interface{}{
		"tools":      []interface{}{notifyToolDescriptor()},
		"nextCursor": nil,
	}
	return h.successOrInternal(id, result)
}

// handleToolsCall validates the call shape, runs field validation, and
// dispatches the notification.
func (h *Handler) handleToolsCall(ctx context.Context, id json.RawMessage, params json.RawMessage) jsonrpc.Response {
	var paramObj map[string]json.RawMessage
	if params == nil || json.Unmarshal(params, &paramObj) != nil || paramObj == nil {
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeInvalidParams, "Invalid params: expected object")
	}

	var toolName string
	if raw, present := paramObj["name"]; !present || json.Unmarshal(raw, &toolName) != nil {
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeInvalidParams, "Invalid params: missing tool name")
	}
	if toolName != notifyToolName {
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeMethodNotFound, "Tool not found")
	}

	var arguments map[string]json.RawMessage
	if raw, present := paramObj["arguments"]; !present || json.Unmarshal(raw, &arguments) != nil || arguments == nil {
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeInvalidParams, "Invalid params: 'arguments' must be an object")
	}

	// Non-string and missing arguments become empty strings here; the
	// validator rejects them with one combined message.
	title := stringField(arguments, "title")
	content := stringField(arguments, "content")
	agent := stringField(arguments, "agent")

	title, content, agent, err := notify.ValidateFields(title, content, agent)
	if err != nil {
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeInvalidParams,
			"Invalid params: 'title', 'content', and 'agent' are required and must be within limits")
	}

	if err := h.dispatcher.Dispatch(ctx, title, content, agent); err != nil {
		h.logger.Error("Notification dispatch failed.", "error", err, "title", title, "agent", agent)
		return jsonrpc.NewErrorResponse(id, jsonrpc.CodeServerError, "Failed to dispatch notification")
	}

	result := map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": "Notification sent: " + title,
			},
		},
		"isError": false,
	}
	return h.successOrInternal(id, result)
}

// stringField extracts a string member from a decoded JSON object, returning
// "" when the member is absent or not a string.
func stringField(obj map[string]json.RawMessage, key string) string {
	raw, present := obj[key]
	if !present {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
