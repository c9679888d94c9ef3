// Package jsonrpc implements the JSON-RPC 2.0 envelope types the relay
// speaks over its MCP endpoint. Only the server side of a single HTTP
// exchange is modeled: decode one envelope, produce one response.
// file: internal/jsonrpc/types.go
package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
)

const (
	// Version is the JSON-RPC version string.
	Version = "2.0"
)

// Standard JSON-RPC 2.0 error codes, plus the server-defined code used for
// dispatch failures (-32000 sits in the implementation-defined range).
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeServerError    = -32000
)

// Error represents a JSON-RPC 2.0 error object.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// Envelope is the decoded view of an inbound message. Method is kept raw so
// a present-but-non-string method can be told apart from an absent one.
type Envelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  json.RawMessage `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// HasMethod reports whether the message carries a method member at all.
// A literal null member is present: it falls through to the non-string
// method check rather than being dropped as method-less.
func (e *Envelope) HasMethod() bool {
	return len(e.Method) > 0
}

// HasID reports whether the message carries an id member. A request without
// one is a notification and gets no response; an explicit null id is a
// present id and the response echoes it.
func (e *Envelope) HasID() bool {
	return len(e.ID) > 0
}

// MethodName returns the method as a string. ok is false when the member is
// present but not a JSON string, including a literal null, which Unmarshal
// would otherwise pass through untouched.
func (e *Envelope) MethodName() (string, bool) {
	if string(e.Method) == "null" {
		return "", false
	}
	var name string
	if err := json.Unmarshal(e.Method, &name); err != nil {
		return "", false
	}
	return name, true
}

// Response represents a JSON-RPC response message.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// nullID is the literal used when a response cannot be correlated to a request.
var nullID = json.RawMessage("null")

// NewSuccessResponse creates a success response carrying the marshaled result.
func NewSuccessResponse(id json.RawMessage, result interface{}) (Response, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return Response{}, errors.Wrapf(err, "failed to marshal result of type %T", result)
	}
	if id == nil {
		id = nullID
	}
	return Response{
		JSONRPC: Version,
		ID:      id,
		Result:  resultJSON,
	}, nil
}

// NewErrorResponse creates an error response. A nil id becomes JSON null,
// as required for errors raised before the request id could be read.
func NewErrorResponse(id json.RawMessage, code int, message string) Response {
	if id == nil {
		id = nullID
	}
	return Response{
		JSONRPC: Version,
		ID:      id,
		Error:   &Error{Code: code, Message: message},
	}
}
