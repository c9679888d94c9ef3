// Package relayerr defines the relay's domain error types. They carry a
// code plus optional cause so transport layers can map failures onto HTTP
// statuses and JSON-RPC error codes without string matching.
// file: internal/relayerr/errors.go
package relayerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorCode categorizes a relay failure.
type ErrorCode int

// Relay failure categories. Every per-request error falls into exactly one.
const (
	// CodeInvalidInput marks malformed, missing, or over-limit request fields.
	CodeInvalidInput ErrorCode = iota + 1
	// CodeGateClosed marks requests rejected because the listening gate is off.
	CodeGateClosed
	// CodeDispatchFailed marks failures of the notifier collaborator.
	CodeDispatchFailed
	// CodeBindFailed marks a listener that could not bind its address.
	CodeBindFailed
	// CodeProtocol marks malformed JSON-RPC envelopes and unknown methods.
	CodeProtocol
)

// RelayError is the common error type for relay failures.
type RelayError struct {
	// Code categorizes the failure.
	Code ErrorCode
	// Message is a human-readable description, safe to log. Whether it is
	// safe to return to the caller depends on the code: InvalidInput
	// messages are, DispatchFailed details are not.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the standard error interface.
func (e *RelayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *RelayError) Unwrap() error {
	return e.Cause
}

// NewInvalidInput creates an InvalidInput error with a caller-visible message.
func NewInvalidInput(format string, args ...interface{}) *RelayError {
	return &RelayError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewGateClosed creates a GateClosed error.
func NewGateClosed() *RelayError {
	return &RelayError{Code: CodeGateClosed, Message: "server is not listening"}
}

// NewDispatchFailed wraps a notifier failure.
func NewDispatchFailed(cause error) *RelayError {
	return &RelayError{Code: CodeDispatchFailed, Message: "failed to dispatch notification", Cause: cause}
}

// NewProtocol wraps a malformed JSON-RPC envelope failure.
func NewProtocol(cause error) *RelayError {
	return &RelayError{Code: CodeProtocol, Message: "malformed JSON-RPC envelope", Cause: cause}
}

// NewBindFailed wraps a listener bind failure for the given address.
func NewBindFailed(addr string, cause error) *RelayError {
	return &RelayError{Code: CodeBindFailed, Message: fmt.Sprintf("failed to bind %s", addr), Cause: cause}
}

// CodeOf extracts the ErrorCode from err, or 0 when err is not a RelayError.
func CodeOf(err error) ErrorCode {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Code
	}
	return 0
}

// IsInvalidInput reports whether err is an InvalidInput error.
func IsInvalidInput(err error) bool { return CodeOf(err) == CodeInvalidInput }

// IsGateClosed reports whether err is a GateClosed error.
func IsGateClosed(err error) bool { return CodeOf(err) == CodeGateClosed }

// IsDispatchFailed reports whether err is a DispatchFailed error.
func IsDispatchFailed(err error) bool { return CodeOf(err) == CodeDispatchFailed }

// IsBindFailed reports whether err is a BindFailed error.
func IsBindFailed(err error) bool { return CodeOf(err) == CodeBindFailed }
