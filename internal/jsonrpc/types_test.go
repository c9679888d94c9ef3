// file: internal/jsonrpc/types_test.go
package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeMethodDetection(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		hasMethod  bool
		hasID      bool
		methodName string
		methodOK   bool
	}{
		{
			name:      "response without method",
			body:      `{"jsonrpc":"2.0","id":1,"result":{}}`,
			hasMethod: false,
			hasID:     true,
		},
		{
			name:       "notification without id",
			body:       `{"jsonrpc":"2.0","method":"notifications/initialized"}`,
			hasMethod:  true,
			hasID:      false,
			methodName: "notifications/initialized",
			methodOK:   true,
		},
		{
			name:      "non-string method",
			body:      `{"jsonrpc":"2.0","id":1,"method":42}`,
			hasMethod: true,
			hasID:     true,
			methodOK:  false,
		},
		{
			name:       "well-formed request",
			body:       `{"jsonrpc":"2.0","id":"abc","method":"initialize"}`,
			hasMethod:  true,
			hasID:      true,
			methodName: "initialize",
			methodOK:   true,
		},
		{
			name:       "explicit null id is a present id",
			body:       `{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			hasMethod:  true,
			hasID:      true,
			methodName: "initialize",
			methodOK:   true,
		},
		{
			name:      "explicit null method is present but not a string",
			body:      `{"jsonrpc":"2.0","id":1,"method":null}`,
			hasMethod: true,
			hasID:     true,
			methodOK:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var env Envelope
			require.NoError(t, json.Unmarshal([]byte(tc.body), &env))

			assert.Equal(t, tc.hasMethod, env.HasMethod(), "HasMethod mismatch.")
			assert.Equal(t, tc.hasID, env.HasID(), "HasID mismatch.")
			if tc.hasMethod {
				name, ok := env.MethodName()
				assert.Equal(t, tc.methodOK, ok, "MethodName ok mismatch.")
				if tc.methodOK && tc.methodName != "" {
					assert.Equal(t, tc.methodName, name)
				}
			}
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	resp, err := NewSuccessResponse(json.RawMessage("7"), map[string]string{"ok": "yes"})
	require.NoError(t, err)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":7,"result":{"ok":"yes"}}`, string(data))
}

func TestNewErrorResponse_NilIDBecomesNull(t *testing.T) {
	resp := NewErrorResponse(nil, CodeInvalidRequest, "Invalid request")

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"Invalid request"}}`, string(data))
}
