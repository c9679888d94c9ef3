// file: internal/mcp/tool.go
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/dkoosis/agentrelay/internal/notify"
)

// notifyToolName is the only tool this server exposes.
const notifyToolName = "notify"

// notifyToolInputSchema returns the JSON Schema describing the notify tool's
// arguments. The content ceiling stays in lockstep with the validator's
// soft limit because both read notify.SoftContentLimitChars.
func notifyToolInputSchema() string {
	return fmt.Sprintf(`{
		"type": "object",
		"properties": {
			"title": { "type": "string", "minLength": 1 },
			"content": { "type": "string", "minLength": 1, "maxLength": %d },
			"agent": { "type": "string", "minLength": 1 }
		},
		"required": ["title", "content", "agent"],
		"additionalProperties": false
	}`, notify.SoftContentLimitChars)
}

// notifyToolDescriptor builds the tool descriptor returned by tools/list.
func notifyToolDescriptor() map[string]interface{} {
	return map[string]interface{}{
		"name":        notifyToolName,
		"description": "Send a desktop notification via the Agent Relay app with title, content, and agent label.",
		"inputSchema": json.RawMessage(notifyToolInputSchema()),
	}
}
