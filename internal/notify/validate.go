// file: internal/notify/validate.go
package notify

import (
	"strings"
	"unicode/utf8"

	"github.com/dkoosis/agentrelay/internal/relayerr"
)

// Field limits. The platform notification body caps out around 1024
// characters on Windows toasts; 1000 leaves headroom, and the 950 soft
// limit on content keeps space for the agent prefix.
const (
	// MaxBodyChars is the hard ceiling on the dispatched notification body.
	MaxBodyChars = 1000
	// SoftContentLimitChars is the soft limit on the content field.
	SoftContentLimitChars = 950
)

// ValidateFields trims and bound-checks the three notification fields.
// All three must be non-empty after trimming, and content must not exceed
// SoftContentLimitChars characters (counted as runes, not bytes). Pure.
func ValidateFields(title, content, agent string) (string, string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	agent = strings.TrimSpace(agent)

	if title == "" || content == "" || agent == "" {
		return "", "", "", relayerr.NewInvalidInput("'title', 'content', and 'agent' are required")
	}

	if contentLen := utf8.RuneCountInString(content); contentLen > SoftContentLimitChars {
		return "", "", "", relayerr.NewInvalidInput(
			"'content' is too long (%d chars); keep it under %d", contentLen, SoftContentLimitChars)
	}

	return title, content, agent, nil
}
