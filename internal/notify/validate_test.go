// file: internal/notify/validate_test.go
package notify

import (
	"strings"
	"testing"

	"github.com/dkoosis/agentrelay/internal/relayerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFields_TrimsInputs(t *testing.T) {
	title, content, agent, err := ValidateFields("  Build  ", "\tok\n", " ci ")
	require.NoError(t, err)
	assert.Equal(t, "Build", title)
	assert.Equal(t, "ok", content)
	assert.Equal(t, "ci", agent)
}

func TestValidateFields_RejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name                  string
		title, content, agent string
	}{
		{name: "empty title", title: "", content: "c", agent: "a"},
		{name: "empty content", title: "t", content: "", agent: "a"},
		{name: "empty agent", title: "t", content: "c", agent: ""},
		{name: "whitespace only title", title: "   ", content: "c", agent: "a"},
		{name: "whitespace only content", title: "t", content: " \t\n", agent: "a"},
		{name: "whitespace only agent", title: "t", content: "c", agent: "  "},
		{name: "all empty", title: "", content: "", agent: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := ValidateFields(tc.title, tc.content, tc.agent)
			require.Error(t, err)
			assert.True(t, relayerr.IsInvalidInput(err), "Expected an InvalidInput error, got %v.", err)
		})
	}
}

func TestValidateFields_ContentLengthBoundary(t *testing.T) {
	// Exactly at the soft limit: accepted.
	atLimit := strings.Repeat("x", SoftContentLimitChars)
	_, content, _, err := ValidateFields("t", atLimit, "a")
	require.NoError(t, err)
	assert.Len(t, content, SoftContentLimitChars)

	// One over: rejected with a distinct message naming the count.
	overLimit := strings.Repeat("x", SoftContentLimitChars+1)
	_, _, _, err = ValidateFields("t", overLimit, "a")
	require.Error(t, err)
	assert.True(t, relayerr.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "too long")
}

func TestValidateFields_CountsCharactersNotBytes(t *testing.T) {
	// 950 three-byte runes are 2850 bytes but exactly at the character limit.
	content := strings.Repeat("世", SoftContentLimitChars)
	_, _, _, err := ValidateFields("t", content, "a")
	assert.NoError(t, err, "Limit is in characters, not bytes.")

	_, _, _, err = ValidateFields("t", content+"界", "a")
	assert.Error(t, err)
}

func TestValidateFields_IsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		title, content, agent, err := ValidateFields("T", "C", "A")
		require.NoError(t, err)
		assert.Equal(t, []string{"T", "C", "A"}, []string{title, content, agent})
	}
}
