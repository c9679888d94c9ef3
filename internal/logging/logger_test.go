// file: internal/logging/logger_test.go
package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDefaultLogger restores the no-op default after a test that calls
// InitLogging, so package-level state does not leak between tests.
func resetDefaultLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetDefaultLogger(GetNoopLogger())
		SetLevel(LevelInfo)
	})
}

func decodeEntry(t *testing.T, line []byte) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(line, &entry), "Log line should be JSON: %s", line)
	return entry
}

func TestGetLogger_ReturnsUsableLogger(t *testing.T) {
	logger := GetLogger("test")
	require.NotNil(t, logger, "GetLogger should never return nil.")

	// Safe to use before InitLogging; entries go nowhere.
	logger.Info("no backend yet")
}

func TestInitLogging_EmitsStructuredEntries(t *testing.T) {
	resetDefaultLogger(t)
	var buf bytes.Buffer
	InitLogging(LevelDebug, &buf)

	logger := GetLogger("test_component")
	logger.Info("test message", "key1", "value1", "key2", 123)

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test message", entry["msg"], "msg field should carry the message.")
	assert.Equal(t, "test_component", entry["component"], "component field should carry the logger name.")
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(123), entry["key2"])
}

func TestGetLogger_BindsLate(t *testing.T) {
	resetDefaultLogger(t)

	// Fetched before any backend exists, as package-level loggers are.
	early := GetLogger("early_component")

	var buf bytes.Buffer
	InitLogging(LevelDebug, &buf)

	early.Info("arrived after init")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "arrived after init", entry["msg"], "Entries from pre-init loggers must reach the installed backend.")
	assert.Equal(t, "early_component", entry["component"])
}

func TestWithField_AccumulatesAcrossBinding(t *testing.T) {
	resetDefaultLogger(t)

	early := GetLogger("store").WithField("path", "/tmp/settings.yaml")

	var buf bytes.Buffer
	InitLogging(LevelDebug, &buf)

	early.Warn("persist failed", "error", "disk full")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "/tmp/settings.yaml", entry["path"], "Fields attached before init should survive.")
	assert.Equal(t, "disk full", entry["error"])
}

func TestWithField_DoesNotMutateParent(t *testing.T) {
	resetDefaultLogger(t)
	var buf bytes.Buffer
	InitLogging(LevelDebug, &buf)

	parent := GetLogger("parent")
	child := parent.WithField("child_only", true)

	child.Info("from child")
	parent.Info("from parent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	childEntry := decodeEntry(t, []byte(lines[0]))
	parentEntry := decodeEntry(t, []byte(lines[1]))
	assert.Equal(t, true, childEntry["child_only"])
	assert.NotContains(t, parentEntry, "child_only", "Parent must not inherit the child's field.")
}

func TestSetLevel_ControlsDebugVisibility(t *testing.T) {
	resetDefaultLogger(t)
	var buf bytes.Buffer
	InitLogging(LevelInfo, &buf)

	assert.False(t, IsDebugEnabled(), "Debug should be off at info level.")
	GetLogger("test").Debug("hidden")
	assert.Empty(t, buf.String(), "Debug entries below the level are dropped.")

	SetLevel(LevelDebug)
	assert.True(t, IsDebugEnabled(), "Debug should be on after SetLevel.")
	GetLogger("test").Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
