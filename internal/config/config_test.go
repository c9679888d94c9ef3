// file: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkoosis/agentrelay/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, "127.0.0.1", settings.BindAddress, "Default bind address should be loopback.")
	assert.Equal(t, 60766, settings.Port, "Default port should match the documented default.")
	assert.NoError(t, settings.Validate(), "Defaults must validate.")
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "valid loopback", settings: Settings{BindAddress: "127.0.0.1", Port: 60766}, wantErr: false},
		{name: "valid all interfaces", settings: Settings{BindAddress: "0.0.0.0", Port: 1}, wantErr: false},
		{name: "empty address", settings: Settings{BindAddress: "", Port: 8080}, wantErr: true},
		{name: "zero port", settings: Settings{BindAddress: "127.0.0.1", Port: 0}, wantErr: true},
		{name: "port too large", settings: Settings{BindAddress: "127.0.0.1", Port: 65536}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsAddr(t *testing.T) {
	settings := Settings{BindAddress: "127.0.0.1", Port: 60766}
	assert.Equal(t, "127.0.0.1:60766", settings.Addr())
}

func TestLoadFromFile_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	settings := LoadFromFile(path, logging.GetNoopLogger())
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadFromFile_CorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))

	settings := LoadFromFile(path, logging.GetNoopLogger())
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadFromFile_ReadsStoredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	stored := Settings{BindAddress: "0.0.0.0", Port: 9999}
	data, err := yaml.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	settings := LoadFromFile(path, logging.GetNoopLogger())
	assert.Equal(t, stored, settings)
}

func TestLoadFromFile_EnvironmentOverrides(t *testing.T) {
	t.Setenv("AGENT_RELAY_BIND_ADDRESS", "0.0.0.0")
	t.Setenv("AGENT_RELAY_PORT", "12345")

	path := filepath.Join(t.TempDir(), "missing.yaml")
	settings := LoadFromFile(path, logging.GetNoopLogger())
	assert.Equal(t, "0.0.0.0", settings.BindAddress)
	assert.Equal(t, 12345, settings.Port)
}

func TestStoreUpdate_PersistsAndKeepsMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := NewStore(path, logging.GetNoopLogger())

	updated := Settings{BindAddress: "127.0.0.1", Port: 50505}
	require.NoError(t, store.Update(updated))
	assert.Equal(t, updated, store.Current())

	// A fresh store must read back what was persisted.
	reloaded := NewStore(path, logging.GetNoopLogger())
	assert.Equal(t, updated, reloaded.Current())
}

func TestStoreUpdate_RejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store := NewStore(path, logging.GetNoopLogger())
	before := store.Current()

	err := store.Update(Settings{BindAddress: "", Port: 0})
	require.Error(t, err)
	assert.Equal(t, before, store.Current(), "Invalid settings must not replace the active ones.")
}

func TestStoreUpdate_PersistFailureKeepsMemory(t *testing.T) {
	// Point the store at a path whose parent is a file, so persistence fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	path := filepath.Join(blocker, "settings.yaml")

	store := NewStore(path, logging.GetNoopLogger())
	updated := Settings{BindAddress: "127.0.0.1", Port: 50607}

	err := store.Update(updated)
	require.Error(t, err, "Persistence into a non-directory must fail.")
	assert.Equal(t, updated, store.Current(), "In-memory settings stay applied even when persistence fails.")
}
