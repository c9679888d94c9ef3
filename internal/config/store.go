// file: internal/config/store.go
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dkoosis/agentrelay/internal/logging"
	"gopkg.in/yaml.v3"
)

// Store owns the current listener settings. Reads may run concurrently;
// updates take exclusive access and persist before the caller proceeds to
// restart the listener, so a restart never observes a half-written value.
type Store struct {
	mu      sync.RWMutex
	current Settings
	path    string
	logger  logging.Logger
}

// NewStore loads the settings at path (defaults on absence or corruption)
// and returns a store holding them.
func NewStore(path string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	logger = logger.WithField("component", "settings_store")
	return &Store{
		current: LoadFromFile(path, logger),
		path:    path,
		logger:  logger,
	}
}

// Current returns a copy of the active settings.
func (s *Store) Current() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates and applies new settings, then persists them to disk.
// The in-memory value is replaced before persistence is attempted and is
// NOT rolled back if the write fails; memory and disk stay inconsistent
// until the next successful save. Callers get the persistence error.
func (s *Store) Update(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	if err := s.persist(settings); err != nil {
		s.logger.Error("Failed to persist settings.", "path", s.path, "error", err)
		return errors.Wrap(err, "failed to persist settings")
	}
	s.logger.Info("Settings persisted.", "path", s.path, "bind_address", settings.BindAddress, "port", settings.Port)
	return nil
}

// persist writes the settings as YAML, creating parent directories as needed.
func (s *Store) persist(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrapf(err, "failed to create settings directory: %s", dir)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write settings file: %s", s.path)
	}
	return nil
}
