// Package config handles loading, validating, and persisting the relay's
// listener settings. Settings live in a small YAML file; environment
// variables override whatever the file provides.
// file: internal/config/config.go
package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/dkoosis/agentrelay/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default listener binding. Loopback only: the relay trusts its callers.
const (
	DefaultBindAddress = "127.0.0.1"
	DefaultPort        = 60766
)

// Settings describes where the HTTP listener binds.
type Settings struct {
	// BindAddress is the interface the listener binds to.
	BindAddress string `yaml:"bind_address" env:"AGENT_RELAY_BIND_ADDRESS"`
	// Port is the TCP port the listener binds to, 1..65535.
	Port int `yaml:"port" env:"AGENT_RELAY_PORT"`
}

// DefaultSettings returns the loopback defaults used when no settings file
// exists or the stored one cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		BindAddress: DefaultBindAddress,
		Port:        DefaultPort,
	}
}

// Validate checks the settings invariants: non-empty address, non-zero port.
func (s Settings) Validate() error {
	if s.BindAddress == "" {
		return errors.New("bind address cannot be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return errors.Newf("port must be between 1 and 65535, got %d", s.Port)
	}
	return nil
}

// Addr returns the address:port string the listener binds to.
func (s Settings) Addr() string {
	return net.JoinHostPort(s.BindAddress, strconv.Itoa(s.Port))
}

// LoadFromFile reads settings from the YAML file at path, starting from
// defaults and finishing with environment overrides. A missing or corrupt
// file is not an error: the defaults are returned and the problem logged.
func LoadFromFile(path string, logger logging.Logger) Settings {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	settings := DefaultSettings()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from a flag or default, trusted.
	switch {
	case os.IsNotExist(err):
		logger.Debug("No settings file found, using defaults.", "path", path)
	case err != nil:
		logger.Warn("Failed to read settings file, using defaults.", "path", path, "error", err)
	default:
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			logger.Warn("Failed to parse settings file, using defaults.", "path", path, "error", unmarshalErr)
			settings = DefaultSettings()
		}
	}

	applyEnvironmentOverrides(&settings, logger)

	if validateErr := settings.Validate(); validateErr != nil {
		logger.Warn("Stored settings are invalid, using defaults.", "path", path, "error", validateErr)
		return DefaultSettings()
	}
	return settings
}

// applyEnvironmentOverrides overlays AGENT_RELAY_* variables onto settings.
func applyEnvironmentOverrides(settings *Settings, logger logging.Logger) {
	if err := env.Parse(settings); err != nil {
		logger.Warn("Failed to parse environment overrides.", "error", err)
	}
}

// DefaultPath returns the default settings file location inside the user's
// config directory, falling back to the working directory.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "agentrelay.yaml"
	}
	return filepath.Join(configDir, "agentrelay", "settings.yaml")
}
