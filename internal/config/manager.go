package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// Manager provides thread-safe access to the user configuration.
// It must be initialized via Load() before use.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	dir    string
	loaded bool
	loader *Loader
}

// NewManager creates a Manager in uninitialized state.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{loader: NewLoader(logger)}
}

// ResolveDir returns the configuration directory: $EPIRUS_CONFIG_DIR when
// set, otherwise ~/.epirus. An unknown home directory falls back to the
// working directory.
func ResolveDir() string {
	if envDir := os.Getenv("EPIRUS_CONFIG_DIR"); envDir != "" {
		return filepath.Clean(envDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defs.ConfigDir
	}
	return filepath.Join(home, defs.ConfigDir)
}

// Load reads the configuration from configDir, or from ResolveDir() when
// configDir is empty. File values override compiled defaults and
// environment variables override file values. The merged configuration is
// validated before being stored.
func (m *Manager) Load(configDir string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if configDir == "" {
		configDir = ResolveDir()
	}

	cfg, loaded, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.dir = configDir
	m.loaded = loaded
	return cfg, nil
}

// Get returns a copy of the current configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return nil
	}
	c := *m.config
	c.Toolchain.GeneratorArgs = append([]string(nil), m.config.Toolchain.GeneratorArgs...)
	return &c
}

// Path returns the configuration file path of the last Load.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filepath.Join(m.dir, defs.ConfigYAML)
}

// FromFile reports whether the last Load read an existing file.
func (m *Manager) FromFile() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Marshal returns the effective configuration as YAML.
func (m *Manager) Marshal() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil, ErrNotInitialized
	}
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if isTruthy(os.Getenv("EPIRUS_DEV_MODE")) {
		cfg.DevMode = true
	}
	if level := os.Getenv("EPIRUS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if file := os.Getenv("EPIRUS_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
	if solc := os.Getenv("EPIRUS_SOLC"); solc != "" {
		cfg.Toolchain.Solc = solc
	}
	if gen := os.Getenv("EPIRUS_GENERATOR"); gen != "" {
		cfg.Toolchain.Generator = gen
	}
	if isTruthy(os.Getenv("EPIRUS_NO_COLOR")) {
		cfg.UI.NoColor = true
	}
	if isTruthy(os.Getenv("EPIRUS_NON_INTERACTIVE")) {
		cfg.UI.NonInteractive = true
	}
}

func isTruthy(v string) bool {
	return v == "true" || v == "1"
}
