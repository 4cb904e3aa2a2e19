package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// maxConfigSize bounds the configuration file read into memory.
const maxConfigSize = 1 << 20

// Loader reads the configuration file from a directory.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger}
}

// Load reads config.yaml from configDir and returns a Config with defaults
// applied for missing fields. A missing file yields the defaults and
// loaded=false. Invalid YAML returns an error wrapping ErrInvalidYAML.
func (l *Loader) Load(configDir string) (cfg *Config, loaded bool, err error) {
	cfg = NewDefaultConfig()
	path := filepath.Join(filepath.Clean(configDir), defs.ConfigYAML)

	data, err := readBounded(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("config file not found, using defaults", "path", path)
			return cfg, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	applyDefaults(cfg)

	l.logger.Debug("config loaded", "path", path)
	return cfg, true, nil
}

// readBounded reads at most maxConfigSize bytes of path.
func readBounded(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("config file exceeds %d bytes", maxConfigSize)
	}
	return data, nil
}
