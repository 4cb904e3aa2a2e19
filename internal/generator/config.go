// Package generator binds project metadata and contract artifacts into the
// configuration consumed by the external code generator, and drives that
// generator as a child process.
package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Configuration is the complete input of one generator invocation.
type Configuration struct {
	RunID         string                  `yaml:"run_id,omitempty"`
	ProjectName   string                  `yaml:"project_name"`
	PackageName   string                  `yaml:"package_name"`
	OutputDir     string                  `yaml:"output_dir"`
	ContextPath   string                  `yaml:"context_path"`
	AddressLength int                     `yaml:"address_length"`
	Contracts     []artifact.Artifact     `yaml:"contracts"`
	Options       models.GeneratorOptions `yaml:"options"`
}

// AddressBits returns the address length in bits, as the project templates
// expect it.
func (c Configuration) AddressBits() int {
	return c.AddressLength * 8
}

// Abs returns a copy of c whose output directory and contract paths are
// absolute. The generator runs inside the output directory, so relative
// paths would no longer point at the files they were resolved from.
func (c Configuration) Abs() (Configuration, error) {
	out, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return Configuration{}, fmt.Errorf("resolve output directory: %w", err)
	}
	c.OutputDir = out

	contracts := make([]artifact.Artifact, len(c.Contracts))
	for i, a := range c.Contracts {
		if a.ABIPath != "" {
			if a.ABIPath, err = filepath.Abs(a.ABIPath); err != nil {
				return Configuration{}, fmt.Errorf("resolve %s: %w", a.Name, err)
			}
		}
		if a.BINPath != "" {
			if a.BINPath, err = filepath.Abs(a.BINPath); err != nil {
				return Configuration{}, fmt.Errorf("resolve %s: %w", a.Name, err)
			}
		}
		contracts[i] = a
	}
	c.Contracts = contracts
	return c, nil
}

// Encode returns the YAML form of the configuration. Identical
// configurations encode to identical bytes.
func (c Configuration) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode generator configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode generator configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a configuration previously produced by Encode.
func Decode(data []byte) (Configuration, error) {
	var c Configuration
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Configuration{}, fmt.Errorf("decode generator configuration: %w", err)
	}
	return c, nil
}

// ConfigPath returns where the configuration of a project rooted at
// outputDir is written.
func ConfigPath(outputDir string) string {
	return filepath.Join(outputDir, defs.MetaDir, defs.GeneratorYAML)
}

// WriteConfig encodes c to ConfigPath(c.OutputDir) and returns that path.
func WriteConfig(c Configuration) (string, error) {
	data, err := c.Encode()
	if err != nil {
		return "", err
	}
	path := ConfigPath(c.OutputDir)
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return "", fmt.Errorf("create %s: %w", defs.MetaDir, err)
	}
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return "", fmt.Errorf("write generator configuration: %w", err)
	}
	return path, nil
}
