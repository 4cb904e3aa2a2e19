package config

import (
	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultSolc      = "solc"
	DefaultGenerator = "web3j-openapi"
	DefaultGradle    = "gradle"

	DefaultLogLevel = "info"
	DefaultLogFile  = defs.RunLogFile

	MinAddressLength = 1
	MaxAddressLength = 32
)

// DefaultGeneratorArgs are passed to the generator before --config.
var DefaultGeneratorArgs = []string{"generate"}

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Project:   NewDefaultProjectDefaults(),
		Toolchain: NewDefaultToolchainConfig(),
		Log:       NewDefaultLogConfig(),
		UI:        UIConfig{},
	}
}

// NewDefaultProjectDefaults returns the project flag defaults.
func NewDefaultProjectDefaults() ProjectDefaults {
	return ProjectDefaults{
		Name:          models.DefaultProjectName,
		Package:       models.DefaultPackageName,
		OutputDir:     models.DefaultOutputDir,
		AddressLength: models.DefaultAddressLength,
	}
}

// NewDefaultToolchainConfig returns the executables looked up on PATH.
func NewDefaultToolchainConfig() ToolchainConfig {
	return ToolchainConfig{
		Solc:          DefaultSolc,
		Generator:     DefaultGenerator,
		GeneratorArgs: append([]string(nil), DefaultGeneratorArgs...),
		Gradle:        DefaultGradle,
	}
}

// NewDefaultLogConfig returns the run log defaults.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		File:  DefaultLogFile,
		Level: DefaultLogLevel,
	}
}

// applyDefaults fills zero values left by a partial configuration file.
func applyDefaults(cfg *Config) {
	def := NewDefaultConfig()
	if cfg.Project.Name == "" {
		cfg.Project.Name = def.Project.Name
	}
	if cfg.Project.Package == "" {
		cfg.Project.Package = def.Project.Package
	}
	if cfg.Project.OutputDir == "" {
		cfg.Project.OutputDir = def.Project.OutputDir
	}
	if cfg.Project.AddressLength == 0 {
		cfg.Project.AddressLength = def.Project.AddressLength
	}
	if cfg.Toolchain.Solc == "" {
		cfg.Toolchain.Solc = def.Toolchain.Solc
	}
	if cfg.Toolchain.Generator == "" {
		cfg.Toolchain.Generator = def.Toolchain.Generator
	}
	if cfg.Toolchain.GeneratorArgs == nil {
		cfg.Toolchain.GeneratorArgs = def.Toolchain.GeneratorArgs
	}
	if cfg.Toolchain.Gradle == "" {
		cfg.Toolchain.Gradle = def.Toolchain.Gradle
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
