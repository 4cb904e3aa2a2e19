package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded shell or template variables.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness and returns
// *ValidationErrors listing every violation.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateProject(&cfg.Project)...)
	errs = append(errs, validateToolchain(&cfg.Toolchain)...)
	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateProject checks the project flag defaults.
func validateProject(p *ProjectDefaults) []ValidationError {
	var errs []ValidationError

	if p.AddressLength < MinAddressLength || p.AddressLength > MaxAddressLength {
		errs = append(errs, ValidationError{
			Field:   "project.address_length",
			Message: fmt.Sprintf("must be between %d and %d bytes", MinAddressLength, MaxAddressLength),
			Value:   p.AddressLength,
			Wrapped: ErrInvalidConfig,
		})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{
			Field:   "project.name",
			Message: "must not be blank",
			Wrapped: ErrInvalidConfig,
		})
	}
	if strings.TrimSpace(p.Package) == "" {
		errs = append(errs, ValidationError{
			Field:   "project.package",
			Message: "must not be blank",
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}

// validateToolchain checks that every executable name is set.
func validateToolchain(t *ToolchainConfig) []ValidationError {
	var errs []ValidationError

	for field, value := range map[string]string{
		"toolchain.solc":      t.Solc,
		"toolchain.generator": t.Generator,
		"toolchain.gradle":    t.Gradle,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "executable must not be blank",
				Wrapped: ErrInvalidConfig,
			})
		}
	}
	slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })

	return errs
}

// validateLog checks the log level.
func validateLog(l *LogConfig) []ValidationError {
	if !slices.Contains(validLogLevels, l.Level) {
		return []ValidationError{
			{
				Field:   "log.level",
				Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
				Value:   l.Level,
				Wrapped: ErrInvalidLogLevel,
			},
		}
	}
	return nil
}

// validateDynamicTokens rejects string values containing unexpanded tokens.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError

	fields := []struct {
		name  string
		value string
	}{
		{"project.name", cfg.Project.Name},
		{"project.package", cfg.Project.Package},
		{"project.output_dir", cfg.Project.OutputDir},
		{"project.context_path", cfg.Project.ContextPath},
		{"toolchain.solc", cfg.Toolchain.Solc},
		{"toolchain.generator", cfg.Toolchain.Generator},
		{"toolchain.gradle", cfg.Toolchain.Gradle},
		{"log.file", cfg.Log.File},
		{"ui.answers.solidity_path", cfg.UI.Answers.SolidityPath},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		for _, pattern := range dynamicTokenPatterns {
			if pattern.MatchString(f.value) {
				errs = append(errs, ValidationError{
					Field:   f.name,
					Message: fmt.Sprintf("contains unexpanded dynamic token: %s", pattern.FindString(f.value)),
					Value:   f.value,
					Wrapped: ErrDynamicToken,
				})
				break
			}
		}
	}

	return errs
}
