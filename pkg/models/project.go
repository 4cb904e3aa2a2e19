package models

import (
	"fmt"
	"strings"
)

// Defaults applied when neither a flag nor the user configuration sets a value.
const (
	DefaultProjectName   = "Web3App"
	DefaultPackageName   = "io.epirus"
	DefaultOutputDir     = "."
	DefaultAddressLength = 20
)

// ProjectConfiguration holds the parameters of a single scaffold run.
type ProjectConfiguration struct {
	ProjectName   string           `yaml:"project_name" json:"project_name"`
	PackageName   string           `yaml:"package_name" json:"package_name"`
	OutputDir     string           `yaml:"output_dir" json:"output_dir"`
	ContextPath   string           `yaml:"context_path" json:"context_path"`
	AddressLength int              `yaml:"address_length" json:"address_length"` // bytes
	Overwrite     bool             `yaml:"overwrite" json:"overwrite"`
	DevMode       bool             `yaml:"dev_mode" json:"dev_mode"`
	Generator     GeneratorOptions `yaml:"generator" json:"generator"`
}

// NewProjectConfiguration returns a configuration populated with the
// compiled defaults and the default generator options.
func NewProjectConfiguration() ProjectConfiguration {
	return ProjectConfiguration{
		ProjectName:   DefaultProjectName,
		PackageName:   DefaultPackageName,
		OutputDir:     DefaultOutputDir,
		AddressLength: DefaultAddressLength,
		Generator:     DefaultGeneratorOptions(),
	}
}

// TemplateType identifies a bundled project template.
type TemplateType string

const (
	TemplateHelloWorld TemplateType = "HelloWorld"
	TemplateERC777     TemplateType = "ERC777"
)

// ValidTemplateTypes returns all supported template types.
func ValidTemplateTypes() []TemplateType {
	return []TemplateType{TemplateHelloWorld, TemplateERC777}
}

// IsValid checks if the template type is one of the supported values.
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateHelloWorld, TemplateERC777:
		return true
	}
	return false
}

// String returns the string representation of the template type.
func (t TemplateType) String() string {
	return string(t)
}

// ParseTemplateType resolves a template name case-insensitively.
// An empty name selects HelloWorld.
func ParseTemplateType(name string) (TemplateType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return TemplateHelloWorld, nil
	}
	for _, t := range ValidTemplateTypes() {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template %q: must be one of %s, %s", name, TemplateHelloWorld, TemplateERC777)
}
