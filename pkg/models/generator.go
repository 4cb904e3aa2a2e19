package models

// GeneratorOptionsVersion is the current version of the GeneratorOptions
// layout written to the generator configuration file.
const GeneratorOptionsVersion = 1

// GeneratorOptions selects which parts of the project the code generator
// emits. It replaces the older per-command configuration variants.
type GeneratorOptions struct {
	Version         int  `yaml:"version" json:"version"`
	Implementations bool `yaml:"implementations" json:"implementations"`
	Wrappers        bool `yaml:"wrappers" json:"wrappers"`
	SwaggerUI       bool `yaml:"swagger_ui" json:"swagger_ui"`
	GradleResources bool `yaml:"gradle_resources" json:"gradle_resources"`
	ServerBuildFile bool `yaml:"server_build_file" json:"server_build_file"`
	CoreBuildFile   bool `yaml:"core_build_file" json:"core_build_file"`
}

// DefaultGeneratorOptions enables every generated artifact. Used by the
// new, import and jar commands.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Version:         GeneratorOptionsVersion,
		Implementations: true,
		Wrappers:        true,
		SwaggerUI:       true,
		GradleResources: true,
		ServerBuildFile: true,
		CoreBuildFile:   true,
	}
}

// InterfaceOnlyOptions is the preset of the generate command: interfaces
// and wrappers only, with implementations on request and no build files.
func InterfaceOnlyOptions(withImplementations bool) GeneratorOptions {
	return GeneratorOptions{
		Version:         GeneratorOptionsVersion,
		Implementations: withImplementations,
		Wrappers:        true,
	}
}
