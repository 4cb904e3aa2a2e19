package config

// Config is the root of the user configuration file.
type Config struct {
	Project   ProjectDefaults `yaml:"project" json:"project" jsonschema:"description=Defaults for the project flags of every command"`
	Toolchain ToolchainConfig `yaml:"toolchain" json:"toolchain" jsonschema:"description=External executables driven by the pipeline"`
	Log       LogConfig       `yaml:"log" json:"log"`
	UI        UIConfig        `yaml:"ui" json:"ui"`
	DevMode   bool            `yaml:"dev_mode" json:"dev_mode" jsonschema:"description=Keep partial output and the run log after every run"`
}

// ProjectDefaults seeds the -n, -p, -o, --context-path and --address-length flags.
type ProjectDefaults struct {
	Name          string `yaml:"name" json:"name"`
	Package       string `yaml:"package" json:"package"`
	OutputDir     string `yaml:"output_dir" json:"output_dir"`
	ContextPath   string `yaml:"context_path,omitempty" json:"context_path,omitempty"`
	AddressLength int    `yaml:"address_length" json:"address_length" jsonschema:"minimum=1,maximum=32"`
}

// ToolchainConfig names the executables used for compile, generate and build.
type ToolchainConfig struct {
	Solc          string   `yaml:"solc" json:"solc"`
	Generator     string   `yaml:"generator" json:"generator"`
	GeneratorArgs []string `yaml:"generator_args,omitempty" json:"generator_args,omitempty"`
	// Gradle is used only when the project has no gradle wrapper.
	Gradle string `yaml:"gradle" json:"gradle"`
}

// LogConfig controls the run log file.
type LogConfig struct {
	File  string `yaml:"file" json:"file"`
	Level string `yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor        bool          `yaml:"no_color" json:"no_color"`
	NonInteractive bool          `yaml:"non_interactive" json:"non_interactive"`
	Answers        PromptAnswers `yaml:"answers,omitempty" json:"answers,omitempty" jsonschema:"description=Answers used by prompts in a non-interactive session"`
}

// PromptAnswers replace the interactive prompts when no terminal is
// available.
type PromptAnswers struct {
	SolidityPath string `yaml:"solidity_path,omitempty" json:"solidity_path,omitempty"`
	Overwrite    bool   `yaml:"overwrite,omitempty" json:"overwrite,omitempty"`
}

// validLogLevels lists the accepted log.level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}
