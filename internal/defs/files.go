// Package defs holds file names, directory names and permissions shared
// across the epirus packages.
package defs

// Common file names used across the project.
const (
	// ConfigYAML is the user configuration file under the config directory.
	ConfigYAML = "config.yaml"

	// RunLogFile is the default run log written in the working directory.
	RunLogFile = "epirus.log"

	// GeneratorYAML is the generator configuration written under MetaDir.
	GeneratorYAML = "generator.yaml"

	// ServerJarSuffix is appended to the project name for the packaged jar.
	ServerJarSuffix = "-server-all.jar"

	// GradleWrapper is the POSIX gradle wrapper script.
	GradleWrapper = "gradlew"

	// GradleWrapperBat is the Windows gradle wrapper script.
	GradleWrapperBat = "gradlew.bat"
)

// Directory names inside a generated project and the user home.
const (
	// ConfigDir is the per-user configuration directory under $HOME.
	ConfigDir = ".epirus"

	// MetaDir holds run metadata inside a generated project.
	MetaDir = ".epirus"

	// SoliditySubdir holds contract sources inside a generated project.
	SoliditySubdir = "src/main/solidity"

	// WrapperSubdir holds the gradle wrapper properties.
	WrapperSubdir = "gradle/wrapper"

	// BuildSubdir receives compiler output during a run.
	BuildSubdir = "build/solc"

	// ServerLibsSubdir is where the build tool writes the fat server jar.
	ServerLibsSubdir = "server/build/libs"
)

// Permissions for created files and directories.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
	ExecPerm = 0o755
)
