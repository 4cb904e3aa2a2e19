package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/epirus-io/epirus-cli/internal/config"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Flag names shared by the generation commands.
const (
	flagOutput        = "output"
	flagPackage       = "package"
	flagName          = "name"
	flagContextPath   = "context-path"
	flagAddressLength = "address-length"
	flagOverwrite     = "overwrite"
	flagDev           = "dev"
	flagABI           = "abi"
	flagBin           = "bin"
)

// addProjectFlags registers the flags every generation command accepts.
// The compiled defaults shown in help are replaced by the user
// configuration for flags left unset.
func addProjectFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP(flagOutput, "o", models.DefaultOutputDir, "Destination base directory")
	f.StringP(flagPackage, "p", models.DefaultPackageName, "Base package name of the generated project")
	f.StringP(flagName, "n", models.DefaultProjectName, "Project name")
	f.String(flagContextPath, "", "HTTP context path of the generated server (default: project name)")
	f.Int(flagAddressLength, models.DefaultAddressLength, "Address length in bytes of the target chain")
	f.Bool(flagOverwrite, false, "Overwrite an existing project without asking")
	f.Bool(flagDev, false, "Keep partial output and the run log")
}

// addArtifactFlags registers the -a/-b artifact list flags.
func addArtifactFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceP(flagABI, "a", nil, "ABI files or directories")
	f.StringSliceP(flagBin, "b", nil, "BIN files or directories")
}

// projectConfiguration merges the project flags of cmd over the
// configuration defaults. Names are returned in NFC form.
func projectConfiguration(cmd *cobra.Command, cfg *config.Config) models.ProjectConfiguration {
	pc := models.NewProjectConfiguration()
	if cfg != nil {
		pc.ProjectName = cfg.Project.Name
		pc.PackageName = cfg.Project.Package
		pc.OutputDir = cfg.Project.OutputDir
		pc.ContextPath = cfg.Project.ContextPath
		pc.AddressLength = cfg.Project.AddressLength
		pc.DevMode = cfg.DevMode
	}

	flags := cmd.Flags()
	if flags.Changed(flagName) {
		pc.ProjectName = getStringFlag(cmd, flagName)
	}
	if flags.Changed(flagPackage) {
		pc.PackageName = getStringFlag(cmd, flagPackage)
	}
	if flags.Changed(flagOutput) {
		pc.OutputDir = getStringFlag(cmd, flagOutput)
	}
	if flags.Changed(flagContextPath) {
		pc.ContextPath = getStringFlag(cmd, flagContextPath)
	}
	if flags.Changed(flagAddressLength) {
		pc.AddressLength = getIntFlag(cmd, flagAddressLength)
	}
	pc.ProjectName = norm.NFC.String(pc.ProjectName)
	pc.PackageName = norm.NFC.String(pc.PackageName)
	pc.Overwrite = getBoolFlag(cmd, flagOverwrite)
	if getBoolFlag(cmd, flagDev) {
		pc.DevMode = true
	}
	return pc
}

// loadedConfig returns the configuration loaded by the root command, or
// nil before it ran.
func loadedConfig() *config.Config {
	if deps == nil || deps.Config == nil {
		return nil
	}
	return deps.Config.Get()
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}

// getStringSliceFlag retrieves a string slice flag value from the command.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}
