package generator

import (
	"path/filepath"
	"strings"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Bind merges the project configuration with the resolved artifacts. It is
// pure: the same inputs always produce an equal Configuration, and the
// result shares no slice with its inputs.
//
// The output directory receives the project name as its last segment
// exactly once. The context path loses trailing separators and falls back
// to the project name when empty.
func Bind(cfg models.ProjectConfiguration, set *artifact.Set) Configuration {
	var contracts []artifact.Artifact
	if set != nil {
		contracts = set.Artifacts()
	}
	if contracts == nil {
		contracts = []artifact.Artifact{}
	}

	return Configuration{
		ProjectName:   cfg.ProjectName,
		PackageName:   cfg.PackageName,
		OutputDir:     ProjectDir(cfg.OutputDir, cfg.ProjectName),
		ContextPath:   contextPath(cfg.ContextPath, cfg.ProjectName),
		AddressLength: cfg.AddressLength,
		Contracts:     contracts,
		Options:       cfg.Generator,
	}
}

// ProjectDir appends name to dir unless dir's last segment already is name.
// Bind and the project folder manager both resolve the project root with it.
func ProjectDir(dir, name string) string {
	if dir == "" {
		dir = "."
	}
	dir = filepath.Clean(dir)
	if filepath.Base(dir) == name {
		return dir
	}
	return filepath.Join(dir, name)
}

// contextPath strips trailing slashes and backslashes; empty means name.
func contextPath(path, name string) string {
	path = strings.TrimRight(strings.TrimSpace(path), `/\`)
	if path == "" {
		return name
	}
	return path
}
