package project

import (
	"path/filepath"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// ProjectStructure is the filesystem layout of a generated project. It is
// fixed at creation.
type ProjectStructure struct {
	root     string
	solidity string
	wrapper  string
	build    string
	meta     string
}

// NewStructure returns the layout rooted at root.
func NewStructure(root string) ProjectStructure {
	root = filepath.Clean(root)
	return ProjectStructure{
		root:     root,
		solidity: filepath.Join(root, filepath.FromSlash(defs.SoliditySubdir)),
		wrapper:  filepath.Join(root, filepath.FromSlash(defs.WrapperSubdir)),
		build:    filepath.Join(root, filepath.FromSlash(defs.BuildSubdir)),
		meta:     filepath.Join(root, defs.MetaDir),
	}
}

// Root returns the project directory.
func (s ProjectStructure) Root() string { return s.root }

// SolidityPath returns the directory holding Solidity sources.
func (s ProjectStructure) SolidityPath() string { return s.solidity }

// WrapperPath returns the gradle wrapper directory.
func (s ProjectStructure) WrapperPath() string { return s.wrapper }

// BuildPath returns the compiler output directory.
func (s ProjectStructure) BuildPath() string { return s.build }

// MetaPath returns the epirus metadata directory.
func (s ProjectStructure) MetaPath() string { return s.meta }

// Name returns the last element of the project directory.
func (s ProjectStructure) Name() string { return filepath.Base(s.root) }

// scaffoldDirs returns the directories created by Directory.Scaffold.
func (s ProjectStructure) scaffoldDirs() []string {
	return []string{s.solidity, s.wrapper, s.meta}
}
