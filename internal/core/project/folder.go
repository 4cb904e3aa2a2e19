package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/epirus-io/epirus-cli/internal/defs"
	"github.com/epirus-io/epirus-cli/internal/generator"
)

// Confirmer decides whether an existing project may be replaced.
type Confirmer interface {
	ConfirmOverwrite(path string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(path string) (bool, error)

// ConfirmOverwrite calls f.
func (f ConfirmFunc) ConfirmOverwrite(path string) (bool, error) {
	return f(path)
}

// FolderManager owns the output directory lifecycle. It is the only
// component that creates or deletes the project tree.
type FolderManager struct {
	confirmer Confirmer
	cleanup   *Cleanup
	logger    *slog.Logger
}

// NewFolderManager creates a FolderManager. A nil confirmer declines every
// overwrite that was not requested explicitly.
func NewFolderManager(confirmer Confirmer, cleanup *Cleanup, logger *slog.Logger) *FolderManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cleanup == nil {
		cleanup = NewCleanup(nil, logger)
	}
	return &FolderManager{confirmer: confirmer, cleanup: cleanup, logger: logger}
}

// Prepare returns an empty project directory for name under outputRoot.
// An existing project, or its packaged server jar next to it, is a
// conflict: it is replaced when overwrite is set or the confirmer accepts,
// and reported as ErrConflict without touching anything otherwise.
func (m *FolderManager) Prepare(outputRoot, name string, overwrite bool) (*Directory, error) {
	root := generator.ProjectDir(outputRoot, name)
	jar := filepath.Join(filepath.Dir(root), name+defs.ServerJarSuffix)

	rootExists, err := exists(root)
	if err != nil {
		return nil, err
	}
	jarExists, err := exists(jar)
	if err != nil {
		return nil, err
	}

	if rootExists || jarExists {
		target := root
		if !rootExists {
			target = jar
		}
		if !overwrite {
			ok, err := m.confirm(target)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrConflict, target)
			}
		}

		m.logger.Info("replacing existing project", "path", target)
		if err := os.RemoveAll(root); err != nil {
			return nil, fmt.Errorf("remove existing project: %w", err)
		}
		if err := os.Remove(jar); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("remove existing jar: %w", err)
		}
	}

	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	m.logger.Debug("project directory ready", "path", root)

	return &Directory{structure: NewStructure(root), cleanup: m.cleanup}, nil
}

func (m *FolderManager) confirm(path string) (bool, error) {
	if m.confirmer == nil {
		return false, nil
	}
	ok, err := m.confirmer.ConfirmOverwrite(path)
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return ok, nil
}

// exists reports whether path exists without following a final symlink.
func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check %s: %w", path, err)
}

// Directory is a prepared project directory.
type Directory struct {
	structure ProjectStructure
	cleanup   *Cleanup
}

// Structure returns the project layout.
func (d *Directory) Structure() ProjectStructure {
	return d.structure
}

// Root returns the project directory.
func (d *Directory) Root() string {
	return d.structure.Root()
}

// Scaffold creates the top-level project directories.
func (d *Directory) Scaffold() error {
	for _, dir := range d.structure.scaffoldDirs() {
		if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return nil
}

// Fail schedules the partial project for removal at exit. The directory
// stays on disk until then.
func (d *Directory) Fail() bool {
	return d.cleanup.Register(d.Root())
}

// Discard schedules a successful but transient project, such as the jar
// workspace, for removal at exit.
func (d *Directory) Discard() bool {
	return d.cleanup.Register(d.Root())
}
