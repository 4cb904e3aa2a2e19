package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// Deployer extracts a template tree and writes it to a project root.
type Deployer interface {
	// Deploy writes every template to projectRoot and returns the written
	// paths relative to projectRoot, in walk order. If tmplCtx is provided,
	// files ending in .tmpl are rendered and saved without the suffix.
	Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext) ([]string, error)
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	fsys     fs.FS
	renderer Renderer
}

// NewDeployer creates a Deployer that renders the .tmpl files of fsys.
// In production the fs.FS comes from go:embed; in tests use testing/fstest.MapFS.
func NewDeployer(fsys fs.FS) Deployer {
	return &deployer{fsys: fsys, renderer: NewRenderer(fsys)}
}

// Deploy walks the filesystem and writes every file to projectRoot.
// Existing files are left alone, so contract sources or build files placed
// by an earlier step survive.
func (d *deployer) Deploy(ctx context.Context, projectRoot string, tmplCtx *TemplateContext) ([]string, error) {
	projectRoot = filepath.Clean(projectRoot)

	var written []string
	walkErr := fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Check context cancellation before each file
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path == "." || entry.IsDir() {
			return nil
		}

		if err := validateDeployPath(projectRoot, path); err != nil {
			return err
		}

		isTemplate := strings.HasSuffix(path, ".tmpl")
		var content []byte
		var destRelPath string

		if isTemplate && tmplCtx != nil {
			rendered, renderErr := d.renderer.Render(path, tmplCtx)
			if renderErr != nil {
				return fmt.Errorf("template render %q: %w", path, renderErr)
			}
			content = rendered
			destRelPath = strings.TrimSuffix(path, ".tmpl")
		} else {
			rawContent, readErr := fs.ReadFile(d.fsys, path)
			if readErr != nil {
				return fmt.Errorf("template deploy read %q: %w", path, readErr)
			}
			content = rawContent
			destRelPath = path
		}

		destPath := filepath.Join(projectRoot, filepath.FromSlash(destRelPath))

		if _, statErr := os.Stat(destPath); statErr == nil {
			return nil
		}

		destDir := filepath.Dir(destPath)
		if err := os.MkdirAll(destDir, defs.DirPerm); err != nil {
			return fmt.Errorf("template deploy mkdir %q: %w", destDir, err)
		}

		if err := os.WriteFile(destPath, content, filePerm(destRelPath)); err != nil {
			return fmt.Errorf("template deploy write %q: %w", destPath, err)
		}

		written = append(written, destRelPath)
		return nil
	})

	if walkErr != nil {
		return written, walkErr
	}
	return written, nil
}

// filePerm returns the executable mode for shell scripts and the gradle
// wrapper, the default file mode otherwise.
func filePerm(relPath string) fs.FileMode {
	if strings.HasSuffix(relPath, ".sh") || filepath.Base(relPath) == defs.GradleWrapper {
		return defs.ExecPerm
	}
	return defs.FilePerm
}

// validateDeployPath ensures a template path does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) && absPath != absProjectRoot {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
