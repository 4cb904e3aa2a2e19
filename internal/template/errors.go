// Package template provides the embedded project and contract templates of
// the epirus scaffolder, a strict text/template renderer and a deployer that
// writes a rendered template tree into a project root.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a missing key.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a dynamic token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates a template path escapes the project root.
	ErrPathTraversal = errors.New("template: path traversal")
)
