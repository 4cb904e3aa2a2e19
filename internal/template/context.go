package template

import (
	"runtime"

	"github.com/epirus-io/epirus-cli/pkg/models"
	"github.com/epirus-io/epirus-cli/pkg/version"
)

// TemplateContext provides data for rendering project and contract
// templates. All fields are exported for use with text/template.
type TemplateContext struct {
	// Project
	ProjectName string
	PackageName string
	ContextPath string

	// Chain
	AddressLength int // bytes
	AddressBits   int // AddressLength * 8

	// Token (ERC777 template)
	TokenName     string
	TokenSymbol   string
	InitialSupply string

	// Meta
	Version   string
	Platform  string
	CreatedAt string
}

// Token defaults for the ERC777 template.
const (
	DefaultTokenSymbol   = "TKN"
	DefaultInitialSupply = "1000000"
)

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults, then applies
// any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		ProjectName:   models.DefaultProjectName,
		PackageName:   models.DefaultPackageName,
		AddressLength: models.DefaultAddressLength,
		AddressBits:   models.DefaultAddressLength * 8,
		TokenSymbol:   DefaultTokenSymbol,
		InitialSupply: DefaultInitialSupply,
		Version:       version.GetVersion(),
		Platform:      runtime.GOOS,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	if ctx.ContextPath == "" {
		ctx.ContextPath = ctx.ProjectName
	}
	if ctx.TokenName == "" {
		ctx.TokenName = ctx.ProjectName
	}

	return ctx
}

// WithProject sets the project and package names.
func WithProject(name, packageName string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
		c.PackageName = packageName
	}
}

// WithContextPath sets the HTTP context path of the generated server.
func WithContextPath(path string) ContextOption {
	return func(c *TemplateContext) {
		c.ContextPath = path
	}
}

// WithAddressLength sets the address length in bytes and derives the bits.
// Non-positive values are ignored.
func WithAddressLength(bytes int) ContextOption {
	return func(c *TemplateContext) {
		if bytes > 0 {
			c.AddressLength = bytes
			c.AddressBits = bytes * 8
		}
	}
}

// WithToken sets the ERC777 token parameters. Empty values keep defaults.
func WithToken(name, symbol, initialSupply string) ContextOption {
	return func(c *TemplateContext) {
		if name != "" {
			c.TokenName = name
		}
		if symbol != "" {
			c.TokenSymbol = symbol
		}
		if initialSupply != "" {
			c.InitialSupply = initialSupply
		}
	}
}

// WithPlatform sets the target platform.
func WithPlatform(platform string) ContextOption {
	return func(c *TemplateContext) {
		c.Platform = platform
	}
}

// WithVersion sets the epirus version recorded in generated files.
func WithVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		c.Version = v
	}
}

// WithCreatedAt sets the project creation timestamp.
func WithCreatedAt(timestamp string) ContextOption {
	return func(c *TemplateContext) {
		c.CreatedAt = timestamp
	}
}
