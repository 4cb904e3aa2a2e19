package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Epirus brand colors (dark variants).
const (
	ColorPrimary   = "#7C5CFC"
	ColorSecondary = "#38BDF8"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
	ColorText      = "#E5E7EB"
	ColorBorder    = "#4B5563"
)

// ThemeConfig selects the theme variant.
type ThemeConfig struct {
	// Mode is "dark" or "light". Empty means dark.
	Mode    string
	NoColor bool
}

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme is the color set shared by prompts and progress indicators.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme builds a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := Colors{
		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Success:   ColorSuccess,
		Error:     ColorError,
		Muted:     ColorMuted,
	}
	if cfg.Mode == "light" {
		colors = Colors{
			Primary:   "#5B3FD9",
			Secondary: "#0284C7",
			Success:   "#059669",
			Error:     "#DC2626",
			Muted:     "#9CA3AF",
		}
	}
	return &Theme{Colors: colors, NoColor: cfg.NoColor}
}

// huhTheme maps the epirus palette onto a huh form theme.
func (t *Theme) huhTheme() *huh.Theme {
	base := huh.ThemeBase()
	if t.NoColor {
		return base
	}

	primary := lipgloss.AdaptiveColor{Light: "#5B3FD9", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#0284C7", Dark: ColorSecondary}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	base.Focused.Base = base.Focused.Base.BorderForeground(border)
	base.Focused.Title = base.Focused.Title.Foreground(primary).Bold(true)
	base.Focused.Description = base.Focused.Description.Foreground(muted)
	base.Focused.ErrorIndicator = base.Focused.ErrorIndicator.Foreground(red)
	base.Focused.ErrorMessage = base.Focused.ErrorMessage.Foreground(red)
	base.Focused.TextInput.Cursor = base.Focused.TextInput.Cursor.Foreground(primary)
	base.Focused.TextInput.Placeholder = base.Focused.TextInput.Placeholder.Foreground(muted)
	base.Focused.TextInput.Prompt = base.Focused.TextInput.Prompt.Foreground(secondary)
	base.Focused.FocusedButton = base.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	base.Focused.BlurredButton = base.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	base.Blurred = base.Focused
	base.Blurred.Base = base.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return base
}
