package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// promptImpl implements Prompt with huh forms.
type promptImpl struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewPrompt creates a Prompt backed by the given theme and headless manager.
func NewPrompt(theme *Theme, hm *HeadlessManager) Prompt {
	return &promptImpl{theme: theme, headless: hm}
}

// Confirm asks a yes/no question.
func (p *promptImpl) Confirm(label string, defaultVal bool) (bool, error) {
	if p.headless.IsHeadless() {
		return p.confirmHeadless(defaultVal), nil
	}
	return p.confirmInteractive(label, defaultVal)
}

func (p *promptImpl) confirmHeadless(defaultVal bool) bool {
	v, ok := p.headless.GetDefault(KeyOverwrite)
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return defaultVal
	}
	return b
}

func (p *promptImpl) confirmInteractive(label string, defaultVal bool) (bool, error) {
	value := defaultVal
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(label).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	)).WithTheme(p.theme.huhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return value, nil
}

// Input asks for a line of text.
func (p *promptImpl) Input(label string, opts ...InputOption) (string, error) {
	var cfg inputConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if p.headless.IsHeadless() {
		return p.inputHeadless(cfg)
	}
	return p.inputInteractive(label, cfg)
}

func (p *promptImpl) inputHeadless(cfg inputConfig) (string, error) {
	if cfg.key != "" {
		if v, ok := p.headless.GetDefault(cfg.key); ok {
			if cfg.validate != nil {
				if err := cfg.validate(v); err != nil {
					return "", err
				}
			}
			return v, nil
		}
	}
	if cfg.defaultVal != "" {
		return cfg.defaultVal, nil
	}
	return "", ErrHeadlessNoDefaults
}

func (p *promptImpl) inputInteractive(label string, cfg inputConfig) (string, error) {
	value := cfg.defaultVal
	inp := huh.NewInput().
		Title(label).
		Value(&value)
	if cfg.placeholder != "" {
		inp = inp.Placeholder(cfg.placeholder)
	}
	if cfg.validate != nil {
		validate := cfg.validate
		inp = inp.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	form := huh.NewForm(huh.NewGroup(inp)).WithTheme(p.theme.huhTheme())
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		value = cfg.defaultVal
	}
	return value, nil
}
