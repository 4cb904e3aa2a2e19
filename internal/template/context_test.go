package template

import (
	"runtime"
	"testing"

	"github.com/epirus-io/epirus-cli/pkg/models"
)

func TestNewTemplateContextDefaults(t *testing.T) {
	ctx := NewTemplateContext()

	if ctx.ProjectName != models.DefaultProjectName {
		t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, models.DefaultProjectName)
	}
	if ctx.PackageName != models.DefaultPackageName {
		t.Errorf("PackageName = %q, want %q", ctx.PackageName, models.DefaultPackageName)
	}
	if ctx.ContextPath != models.DefaultProjectName {
		t.Errorf("ContextPath = %q, want project name", ctx.ContextPath)
	}
	if ctx.AddressLength != 20 || ctx.AddressBits != 160 {
		t.Errorf("address = %d bytes / %d bits, want 20/160", ctx.AddressLength, ctx.AddressBits)
	}
	if ctx.TokenName != models.DefaultProjectName {
		t.Errorf("TokenName = %q, want project name", ctx.TokenName)
	}
	if ctx.TokenSymbol != DefaultTokenSymbol || ctx.InitialSupply != DefaultInitialSupply {
		t.Errorf("token = %s/%s, want defaults", ctx.TokenSymbol, ctx.InitialSupply)
	}
	if ctx.Platform != runtime.GOOS {
		t.Errorf("Platform = %q, want %q", ctx.Platform, runtime.GOOS)
	}
}

func TestTemplateContextOptions(t *testing.T) {
	ctx := NewTemplateContext(
		WithProject("Coin", "org.coin"),
		WithContextPath("coin-api"),
		WithAddressLength(32),
		WithToken("", "CN", "42"),
		WithPlatform("windows"),
		WithVersion("v1.2.3"),
		WithCreatedAt("2026-01-02T03:04:05Z"),
	)

	if ctx.ProjectName != "Coin" || ctx.PackageName != "org.coin" {
		t.Errorf("project = %s/%s", ctx.ProjectName, ctx.PackageName)
	}
	if ctx.ContextPath != "coin-api" {
		t.Errorf("ContextPath = %q", ctx.ContextPath)
	}
	if ctx.AddressBits != 256 {
		t.Errorf("AddressBits = %d, want 256", ctx.AddressBits)
	}
	if ctx.TokenName != "Coin" {
		t.Errorf("TokenName = %q, want project name when empty", ctx.TokenName)
	}
	if ctx.TokenSymbol != "CN" || ctx.InitialSupply != "42" {
		t.Errorf("token = %s/%s", ctx.TokenSymbol, ctx.InitialSupply)
	}
	if ctx.Platform != "windows" || ctx.Version != "v1.2.3" || ctx.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("meta = %s/%s/%s", ctx.Platform, ctx.Version, ctx.CreatedAt)
	}
}

func TestWithAddressLengthIgnoresNonPositive(t *testing.T) {
	ctx := NewTemplateContext(WithAddressLength(0), WithAddressLength(-4))
	if ctx.AddressLength != models.DefaultAddressLength {
		t.Errorf("AddressLength = %d, want default", ctx.AddressLength)
	}
}
