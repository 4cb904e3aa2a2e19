package generator

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/epirus-io/epirus-cli/internal/artifact"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

func demoConfig(outputDir string) models.ProjectConfiguration {
	cfg := models.NewProjectConfiguration()
	cfg.ProjectName = "Demo"
	cfg.PackageName = "com.acme"
	cfg.OutputDir = outputDir
	return cfg
}

func TestBindOutputDirSuffixedOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		out  string
		want string
	}{
		{"/tmp/x", filepath.Join("/tmp/x", "Demo")},
		{"/tmp/x/", filepath.Join("/tmp/x", "Demo")},
		{"/tmp/x/Demo", filepath.Clean("/tmp/x/Demo")},
		{"/tmp/x/Demo/", filepath.Clean("/tmp/x/Demo")},
		{"/tmp/MyDemo", filepath.Join("/tmp/MyDemo", "Demo")},
		{"", "Demo"},
		{".", "Demo"},
	}
	for _, tt := range tests {
		got := Bind(demoConfig(tt.out), nil).OutputDir
		if got != tt.want {
			t.Errorf("Bind(OutputDir=%q).OutputDir = %q, want %q", tt.out, got, tt.want)
		}
	}
}

func TestBindContextPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "Demo"},
		{"/", "Demo"},
		{"api/", "api"},
		{`api\`, "api"},
		{"api//", "api"},
		{"v1/api", "v1/api"},
	}
	for _, tt := range tests {
		cfg := demoConfig("/tmp/x")
		cfg.ContextPath = tt.in
		if got := Bind(cfg, nil).ContextPath; got != tt.want {
			t.Errorf("Bind(ContextPath=%q).ContextPath = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBindCarriesFields(t *testing.T) {
	t.Parallel()

	cfg := demoConfig("/tmp/x")
	cfg.AddressLength = 32
	cfg.Generator = models.InterfaceOnlyOptions(true)
	set := artifact.NewSet(artifact.Artifact{Name: "Greeter", ABIPath: "Greeter.abi"})

	got := Bind(cfg, set)
	if got.ProjectName != "Demo" || got.PackageName != "com.acme" {
		t.Errorf("names = %q/%q", got.ProjectName, got.PackageName)
	}
	if got.AddressLength != 32 || got.AddressBits() != 256 {
		t.Errorf("AddressLength = %d, AddressBits = %d", got.AddressLength, got.AddressBits())
	}
	if got.Options != cfg.Generator {
		t.Errorf("Options = %+v, want %+v", got.Options, cfg.Generator)
	}
	if len(got.Contracts) != 1 || got.Contracts[0].Name != "Greeter" {
		t.Errorf("Contracts = %+v", got.Contracts)
	}
}

func TestBindIsPure(t *testing.T) {
	t.Parallel()

	cfg := demoConfig("/tmp/x")
	set := artifact.NewSet(
		artifact.Artifact{Name: "A", ABIPath: "A.abi", BINPath: "A.bin", CodeHash: "0x01"},
		artifact.Artifact{Name: "B", ABIPath: "B.abi"},
	)

	first := Bind(cfg, set)
	second := Bind(cfg, set)

	a, err := first.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	b, err := second.Encode()
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("Encode not byte-identical:\n%s\n---\n%s", a, b)
	}

	first.Contracts[0].Name = "mutated"
	if second.Contracts[0].Name != "A" || set.Names()[0] != "A" {
		t.Error("Bind results share contract slices")
	}
}

func TestBindDefaultSetHasNoContracts(t *testing.T) {
	t.Parallel()

	got := Bind(demoConfig("/tmp/x"), artifact.NewSet())
	if got.Contracts == nil || len(got.Contracts) != 0 {
		t.Errorf("Contracts = %#v, want empty non-nil slice", got.Contracts)
	}
}
