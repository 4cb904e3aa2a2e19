package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const helloABI = `[{"inputs":[],"name":"greet","outputs":[{"type":"string"}],"type":"function"}]`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestResolveEmptyIsDefault(t *testing.T) {
	t.Parallel()

	set, err := NewResolver(nil).Resolve(nil, nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !set.IsDefault() {
		t.Error("IsDefault() = false, want true for empty input")
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestResolveRelativePathsBecomeAbsolute(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	writeFile(t, filepath.Join("abis", "Foo.abi"), "[]")
	writeFile(t, filepath.Join("abis", "Foo.bin"), "6080")
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	set, err := NewResolver(nil).Resolve([]string{"abis"}, []string{"abis"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	got := set.Artifacts()
	if len(got) != 1 {
		t.Fatalf("Artifacts() = %+v", got)
	}
	if want := filepath.Join(cwd, "abis", "Foo.abi"); got[0].ABIPath != want {
		t.Errorf("ABIPath = %q, want %q", got[0].ABIPath, want)
	}
	if want := filepath.Join(cwd, "abis", "Foo.bin"); got[0].BINPath != want {
		t.Errorf("BINPath = %q, want %q", got[0].BINPath, want)
	}
}

func TestResolvePairsByStem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abi := writeFile(t, filepath.Join(dir, "HelloWorld.abi"), helloABI)
	bin := writeFile(t, filepath.Join(dir, "HelloWorld.bin"), "6080604052\n")
	ifaceABI := writeFile(t, filepath.Join(dir, "IGreeter.abi"), "[]")
	writeFile(t, filepath.Join(dir, "Orphan.bin"), "00")

	set, err := NewResolver(nil).Resolve(
		[]string{abi, ifaceABI},
		[]string{bin, filepath.Join(dir, "Orphan.bin")},
	)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if set.IsDefault() {
		t.Fatal("IsDefault() = true for explicit artifacts")
	}

	got := set.Artifacts()
	if len(got) != 2 {
		t.Fatalf("Artifacts() len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Name != "HelloWorld" || got[0].BINPath != bin || got[0].CodeHash == "" {
		t.Errorf("HelloWorld artifact = %+v", got[0])
	}
	if got[1].Name != "IGreeter" || got[1].BINPath != "" {
		t.Errorf("IGreeter artifact = %+v, want interface-only", got[1])
	}
}

func TestResolveDirectoryIsRecursiveAndSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b", "Zeta.abi"), "[]")
	writeFile(t, filepath.Join(dir, "Alpha.abi"), "[]")
	writeFile(t, filepath.Join(dir, "a", "Beta.abi"), "[]")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	set, err := NewResolver(nil).Resolve([]string{dir}, []string{dir})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := []string{"Alpha", "Beta", "Zeta"}
	if got := set.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	notArray := writeFile(t, filepath.Join(dir, "Object.abi"), `{"abi":[]}`)
	garbage := writeFile(t, filepath.Join(dir, "Broken.abi"), `[{"name":`)

	tests := []struct {
		name string
		abis []string
		bins []string
		path string
	}{
		{"missing abi", []string{filepath.Join(dir, "missing.abi")}, nil, filepath.Join(dir, "missing.abi")},
		{"missing bin", nil, []string{filepath.Join(dir, "missing.bin")}, filepath.Join(dir, "missing.bin")},
		{"abi not an array", []string{notArray}, nil, notArray},
		{"abi not json", []string{garbage}, nil, garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewResolver(nil).Resolve(tt.abis, tt.bins)
			if !errors.Is(err, ErrArtifact) {
				t.Fatalf("Resolve error = %v, want ErrArtifact", err)
			}
			var aerr *ArtifactError
			if !errors.As(err, &aerr) {
				t.Fatalf("error type = %T, want *ArtifactError", err)
			}
			if aerr.Path != tt.path {
				t.Errorf("ArtifactError.Path = %q, want %q", aerr.Path, tt.path)
			}
		})
	}
}

func TestResolveSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	token := writeFile(t, filepath.Join(dir, "Token.sol"), "pragma solidity ^0.8.0;")
	lib := writeFile(t, filepath.Join(dir, "lib", "Math.sol"), "pragma solidity ^0.8.0;")
	writeFile(t, filepath.Join(dir, "README.md"), "docs")

	r := NewResolver(nil)

	set, err := r.ResolveSources(dir)
	if err != nil {
		t.Fatalf("ResolveSources(dir) error: %v", err)
	}
	if want := []string{token, lib}; !reflect.DeepEqual(set.Sources(), want) {
		t.Errorf("Sources() = %v, want %v", set.Sources(), want)
	}
	if set.IsDefault() || !set.NeedsCompile() {
		t.Errorf("source set IsDefault=%v NeedsCompile=%v", set.IsDefault(), set.NeedsCompile())
	}

	single, err := r.ResolveSources(token)
	if err != nil {
		t.Fatalf("ResolveSources(file) error: %v", err)
	}
	if got := single.Sources(); len(got) != 1 || got[0] != token {
		t.Errorf("Sources() = %v, want [%s]", got, token)
	}

	empty := t.TempDir()
	if _, err := r.ResolveSources(empty); !errors.Is(err, ErrArtifact) {
		t.Errorf("ResolveSources(empty dir) error = %v, want ErrArtifact", err)
	}
	if _, err := r.ResolveSources(""); !errors.Is(err, ErrArtifact) {
		t.Errorf("ResolveSources(\"\") error = %v, want ErrArtifact", err)
	}
	if _, err := r.ResolveSources(filepath.Join(dir, "nope.sol")); !errors.Is(err, ErrArtifact) {
		t.Errorf("ResolveSources(missing) error = %v, want ErrArtifact", err)
	}
}
