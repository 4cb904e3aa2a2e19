package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

type fakeConfirmer struct {
	answer bool
	err    error
	calls  []string
}

func (f *fakeConfirmer) ConfirmOverwrite(path string) (bool, error) {
	f.calls = append(f.calls, path)
	return f.answer, f.err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPrepareCreatesDirectory(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "nested", "out")
	m := NewFolderManager(nil, nil, nil)

	dir, err := m.Prepare(out, "Demo", false)
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	want := filepath.Join(out, "Demo")
	if dir.Root() != want {
		t.Errorf("Root = %q, want %q", dir.Root(), want)
	}
	if info, err := os.Stat(want); err != nil || !info.IsDir() {
		t.Errorf("project directory not created: %v", err)
	}
}

func TestPrepareKeepsExistingProjectSegment(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "Demo")
	dir, err := NewFolderManager(nil, nil, nil).Prepare(out, "Demo", false)
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	if dir.Root() != out {
		t.Errorf("Root = %q, want %q", dir.Root(), out)
	}
}

func TestPrepareConflictWithoutOverwrite(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	marker := filepath.Join(out, "Demo", "keep.txt")
	writeFile(t, marker, "user data")

	confirmer := &fakeConfirmer{answer: false}
	_, err := NewFolderManager(confirmer, nil, nil).Prepare(out, "Demo", false)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Prepare error = %v, want ErrConflict", err)
	}
	if len(confirmer.calls) != 1 {
		t.Errorf("confirmer called %d times, want 1", len(confirmer.calls))
	}
	if data, err := os.ReadFile(marker); err != nil || string(data) != "user data" {
		t.Errorf("existing project modified: %q, %v", data, err)
	}
}

func TestPrepareConflictNilConfirmer(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFile(t, filepath.Join(out, "Demo", "a"), "x")

	_, err := NewFolderManager(nil, nil, nil).Prepare(out, "Demo", false)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Prepare error = %v, want ErrConflict", err)
	}
}

func TestPrepareConfirmerAccepts(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFile(t, filepath.Join(out, "Demo", "old.txt"), "old")

	dir, err := NewFolderManager(&fakeConfirmer{answer: true}, nil, nil).Prepare(out, "Demo", false)
	if err != nil {
		t.Fatalf("Prepare error: %v", err)
	}
	entries, err := os.ReadDir(dir.Root())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory not emptied: %d entries", len(entries))
	}
}

func TestPrepareConfirmerError(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFile(t, filepath.Join(out, "Demo", "a"), "x")
	errAbort := errors.New("aborted")

	_, err := NewFolderManager(&fakeConfirmer{err: errAbort}, nil, nil).Prepare(out, "Demo", false)
	if !errors.Is(err, errAbort) {
		t.Errorf("Prepare error = %v, want confirmer error", err)
	}
}

func TestPrepareOverwriteIdempotent(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	writeFile(t, filepath.Join(out, "Demo", "src", "A.sol"), "contract A {}")
	m := NewFolderManager(nil, nil, nil)

	for i := range 2 {
		dir, err := m.Prepare(out, "Demo", true)
		if err != nil {
			t.Fatalf("Prepare #%d error: %v", i+1, err)
		}
		entries, err := os.ReadDir(dir.Root())
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("Prepare #%d left %d entries", i+1, len(entries))
		}
		writeFile(t, filepath.Join(dir.Root(), "again.txt"), "x")
	}
}

func TestPrepareJarSiblingConflict(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	jar := filepath.Join(out, "Demo"+defs.ServerJarSuffix)
	writeFile(t, jar, "jar")

	_, err := NewFolderManager(nil, nil, nil).Prepare(out, "Demo", false)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Prepare error = %v, want ErrConflict", err)
	}
	if _, err := os.Stat(filepath.Join(out, "Demo")); !os.IsNotExist(err) {
		t.Error("project directory created despite conflict")
	}

	if _, err := NewFolderManager(nil, nil, nil).Prepare(out, "Demo", true); err != nil {
		t.Fatalf("Prepare overwrite error: %v", err)
	}
	if _, err := os.Stat(jar); !os.IsNotExist(err) {
		t.Error("stale jar not removed on overwrite")
	}
}

func TestDirectoryScaffoldAndStructure(t *testing.T) {
	t.Parallel()

	dir, err := NewFolderManager(nil, nil, nil).Prepare(t.TempDir(), "Demo", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := dir.Scaffold(); err != nil {
		t.Fatalf("Scaffold error: %v", err)
	}

	st := dir.Structure()
	for _, p := range []string{st.SolidityPath(), st.WrapperPath(), st.MetaPath()} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", p, err)
		}
	}
	if _, err := os.Stat(st.BuildPath()); !os.IsNotExist(err) {
		t.Error("build path should only be created by the compiler")
	}
}

func TestDirectoryFailRegistersCleanup(t *testing.T) {
	t.Parallel()

	cleanup := NewCleanup(nil, nil)
	dir, err := NewFolderManager(nil, cleanup, nil).Prepare(t.TempDir(), "Demo", false)
	if err != nil {
		t.Fatal(err)
	}

	if !dir.Fail() {
		t.Fatal("Fail did not register")
	}
	if _, err := os.Stat(dir.Root()); err != nil {
		t.Error("Fail must not remove the directory immediately")
	}
	if err := cleanup.Run(); err != nil {
		t.Fatalf("cleanup.Run error: %v", err)
	}
	if _, err := os.Stat(dir.Root()); !os.IsNotExist(err) {
		t.Error("directory not removed by cleanup")
	}
}
