package toolchain

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeScript writes an executable POSIX shell script into dir.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}
