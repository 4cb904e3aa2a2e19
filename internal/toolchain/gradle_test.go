package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGradleUsesWrapper(t *testing.T) {
	dir := t.TempDir()
	wrapper := filepath.Join(dir, "gradlew")
	if err := os.WriteFile(wrapper, []byte("#!/bin/sh\necho \"$1\" >> tasks.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS == "windows" {
		t.Skip("gradlew is a POSIX shell script")
	}

	g := NewGradle("gradle-not-used", NewRunner(nil, nil), nil)
	for _, task := range []string{"clean", "generateWeb3jSwaggerUI"} {
		if _, err := g.Run(context.Background(), task, dir); err != nil {
			t.Fatalf("Run(%s) error: %v", task, err)
		}
	}

	info, err := os.Stat(wrapper)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("gradlew mode = %v, want executable", info.Mode().Perm())
	}
	tasks, err := os.ReadFile(filepath.Join(dir, "tasks.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Fields(string(tasks)); len(got) != 2 || got[0] != "clean" || got[1] != "generateWeb3jSwaggerUI" {
		t.Errorf("tasks = %v", got)
	}
}

func TestGradleFallsBackWithoutWrapper(t *testing.T) {
	bin := t.TempDir()
	fallback := writeScript(t, bin, "gradle", "echo \"$1\" > ran.txt\n")
	project := t.TempDir()

	if _, err := NewGradle(fallback, NewRunner(nil, nil), nil).Run(context.Background(), "shadowJar", project); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(project, "ran.txt"))
	if err != nil {
		t.Fatalf("fallback did not run in project dir: %v", err)
	}
	if strings.TrimSpace(string(data)) != "shadowJar" {
		t.Errorf("task = %q, want shadowJar", data)
	}
}

func TestGradleTaskFailure(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "gradlew", "echo 'BUILD FAILED'\nexit 1\n")

	_, err := NewGradle("gradle", NewRunner(nil, nil), nil).Run(context.Background(), "build", dir)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run error = %v, want *ExitError", err)
	}
	if !strings.Contains(err.Error(), "gradle build") {
		t.Errorf("error = %q, want task name", err)
	}
}

func TestGradleWindowsCommand(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gradlew.bat"), []byte("@echo off"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := &Gradle{fallback: "gradle", goos: "windows"}

	cmd, err := g.command("build", dir)
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	if cmd.Name != "cmd" || strings.Join(cmd.Args, " ") != `/c .\gradlew.bat build` || cmd.Dir != dir {
		t.Errorf("command = %+v", cmd)
	}

	cmd, err = g.command("build", t.TempDir())
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	if cmd.Name != "gradle" {
		t.Errorf("command without wrapper = %+v, want fallback", cmd)
	}
}
