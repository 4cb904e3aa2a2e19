package project

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/epirus-io/epirus-cli/internal/template"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

func TestScaffolderScaffold(t *testing.T) {
	t.Parallel()

	dir, err := NewFolderManager(nil, nil, nil).Prepare(t.TempDir(), "Demo", false)
	if err != nil {
		t.Fatal(err)
	}
	fsys := fstest.MapFS{
		"settings.gradle.tmpl": &fstest.MapFile{Data: []byte("rootProject.name = '{{.ProjectName}}'\n")},
	}
	s := NewScaffolder(template.NewDeployer(fsys), nil)
	tmplCtx := template.NewTemplateContext(template.WithProject("Demo", "io.demo"))
	contracts := []template.Contract{{Path: "Demo.sol", Content: []byte("contract Demo {}")}}

	res, err := s.Scaffold(context.Background(), dir, tmplCtx, contracts)
	if err != nil {
		t.Fatalf("Scaffold error: %v", err)
	}

	if !slices.Contains(res.CreatedFiles, "settings.gradle") {
		t.Errorf("CreatedFiles = %v, missing settings.gradle", res.CreatedFiles)
	}
	if !slices.Contains(res.CreatedFiles, "src/main/solidity/Demo.sol") {
		t.Errorf("CreatedFiles = %v, missing contract", res.CreatedFiles)
	}
	if !slices.Equal(res.CreatedDirs, []string{"src/main/solidity", "gradle/wrapper", ".epirus"}) {
		t.Errorf("CreatedDirs = %v", res.CreatedDirs)
	}
	want := filepath.Join(dir.Structure().SolidityPath(), "Demo.sol")
	if len(res.Sources) != 1 || res.Sources[0] != want {
		t.Errorf("Sources = %v, want [%s]", res.Sources, want)
	}
}

func TestScaffolderCancelled(t *testing.T) {
	t.Parallel()

	dir, err := NewFolderManager(nil, nil, nil).Prepare(t.TempDir(), "Demo", false)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewScaffolder(nil, nil).Scaffold(ctx, dir, template.NewTemplateContext(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Scaffold error = %v, want context.Canceled", err)
	}
}

func TestTemplateContracts(t *testing.T) {
	t.Parallel()

	tmplCtx := template.NewTemplateContext(template.WithProject("Coin", "io.coin"))

	hello, keep, err := TemplateContracts(models.TemplateHelloWorld, tmplCtx)
	if err != nil || len(hello) != 1 || !slices.Equal(keep, []string{"HelloWorld"}) {
		t.Errorf("HelloWorld = %d contracts, keep %v, err %v", len(hello), keep, err)
	}

	token, keep, err := TemplateContracts(models.TemplateERC777, tmplCtx)
	if err != nil || len(token) < 2 || !slices.Equal(keep, []string{"Coin"}) {
		t.Errorf("ERC777 = %d contracts, keep %v, err %v", len(token), keep, err)
	}

	if _, _, err := TemplateContracts("Other", tmplCtx); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown template error = %v, want ErrValidation", err)
	}
}

func TestTemplateTasks(t *testing.T) {
	t.Parallel()

	if got := TemplateTasks(models.TemplateHelloWorld); !slices.Equal(got, []string{TaskSwaggerUI}) {
		t.Errorf("HelloWorld tasks = %v", got)
	}
	if got := TemplateTasks(models.TemplateERC777); !slices.Equal(got, []string{TaskCompleteSwaggerUI}) {
		t.Errorf("ERC777 tasks = %v", got)
	}
	if got := ImportTasks(); !slices.Equal(got, []string{TaskSwaggerUI, TaskClean, TaskSwaggerUI}) {
		t.Errorf("import tasks = %v", got)
	}
}

func TestImportContracts(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	a := filepath.Join(src, "A.sol")
	b := filepath.Join(src, "lib", "B.sol")
	writeFile(t, a, "contract A {}")
	writeFile(t, b, "contract B {}")

	contracts, err := ImportContracts(src, []string{a, b})
	if err != nil {
		t.Fatalf("ImportContracts error: %v", err)
	}
	if contracts[1].Path != "lib/B.sol" {
		t.Errorf("Path = %q, want lib/B.sol", contracts[1].Path)
	}

	single, err := ImportContracts(b, []string{b})
	if err != nil || single[0].Path != "B.sol" {
		t.Errorf("single file = %+v, %v", single, err)
	}

	if _, err := ImportContracts(src, []string{filepath.Join(src, "missing.sol")}); !errors.Is(err, ErrArtifact) {
		t.Errorf("missing source error = %v, want ErrArtifact", err)
	}
}
