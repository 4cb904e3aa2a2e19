package template

import (
	"embed"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// Template roots inside the embedded filesystem.
const (
	projectRoot   = "templates/project"
	contractsRoot = "templates/contracts"
)

// ProjectFS returns the project scaffold templates (build files, Dockerfile,
// README), rooted at the project directory.
func ProjectFS() fs.FS {
	return mustSub(projectRoot)
}

// ContractsFS returns the bundled Solidity contracts and contract templates.
func ContractsFS() fs.FS {
	return mustSub(contractsRoot)
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(embedded, dir)
	if err != nil {
		panic("template: embedded directory missing: " + dir)
	}
	return sub
}
