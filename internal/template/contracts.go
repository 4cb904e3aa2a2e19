package template

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/epirus-io/epirus-cli/internal/defs"
)

// Contract is a Solidity source file placed under the project's solidity
// directory. Path is slash-separated and relative to that directory.
type Contract struct {
	Path    string
	Content []byte
}

// Name returns the contract file name without the .sol extension.
func (c Contract) Name() string {
	return strings.TrimSuffix(path.Base(c.Path), ".sol")
}

// Contract template locations inside ContractsFS.
const (
	helloWorldContract = "HelloWorld.sol"
	erc777TokenTmpl    = "Token.sol.tmpl"
	erc777LibDir       = "erc777"
)

// HelloWorldContract returns the default contract used when no artifacts
// are supplied.
func HelloWorldContract() (Contract, error) {
	data, err := fs.ReadFile(ContractsFS(), helloWorldContract)
	if err != nil {
		return Contract{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, helloWorldContract)
	}
	return Contract{Path: helloWorldContract, Content: data}, nil
}

// ERC777Contracts renders the token contract named after tmplCtx.TokenName
// and returns it first, followed by the ERC777 library contracts it imports.
func ERC777Contracts(tmplCtx *TemplateContext) ([]Contract, error) {
	fsys := ContractsFS()

	token, err := NewRenderer(fsys).Render(erc777TokenTmpl, tmplCtx)
	if err != nil {
		return nil, fmt.Errorf("render token contract: %w", err)
	}
	contracts := []Contract{{Path: tmplCtx.TokenName + ".sol", Content: token}}

	err = fs.WalkDir(fsys, erc777LibDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		contracts = append(contracts, Contract{Path: p, Content: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read erc777 library: %w", err)
	}
	return contracts, nil
}

// ReadContracts loads Solidity sources from disk. Each source keeps its
// path relative to base; a base of "" keeps only the file name.
func ReadContracts(base string, sources []string) ([]Contract, error) {
	contracts := make([]Contract, 0, len(sources))
	for _, src := range sources {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read contract source: %w", err)
		}
		rel := filepath.Base(src)
		if base != "" {
			if r, err := filepath.Rel(base, src); err == nil && !strings.HasPrefix(r, "..") {
				rel = r
			}
		}
		contracts = append(contracts, Contract{Path: filepath.ToSlash(rel), Content: data})
	}
	return contracts, nil
}

// WriteContracts writes contracts under dir and returns their absolute
// paths in order.
func WriteContracts(dir string, contracts []Contract) ([]string, error) {
	dir = filepath.Clean(dir)
	paths := make([]string, 0, len(contracts))
	for _, c := range contracts {
		if err := validateDeployPath(dir, c.Path); err != nil {
			return nil, err
		}
		dest := filepath.Join(dir, filepath.FromSlash(c.Path))
		if err := os.MkdirAll(filepath.Dir(dest), defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create contract dir: %w", err)
		}
		if err := os.WriteFile(dest, c.Content, defs.FilePerm); err != nil {
			return nil, fmt.Errorf("write contract %s: %w", c.Path, err)
		}
		abs, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("resolve contract path: %w", err)
		}
		paths = append(paths, abs)
	}
	return paths, nil
}
