package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File extensions recognised by the resolver.
const (
	ExtABI      = ".abi"
	ExtBIN      = ".bin"
	ExtSolidity = ".sol"
)

// Resolver turns user-supplied ABI, BIN and Solidity paths into a Set.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver. A nil logger discards log output.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{logger: logger}
}

// Resolve expands abiPaths and binPaths (files or directories) and pairs
// every ABI with the BIN of the same file stem. A BIN-less ABI is kept as
// an interface-only artifact; a BIN without ABI is ignored. No paths at all
// yields the default set. Any missing path or malformed ABI returns an
// *ArtifactError.
func (r *Resolver) Resolve(abiPaths, binPaths []string) (*Set, error) {
	abis, err := expand(abiPaths, ExtABI)
	if err != nil {
		return nil, err
	}
	bins, err := expand(binPaths, ExtBIN)
	if err != nil {
		return nil, err
	}

	binByStem := make(map[string]string, len(bins))
	for _, b := range bins {
		stem := fileStem(b)
		if _, dup := binByStem[stem]; dup {
			r.logger.Debug("duplicate bin stem, keeping first", "stem", stem, "path", b)
			continue
		}
		binByStem[stem] = b
	}

	set := &Set{}
	seen := make(map[string]bool, len(abis))
	for _, abiPath := range abis {
		if err := checkABI(abiPath); err != nil {
			return nil, err
		}

		stem := fileStem(abiPath)
		if seen[stem] {
			r.logger.Debug("duplicate abi stem, keeping first", "stem", stem, "path", abiPath)
			continue
		}
		seen[stem] = true

		a := Artifact{Name: stem, ABIPath: abiPath}
		if binPath, ok := binByStem[stem]; ok {
			code, err := os.ReadFile(binPath)
			if err != nil {
				return nil, &ArtifactError{Path: binPath, Err: err}
			}
			if hash := CodeHash(code); hash != "" {
				a.BINPath = binPath
				a.CodeHash = hash
			}
		}
		set.artifacts = append(set.artifacts, a)
	}

	for stem, binPath := range binByStem {
		if !seen[stem] {
			r.logger.Debug("ignoring bin without abi", "path", binPath)
		}
	}

	r.logger.Debug("artifacts resolved", "count", len(set.artifacts), "default", set.IsDefault())
	return set, nil
}

// ResolveSources expands a .sol file or a directory of .sol files into a
// set whose sources are compiled before generation. Finding no source is
// an error.
func (r *Resolver) ResolveSources(path string) (*Set, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &ArtifactError{Path: path, Err: errors.New("no solidity path given")}
	}
	sources, err := expand([]string{path}, ExtSolidity)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, &ArtifactError{Path: path, Err: errors.New("no solidity sources found")}
	}
	r.logger.Debug("solidity sources resolved", "count", len(sources), "path", path)
	return &Set{sources: sources}, nil
}

// expand turns files and directories into the ordered list of files with
// the given extension. Directories are walked recursively in lexical
// order. A named file is accepted regardless of extension. Returned paths
// are absolute.
func expand(paths []string, ext string) ([]string, error) {
	var out []string
	for _, p := range paths {
		p, err := filepath.Abs(p)
		if err != nil {
			return nil, &ArtifactError{Path: p, Err: err}
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, &ArtifactError{Path: p, Err: err}
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		var found []string
		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
				found = append(found, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, &ArtifactError{Path: p, Err: walkErr}
		}
		slices.Sort(found)
		out = append(out, found...)
	}
	return out, nil
}

// checkABI verifies that path holds a JSON array.
func checkABI(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactError{Path: path, Err: err}
	}
	if !json.Valid(data) {
		return &ArtifactError{Path: path, Err: errors.New("abi is not valid JSON")}
	}
	tok, err := json.NewDecoder(bytes.NewReader(data)).Token()
	if err != nil {
		return &ArtifactError{Path: path, Err: fmt.Errorf("read abi: %w", err)}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return &ArtifactError{Path: path, Err: errors.New("abi must be a JSON array")}
	}
	return nil
}

// fileStem returns the base name without extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
