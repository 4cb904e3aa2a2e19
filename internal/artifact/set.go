package artifact

import "slices"

// Artifact is one compiled contract. BINPath and CodeHash are empty for
// interface-only contracts.
type Artifact struct {
	Name     string `yaml:"name"`
	ABIPath  string `yaml:"abi"`
	BINPath  string `yaml:"bin,omitempty"`
	CodeHash string `yaml:"code_hash,omitempty"`
}

// Set is the ordered collection of artifacts for one run plus the Solidity
// sources still waiting to be compiled. An empty set means the default
// template contract is used.
type Set struct {
	artifacts []Artifact
	sources   []string
}

// NewSet creates a set from artifacts in the given order.
func NewSet(artifacts ...Artifact) *Set {
	return &Set{artifacts: slices.Clone(artifacts)}
}

// Artifacts returns a copy of the artifacts in resolution order.
func (s *Set) Artifacts() []Artifact {
	return slices.Clone(s.artifacts)
}

// Sources returns a copy of the Solidity sources to compile.
func (s *Set) Sources() []string {
	return slices.Clone(s.sources)
}

// Len returns the number of resolved artifacts.
func (s *Set) Len() int {
	return len(s.artifacts)
}

// IsDefault reports whether neither artifacts nor sources were supplied.
func (s *Set) IsDefault() bool {
	return len(s.artifacts) == 0 && len(s.sources) == 0
}

// NeedsCompile reports whether the set has to go through the compiler
// before generation.
func (s *Set) NeedsCompile() bool {
	return len(s.artifacts) == 0
}

// Filter returns a set keeping only the named artifacts, in their original
// order. An empty name list keeps everything.
func (s *Set) Filter(names ...string) *Set {
	if len(names) == 0 {
		return &Set{artifacts: slices.Clone(s.artifacts), sources: slices.Clone(s.sources)}
	}
	out := &Set{sources: slices.Clone(s.sources)}
	for _, a := range s.artifacts {
		if slices.Contains(names, a.Name) {
			out.artifacts = append(out.artifacts, a)
		}
	}
	return out
}

// Names returns the artifact names in order.
func (s *Set) Names() []string {
	names := make([]string, len(s.artifacts))
	for i, a := range s.artifacts {
		names[i] = a.Name
	}
	return names
}
