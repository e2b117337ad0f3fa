// Package registry holds the terminal registry: the closed, ordered
// enumeration of terminal symbol kinds that the host application defines
// before a grammar is ever loaded. Index 0 is always the end-of-input
// sentinel END; every other terminal is assigned the next free index in
// registration order.
package registry

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/ccrownhill/parsing-from-scratch/internal/perrors"
)

// End is the distinguished end-of-input terminal name and its fixed index.
const (
	End      = "END"
	EndIndex = 0
)

// Registry is a closed, ordered, duplicate-free list of terminal names.
// It is built once and is safe for concurrent read-only use thereafter.
type Registry struct {
	names   []string       // index -> name, names[0] == End
	indexOf map[string]int // name -> index
}

// New builds a Registry from an in-memory list of terminal names, in the
// order given. END must not be included; it is implicit at index 0. This is
// the spec's "compile-time array" case.
func New(names ...string) (*Registry, error) {
	r := &Registry{
		names:   []string{End},
		indexOf: map[string]int{End: EndIndex},
	}
	for _, n := range names {
		if err := r.add(n); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) add(name string) error {
	if name == "" {
		return &perrors.LoadError{Reason: "terminal name cannot be empty"}
	}
	if name == End {
		return &perrors.LoadError{Reason: fmt.Sprintf("%q is reserved for the end-of-input sentinel and must not be declared", End)}
	}
	if _, ok := r.indexOf[name]; ok {
		return &perrors.LoadError{Reason: fmt.Sprintf("duplicate terminal name %q", name)}
	}
	r.indexOf[name] = len(r.names)
	r.names = append(r.names, name)
	return nil
}

// fileFormat mirrors the shape of a TOML terminal-registry document:
//
//	[[terminal]]
//	name = "PLUS"
type fileFormat struct {
	Terminal []struct {
		Name string `toml:"name"`
	} `toml:"terminal"`
}

// Load builds a Registry from a TOML document read from r. This lets a host
// application configure its terminal set without recompiling, while keeping
// the registry's shape (closed, ordered, END-first) identical to New.
func Load(r io.Reader) (*Registry, error) {
	var doc fileFormat
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &perrors.LoadError{Reason: "parse terminal file", Cause: err}
	}

	names := make([]string, 0, len(doc.Terminal))
	for _, t := range doc.Terminal {
		names = append(names, t.Name)
	}
	return New(names...)
}

// Len returns N_T, the total count of terminals including END.
func (r *Registry) Len() int {
	return len(r.names)
}

// Index returns the enumeration value for name, and whether it is known.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.indexOf[name]
	return i, ok
}

// Name returns the terminal name at index, and whether the index is valid.
func (r *Registry) Name(index int) (string, bool) {
	if index < 0 || index >= len(r.names) {
		return "", false
	}
	return r.names[index], true
}

// Has returns whether name is a known terminal (END included).
func (r *Registry) Has(name string) bool {
	_, ok := r.indexOf[name]
	return ok
}

// Terminals returns the registered terminal names in registration order,
// excluding END.
func (r *Registry) Terminals() []string {
	return append([]string(nil), r.names[1:]...)
}
