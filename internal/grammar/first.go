package grammar

import (
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
	"github.com/ccrownhill/parsing-from-scratch/internal/util"
)

// FirstSet is an ordered, duplicate-free sequence of terminal names, built by
// inserting terminals in ascending registry-index order.
type FirstSet []string

func (fs FirstSet) has(t string) bool {
	for _, x := range fs {
		if x == t {
			return true
		}
	}
	return false
}

// FirstMap associates every symbol name (terminal or non-terminal) reachable
// from the grammar's start symbol with its FIRST set.
type FirstMap map[string]FirstSet

// firstBuilder computes FIRST sets via depth-first traversal with
// memoization, per spec §4.2. It does not implement epsilon productions: a
// non-terminal's FIRST is the union of FIRST of the leading symbol of each
// of its alternatives. A production whose leading symbol equals the head
// being computed is skipped (self-recursion guard); the guard is extended to
// the whole in-progress call chain so that mutual left recursion
// (A -> B ...; B -> A ...) cannot recurse forever and crash the builder —
// per SPEC_FULL §9 this does not make mutual-left-recursive grammars compute
// a *correct* FIRST set, it only keeps the builder from looping or
// overflowing the stack on one.
type firstBuilder struct {
	g       *Grammar
	reg     *registry.Registry
	result  FirstMap
	inStack util.StringSet
}

// Build computes FIRST(X) for every terminal in reg and for every
// non-terminal reachable from start.
func Build(g *Grammar, reg *registry.Registry) FirstMap {
	b := &firstBuilder{
		g:       g,
		reg:     reg,
		result:  FirstMap{},
		inStack: util.NewStringSet(),
	}

	for _, t := range reg.Terminals() {
		b.result[t] = FirstSet{t}
	}
	b.result[registry.End] = FirstSet{registry.End}

	b.build(g.Start())
	return b.result
}

// insert appends t to the FIRST set of sym in ascending registry-index
// order, suppressing duplicates, per spec §4.2.
func (b *firstBuilder) insert(sym, t string) {
	fs := b.result[sym]
	if fs.has(t) {
		return
	}
	idx, _ := b.reg.Index(t)
	pos := len(fs)
	for i, existing := range fs {
		existingIdx, _ := b.reg.Index(existing)
		if idx < existingIdx {
			pos = i
			break
		}
	}
	fs = append(fs, "")
	copy(fs[pos+1:], fs[pos:])
	fs[pos] = t
	b.result[sym] = fs
}

// build populates FIRST(name) if it has not already been computed.
func (b *firstBuilder) build(name string) {
	if !b.g.IsNonTerminal(name) {
		// terminal: already seeded, or unknown (caller's problem, table
		// construction will surface it as an unknown-symbol error).
		return
	}
	if _, done := b.result[name]; done {
		return
	}
	if b.inStack.Has(name) {
		// mid-computation higher up the call chain; contribute nothing from
		// this branch rather than recursing forever.
		return
	}
	b.inStack.Add(name)
	defer b.inStack.Remove(name)

	b.result[name] = FirstSet{}

	for _, p := range b.g.Productions(name) {
		if len(p.Body) == 0 {
			continue
		}
		lead := p.Body[0]
		if lead == name {
			// self-recursion guard: skip this alternative entirely.
			continue
		}
		b.build(lead)
		for _, t := range b.result[lead] {
			b.insert(name, t)
		}
	}
}
