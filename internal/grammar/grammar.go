// Package grammar is the grammar store: it ingests a grammar as an abstract
// token stream and holds the resulting productions and start symbol for the
// lifetime of the process. It knows nothing about LR(1) items or tables;
// those live in the automaton and parse packages, which consult the store
// through Productions and IsNonTerminal.
package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ccrownhill/parsing-from-scratch/internal/perrors"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

// MaxBody is the largest number of symbols a production body may hold.
// Chosen to satisfy the spec's MAX_BODY >= 10 floor with headroom for the
// grammars this engine is meant to recognize by hand.
const MaxBody = 16

// StartMarker is the fixed token that begins the start-symbol directive, the
// first two tokens of any grammar file: "%start NAME".
const StartMarker = "%start"

// Production is a single rewrite rule Head -> Body. Two productions are
// equal iff their heads and bodies match exactly, symbol for symbol.
type Production struct {
	Head string
	Body []string
}

// Equal reports structural equality of head and body.
func (p Production) Equal(o Production) bool {
	if p.Head != o.Head || len(p.Body) != len(o.Body) {
		return false
	}
	for i := range p.Body {
		if p.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	if len(p.Body) == 0 {
		return p.Head + " ->"
	}
	return fmt.Sprintf("%s -> %s", p.Head, strings.Join(p.Body, " "))
}

// Grammar is the mapping from non-terminal name to its ordered list of
// production alternatives, plus the start symbol. It is built once by Load
// and is read-only thereafter.
type Grammar struct {
	start string
	order []string                // non-terminal names, in first-seen order
	rules map[string][]Production // non-terminal name -> productions, insertion order preserved
}

// Start returns the grammar's start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// NonTerminals returns the grammar's non-terminal names in first-declared
// order. This order is observable: the table dump's GOTO columns and the
// naive recognizer's handle scan both follow it.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.order...)
}

// IsNonTerminal reports whether name is a key of the store.
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Productions returns the ordered sequence of productions for name, or nil
// if name is not a non-terminal in this store.
func (g *Grammar) Productions(name string) []Production {
	return g.rules[name]
}

// AllProductions returns every production in the grammar, non-terminals
// walked in declaration order and each non-terminal's alternatives in
// insertion order, giving a deterministic full traversal.
func (g *Grammar) AllProductions() []Production {
	var all []Production
	for _, nt := range g.order {
		all = append(all, g.rules[nt]...)
	}
	return all
}

func (g *Grammar) addProduction(head string, body []string) {
	if _, ok := g.rules[head]; !ok {
		g.order = append(g.order, head)
		g.rules[head] = nil
	}
	g.rules[head] = append(g.rules[head], Production{Head: head, Body: body})
}

// Load consumes a grammar file in the syntax described in spec §6: the first
// two whitespace-separated tokens are the start-symbol directive
// (StartMarker then the start non-terminal's name); thereafter, any token
// ending in ':' opens a non-terminal header (its name is the token minus the
// trailing ':'), and the tokens up to the next header or end of input form
// its bodies, with '|' separating alternatives.
//
// Load does not consult reg: a name is a terminal if it is not itself a
// non-terminal header in this file, and Load does not itself reject a body
// that names a terminal missing from reg — see UnknownSymbol.
func Load(r io.Reader, reg *registry.Registry) (*Grammar, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var toks []string
	for sc.Scan() {
		toks = append(toks, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &perrors.LoadError{Reason: "read input", Cause: err}
	}

	if len(toks) < 2 {
		return nil, &perrors.LoadError{Reason: "unexpected end of file while reading start directive"}
	}
	if toks[0] != StartMarker {
		return nil, &perrors.LoadError{Reason: fmt.Sprintf("expected %q directive as first token, found %q", StartMarker, toks[0])}
	}
	start := toks[1]

	g := &Grammar{
		start: start,
		rules: map[string][]Production{},
	}

	i := 2
	for i < len(toks) {
		header := toks[i]
		if !strings.HasSuffix(header, ":") {
			return nil, &perrors.LoadError{Reason: fmt.Sprintf("expected non-terminal header ending in ':', found %q", header)}
		}
		name := strings.TrimSuffix(header, ":")
		if name == "" {
			return nil, &perrors.LoadError{Reason: fmt.Sprintf("empty non-terminal name in header %q", header)}
		}
		i++

		var body []string
		flush := func() error {
			if len(body) == 0 {
				return &perrors.LoadError{Reason: fmt.Sprintf("empty production body for %q is not allowed (epsilon productions are unsupported)", name)}
			}
			if len(body) > MaxBody {
				return &perrors.LoadError{Reason: fmt.Sprintf("production body for %q exceeds MAX_BODY=%d symbols", name, MaxBody)}
			}
			g.addProduction(name, body)
			body = nil
			return nil
		}

		for i < len(toks) && !strings.HasSuffix(toks[i], ":") {
			if toks[i] == "|" {
				if err := flush(); err != nil {
					return nil, err
				}
				i++
				continue
			}
			body = append(body, toks[i])
			i++
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}

	if !g.IsNonTerminal(start) {
		return nil, &perrors.LoadError{Reason: fmt.Sprintf("start symbol %q has no productions", start)}
	}

	return g, nil
}

// UnknownSymbol scans every production body for a symbol that is neither a
// non-terminal header in this grammar nor a registered terminal in reg, per
// spec §3/§7. Detection is deliberately not done here in Load: spec §7
// places it at table-construction time, so callers run this check at the
// automaton/table-build boundary (see parse.Build) and report it as a
// BuildError, not a LoadError.
func (g *Grammar) UnknownSymbol(reg *registry.Registry) (sym string, prod Production, found bool) {
	for _, nt := range g.order {
		for _, p := range g.rules[nt] {
			for _, s := range p.Body {
				if g.IsNonTerminal(s) {
					continue
				}
				if reg != nil && !reg.Has(s) {
					return s, p, true
				}
			}
		}
	}
	return "", Production{}, false
}
