package parse

import (
	"fmt"

	"github.com/ccrownhill/parsing-from-scratch/internal/automaton"
	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/perrors"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

type actionKey struct {
	state    int
	terminal string
}

type gotoKey struct {
	state       int
	nonTerminal string
}

// Table is the ACTION/GOTO pair produced from a canonical collection, per
// spec §4.5. Both are flat maps rather than per-state arrays, since a
// grammar's terminal and non-terminal alphabets are typically far smaller
// than any dense 2D table would assume.
type Table struct {
	Start   int
	action  map[actionKey]Action
	gotoTbl map[gotoKey]int
}

// Action returns the ACTION table entry for (state, terminal), and whether
// one exists.
func (t *Table) Action(state int, terminal string) (Action, bool) {
	a, ok := t.action[actionKey{state, terminal}]
	return a, ok
}

// Goto returns the GOTO table entry for (state, nonTerminal), and whether
// one exists.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	s, ok := t.gotoTbl[gotoKey{state, nonTerminal}]
	return s, ok
}

// Build constructs the ACTION and GOTO tables from the canonical collection
// coll of g, per spec §4.5. Unlike the source this engine is modeled on,
// which resolves a colliding write with "last write wins", a second write
// to an already-occupied ACTION cell with a different action fails
// construction with a ConflictError: per spec §9 this is the recommended
// behavior change, since silently picking a winner hides a grammar that is
// not actually LR(1).
//
// Build is also the table-construction boundary spec §7 names for
// unknown-symbol detection: before touching the collection, it checks g
// against reg via Grammar.UnknownSymbol and fails with a BuildError if any
// production body names a symbol that is neither a non-terminal nor a
// registered terminal.
func Build(coll *automaton.Collection, g *grammar.Grammar, reg *registry.Registry) (*Table, error) {
	if sym, prod, found := g.UnknownSymbol(reg); found {
		return nil, &perrors.BuildError{Reason: fmt.Sprintf("%q (in production %s) is neither a known non-terminal nor a registered terminal", sym, prod.String())}
	}

	t := &Table{
		Start:   0,
		action:  map[actionKey]Action{},
		gotoTbl: map[gotoKey]int{},
	}

	setAction := func(state int, terminal string, act Action) error {
		key := actionKey{state, terminal}
		if existing, ok := t.action[key]; ok {
			if existing.Equal(act) {
				return nil
			}
			return &perrors.ConflictError{
				State:    state,
				Terminal: terminal,
				First:    existing.String(),
				Second:   act.String(),
			}
		}
		t.action[key] = act
		return nil
	}

	for _, C := range coll.States {
		for _, item := range C.Items {
			switch {
			case item.NonTerminal == g.Start() && item.AtEnd() && item.Lookahead == registry.End:
				if err := setAction(C.Num, registry.End, Action{Kind: Accept}); err != nil {
					return nil, err
				}

			case item.AtEnd():
				prod := grammar.Production{Head: item.NonTerminal, Body: append([]string(nil), item.Left...)}
				if err := setAction(C.Num, item.Lookahead, Action{Kind: Reduce, Produce: prod}); err != nil {
					return nil, err
				}

			default:
				sym := item.Right[0]
				if g.IsNonTerminal(sym) {
					continue
				}
				target, ok := C.GotoEdges[sym]
				if !ok {
					continue
				}
				if err := setAction(C.Num, sym, Action{Kind: Shift, Target: target}); err != nil {
					return nil, err
				}
			}
		}

		for sym, target := range C.GotoEdges {
			if g.IsNonTerminal(sym) {
				t.gotoTbl[gotoKey{C.Num, sym}] = target
			}
		}
	}

	return t, nil
}
