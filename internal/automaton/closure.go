// Package automaton builds the LR(1) canonical collection: CLOSURE and GOTO
// over sets of LR(1) items, and the worklist-driven construction of the
// numbered states reachable from the start symbol's own productions (the
// grammar is not augmented with a synthetic start symbol).
package automaton

import (
	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/util"
)

// Closure expands seed with every item reachable by repeatedly expanding a
// non-terminal sitting just after a dot, per spec §4.3. Items are appended
// to the tail of the working slice and the traversal index keeps walking
// past previously-existing items into newly appended ones, so the fixed
// point is reached in a single pass; duplicate suppression is by item
// equality (here, by the item's canonical string form).
func Closure(seed []grammar.LR1Item, g *grammar.Grammar, first grammar.FirstMap) []grammar.LR1Item {
	items := append([]grammar.LR1Item(nil), seed...)
	seen := util.NewSVSet[grammar.LR1Item]()
	for _, it := range items {
		seen.Set(it.String(), it)
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		if it.AtEnd() {
			continue
		}

		B := it.Right[0]
		if !g.IsNonTerminal(B) {
			continue
		}

		// lookaheads: FIRST of the symbol immediately following B in this
		// item (the leading symbol of beta), or this item's own lookahead
		// if B is the last symbol in the body.
		var lookaheads grammar.FirstSet
		if len(it.Right) > 1 {
			lookaheads = first[it.Right[1]]
		} else {
			lookaheads = grammar.FirstSet{it.Lookahead}
		}

		for _, p := range g.Productions(B) {
			for _, b := range lookaheads {
				newItem := grammar.LR1Item{
					LR0Item: grammar.LR0Item{
						NonTerminal: B,
						Left:        nil,
						Right:       append([]string(nil), p.Body...),
					},
					Lookahead: b,
				}
				key := newItem.String()
				if !seen.Has(key) {
					seen.Set(key, newItem)
					items = append(items, newItem)
				}
			}
		}
	}

	return items
}

// Goto computes the closure of every item in set with its dot advanced past
// X, for those items that have X immediately after the dot. Returns nil if
// no item in set has X after the dot (no transition on X).
func Goto(set []grammar.LR1Item, X string, g *grammar.Grammar, first grammar.FirstMap) []grammar.LR1Item {
	var moved []grammar.LR1Item
	for _, it := range set {
		if it.AtEnd() {
			continue
		}
		if it.Right[0] == X {
			moved = append(moved, it.Advance())
		}
	}
	if len(moved) == 0 {
		return nil
	}
	return Closure(moved, g, first)
}
