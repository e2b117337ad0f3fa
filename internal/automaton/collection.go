package automaton

import (
	"sort"
	"strings"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
	"github.com/ccrownhill/parsing-from-scratch/internal/util"
)

// State is one element of the canonical collection: a state number, its item
// set, and the edges reachable from it under each grammar symbol. It is
// realized as a plain struct in a slice indexed by Num, per spec §9's
// recommended redesign away from the source's singly-linked CC list.
type State struct {
	Num       int
	Items     []grammar.LR1Item
	GotoEdges map[string]int // grammar symbol name -> successor state number
}

// Collection is the canonical collection of LR(1) states, numbered densely
// from 0 in construction order.
type Collection struct {
	States []*State
}

// canonicalKey renders an item set's members sorted, so that two item sets
// that are set-equal (same members, any order) produce the same key. This
// is what lets the worklist below dedupe states by set equality rather than
// sequence equality.
func canonicalKey(items []grammar.LR1Item) string {
	strs := make([]string, len(items))
	for i, it := range items {
		strs[i] = it.String()
	}
	sort.Strings(strs)
	return strings.Join(strs, "\x1f")
}

// Build constructs the canonical collection for g using the worklist
// algorithm of spec §4.4: the initial state is the closure of g's start
// symbol's own productions with the dot at the front and END as lookahead
// (the grammar is not augmented with a synthetic S' — the start symbol
// itself plays the accepting role, matching spec §4.4/§4.5 and the C
// original this engine is modeled on). Each state discovered via GOTO is
// reused if an existing state's item set is already set-equal to it;
// otherwise it is assigned the next unused state number and queued.
func Build(g *grammar.Grammar, first grammar.FirstMap) *Collection {
	var seed []grammar.LR1Item
	for _, p := range g.Productions(g.Start()) {
		seed = append(seed, grammar.LR1Item{
			LR0Item: grammar.LR0Item{
				NonTerminal: g.Start(),
				Left:        nil,
				Right:       append([]string(nil), p.Body...),
			},
			Lookahead: registry.End,
		})
	}

	i0Items := Closure(seed, g, first)

	coll := &Collection{}
	index := map[string]int{}

	addState := func(items []grammar.LR1Item) int {
		key := canonicalKey(items)
		if idx, ok := index[key]; ok {
			return idx
		}
		num := len(coll.States)
		coll.States = append(coll.States, &State{
			Num:       num,
			Items:     items,
			GotoEdges: map[string]int{},
		})
		index[key] = num
		return num
	}

	addState(i0Items)

	worklist := []int{0}
	for len(worklist) > 0 {
		wi := worklist[0]
		worklist = worklist[1:]
		W := coll.States[wi]

		// gather grammar symbols following a dot, in first-seen order, so
		// that state numbering is a deterministic function of the grammar.
		var symbols []string
		seenSym := util.NewStringSet()
		for _, it := range W.Items {
			if it.AtEnd() {
				continue
			}
			X := it.Right[0]
			if !seenSym.Has(X) {
				seenSym.Add(X)
				symbols = append(symbols, X)
			}
		}

		for _, X := range symbols {
			J := Goto(W.Items, X, g, first)
			if len(J) == 0 {
				continue
			}
			key := canonicalKey(J)
			target, existed := index[key]
			if !existed {
				target = addState(J)
				worklist = append(worklist, target)
			}
			W.GotoEdges[X] = target
		}
	}

	return coll
}
