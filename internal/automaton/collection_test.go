package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

func Test_Build_DragonExample448(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("LOWER_C", "LOWER_D")
	assert.NoError(err)

	g, err := grammar.Load(strings.NewReader(`
		%start S
		S: C C
		C: LOWER_C C | LOWER_D
	`), reg)
	assert.NoError(err)

	first := grammar.Build(g, reg)
	coll := Build(g, first)

	// purple dragon example 4.48 has 10 states for this grammar when
	// augmented with S' -> S; here S itself plays the accepting role, so
	// one fewer state is expected: the augmenting state is never built.
	assert.Len(coll.States, 9)

	// state 0 is the closure of S's own productions, dot at front, END
	// lookahead.
	s0 := coll.States[0]
	// S->.CC, plus C->.LOWER_C C and C->.LOWER_D each duplicated under
	// lookaheads LOWER_C and LOWER_D (FIRST of the trailing C).
	assert.Len(s0.Items, 5)
}

func Test_Closure_ExpandsNonTerminalAfterDot(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("NUMBER")
	assert.NoError(err)

	g, err := grammar.Load(strings.NewReader(`
		%start S
		S: A
		A: NUMBER
	`), reg)
	assert.NoError(err)

	first := grammar.Build(g, reg)

	seed := []grammar.LR1Item{{
		LR0Item:   grammar.LR0Item{NonTerminal: "S", Right: []string{"A"}},
		Lookahead: registry.End,
	}}

	closed := Closure(seed, g, first)
	assert.Len(closed, 2)
}
