package topdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

func Test_Build_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("PLUS", "STAR", "LPAREN", "RPAREN", "NUMBER")
	assert.NoError(err)

	g, err := grammar.Load(strings.NewReader(`
		%start E
		E: E PLUS T | T
		T: T STAR F | F
		F: LPAREN E RPAREN | NUMBER
	`), reg)
	assert.NoError(err)

	b := &Builder{G: g}

	tree, ok := b.Build([]string{"NUMBER"})
	assert.True(ok)
	assert.Equal("(E (T (F NUMBER)))", tree.String())

	_, ok = b.Build([]string{"NUMBER", "PLUS"})
	assert.False(ok)
}

func Test_Build_Backtracks(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("A_TOK", "B_TOK")
	assert.NoError(err)

	// S's first alternative consumes only A_TOK and fails to match the
	// trailing B_TOK; the builder must backtrack to the second
	// alternative to succeed.
	g, err := grammar.Load(strings.NewReader(`
		%start S
		S: A_TOK | A_TOK B_TOK
	`), reg)
	assert.NoError(err)

	b := &Builder{G: g}

	tree, ok := b.Build([]string{"A_TOK", "B_TOK"})
	assert.True(ok)
	assert.Equal("(S A_TOK B_TOK)", tree.String())
}
