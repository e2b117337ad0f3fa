package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

func Test_Build_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("PLUS", "STAR", "LPAREN", "RPAREN", "NUMBER")
	assert.NoError(err)

	g, err := Load(strings.NewReader(`
		%start E
		E: E PLUS T | T
		T: T STAR F | F
		F: LPAREN E RPAREN | NUMBER
	`), reg)
	assert.NoError(err)

	first := Build(g, reg)

	assert.Equal(FirstSet{"LPAREN", "NUMBER"}, first["E"])
	assert.Equal(FirstSet{"LPAREN", "NUMBER"}, first["T"])
	assert.Equal(FirstSet{"LPAREN", "NUMBER"}, first["F"])
	assert.Equal(FirstSet{"PLUS"}, first["PLUS"])
}

func Test_Build_MutualLeftRecursionDoesNotLoop(t *testing.T) {
	assert := assert.New(t)

	reg, err := registry.New("A_TOK", "B_TOK")
	assert.NoError(err)

	g, err := Load(strings.NewReader(`
		%start S
		S: A A_TOK
		A: B B_TOK
		B: A A_TOK
	`), reg)
	assert.NoError(err)

	assert.NotPanics(func() {
		Build(g, reg)
	})
}
