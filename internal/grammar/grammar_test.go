package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

func arithRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New("PLUS", "STAR", "LPAREN", "RPAREN", "NUMBER")
	assert.NoError(t, err)
	return reg
}

func Test_Load(t *testing.T) {
	testCases := []struct {
		name      string
		grammar   string
		expectErr bool
	}{
		{
			name: "purple dragon example 4.45",
			grammar: `
				%start E
				E: E PLUS T | T
				T: T STAR F | F
				F: LPAREN E RPAREN | NUMBER
			`,
		},
		{
			name:      "missing start directive",
			grammar:   `E: NUMBER`,
			expectErr: true,
		},
		{
			name:      "start symbol with no productions",
			grammar:   `%start S`,
			expectErr: true,
		},
		{
			name:    "unknown symbol in body is accepted at load time",
			grammar: `%start E E: BOGUS`,
			// Load only distinguishes terminals from non-terminals by
			// whether a name has its own header; it does not itself check
			// BOGUS against the registry. See parse.Build's
			// Test_Build_DetectsUnknownSymbol for where that is caught.
		},
		{
			name:      "empty production body rejected",
			grammar:   `%start E E: NUMBER | `,
			expectErr: true,
		},
		{
			name: "body exceeding MAX_BODY rejected",
			grammar: `%start E
				E: NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER NUMBER`,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			reg := arithRegistry(t)

			g, err := Load(strings.NewReader(tc.grammar), reg)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal("E", g.Start())
			assert.True(g.IsNonTerminal("E"))
		})
	}
}

func Test_Grammar_AllProductions_PreservesOrder(t *testing.T) {
	assert := assert.New(t)
	reg := arithRegistry(t)

	g, err := Load(strings.NewReader(`
		%start E
		E: E PLUS T | T
		T: T STAR F | F
		F: LPAREN E RPAREN | NUMBER
	`), reg)
	assert.NoError(err)

	all := g.AllProductions()
	assert.Len(all, 6)
	assert.Equal("E", all[0].Head)
	assert.Equal([]string{"E", "PLUS", "T"}, all[0].Body)
	assert.Equal("F", all[len(all)-1].Head)
}

func Test_Production_Equal(t *testing.T) {
	assert := assert.New(t)

	a := Production{Head: "E", Body: []string{"E", "PLUS", "T"}}
	b := Production{Head: "E", Body: []string{"E", "PLUS", "T"}}
	c := Production{Head: "E", Body: []string{"T"}}

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}
