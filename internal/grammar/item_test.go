package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LR1Item_Advance(t *testing.T) {
	assert := assert.New(t)

	item := LR1Item{
		LR0Item:   LR0Item{NonTerminal: "E", Left: nil, Right: []string{"E", "PLUS", "T"}},
		Lookahead: "END",
	}

	next := item.Advance()
	assert.Equal([]string{"E"}, next.Left)
	assert.Equal([]string{"PLUS", "T"}, next.Right)
	assert.Equal("END", next.Lookahead)
	assert.False(next.AtEnd())

	next = next.Advance().Advance()
	assert.True(next.AtEnd())
	assert.Equal([]string{"E", "PLUS", "T"}, next.Left)
}

func Test_ItemsOf(t *testing.T) {
	assert := assert.New(t)

	p := Production{Head: "F", Body: []string{"LPAREN", "E", "RPAREN"}}
	items := ItemsOf(p)

	assert.Len(items, 4)
	assert.True(items[0].Equal(LR0Item{NonTerminal: "F", Right: []string{"LPAREN", "E", "RPAREN"}}))
	assert.True(items[3].Equal(LR0Item{NonTerminal: "F", Left: []string{"LPAREN", "E", "RPAREN"}}))
	assert.True(items[3].AtEnd())
}

func Test_LR0Item_String(t *testing.T) {
	assert := assert.New(t)

	item := LR0Item{NonTerminal: "E", Left: []string{"E", "PLUS"}, Right: []string{"T"}}
	assert.Equal("E -> E PLUS . T", item.String())
}
