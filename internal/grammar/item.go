package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production with a dot position: NonTerminal -> Left . Right.
// Left and Right partition the production's body around the dot; Right[0],
// when present, is the symbol immediately after the dot.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// AtEnd reports whether the dot has reached the end of the body.
func (item LR0Item) AtEnd() bool {
	return len(item.Right) == 0
}

// Equal compares two LR0Items structurally.
func (item LR0Item) Equal(o LR0Item) bool {
	if item.NonTerminal != o.NonTerminal {
		return false
	}
	if len(item.Left) != len(o.Left) || len(item.Right) != len(o.Right) {
		return false
	}
	for i := range item.Left {
		if item.Left[i] != o.Left[i] {
			return false
		}
	}
	for i := range item.Right {
		if item.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

func (item LR0Item) String() string {
	left := strings.Join(item.Left, " ")
	right := strings.Join(item.Right, " ")
	if len(left) > 0 {
		left += " "
	}
	if len(right) > 0 {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s", item.NonTerminal, left, right)
}

// LR1Item adds a one-terminal lookahead to an LR0Item: [A -> alpha . beta, a].
type LR1Item struct {
	LR0Item
	Lookahead string
}

// Equal compares two LR1Items by production equality, dot position, and
// lookahead, per spec §3.
func (item LR1Item) Equal(o LR1Item) bool {
	return item.LR0Item.Equal(o.LR0Item) && item.Lookahead == o.Lookahead
}

func (item LR1Item) String() string {
	return fmt.Sprintf("%s, %s", item.LR0Item.String(), item.Lookahead)
}

// Advance returns the item with the dot moved one position to the right,
// over the symbol currently after the dot. Panics if the dot is already at
// the end; callers are expected to check AtEnd first (goto only ever
// advances items known to have X immediately after the dot).
func (item LR1Item) Advance() LR1Item {
	next := item
	next.Left = append(append([]string(nil), item.Left...), item.Right[0])
	next.Right = append([]string(nil), item.Right[1:]...)
	return next
}

// ItemsOf returns every LR0Item obtainable by placing a dot at every
// position of p's body, from before the first symbol to after the last.
func ItemsOf(p Production) []LR0Item {
	items := make([]LR0Item, 0, len(p.Body)+1)
	for dot := 0; dot <= len(p.Body); dot++ {
		items = append(items, LR0Item{
			NonTerminal: p.Head,
			Left:        append([]string(nil), p.Body[:dot]...),
			Right:       append([]string(nil), p.Body[dot:]...),
		})
	}
	return items
}
