package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
)

// String renders the ACTION/GOTO table as a fixed-width grid, one row per
// state and one column per terminal/non-terminal, in the same style the
// teacher's canonicalLR1Table.String used rosed's InsertTableOpts for.
func (t *Table) String(g *grammar.Grammar, terminals []string) string {
	var data [][]string

	var header []string
	header = append(header, "state", "|")
	for _, term := range terminals {
		header = append(header, "A:"+term)
	}
	header = append(header, "|")
	for _, nt := range g.NonTerminals() {
		header = append(header, "G:"+nt)
	}
	data = append(data, header)

	var states []int
	for k := range t.action {
		states = append(states, k.state)
	}
	for k := range t.gotoTbl {
		states = append(states, k.state)
	}
	states = dedupInts(states)
	sort.Ints(states)

	for _, s := range states {
		row := []string{fmt.Sprintf("%d", s), "|"}

		for _, term := range terminals {
			cell := ""
			if act, ok := t.Action(s, term); ok {
				switch act.Kind {
				case Accept:
					cell = "acc"
				case Shift:
					cell = fmt.Sprintf("s%d", act.Target)
				case Reduce:
					cell = fmt.Sprintf("r %s", act.Produce.String())
				}
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range g.NonTerminals() {
			cell := ""
			if target, ok := t.Goto(s, nt); ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func dedupInts(in []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
