// Package naive implements a handle-scanning bottom-up recognizer with no
// lookahead and no precomputed tables: it repeatedly checks whether the top
// of its stack matches some production's body (a "handle") and reduces it,
// shifting the next token only when no handle is found. It exists to make
// the cost of that approach concrete before the table-driven recognizer in
// package parse: every shift/reduce decision here rescans every production,
// and a grammar with overlapping handles has no way to disambiguate since
// nothing here ever looks ahead. Modeled directly on
// original_source/bot_up_naive/parser.c's grammar_check/check_for_handle.
package naive

import (
	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
	"github.com/ccrownhill/parsing-from-scratch/internal/util"
)

// TokenSource is the same "next terminal" contract package parse uses; it is
// redeclared here rather than imported so this package stays free of any
// dependency on the table-driven engine it exists to contrast with.
type TokenSource interface {
	Next() string
}

// Recognizer drives a grammar's productions over a TokenSource with no
// tables: it is a direct transliteration of the C original's handle-scanning
// loop into the grammar store's types.
type Recognizer struct {
	G *grammar.Grammar

	// Trace, when set, receives a line of text for every reduce and shift
	// decision, same convention as parse.Recognizer.Trace.
	Trace func(string)
}

func (r *Recognizer) trace(line string) {
	if r.Trace != nil {
		r.Trace(line)
	}
}

// Recognize repeatedly looks for a handle atop the stack and reduces it,
// shifting the next token from src when none is found, until the stack
// holds exactly the grammar's start symbol and src is exhausted (accept), or
// no handle exists and src is exhausted with more than one symbol left
// (reject).
func (r *Recognizer) Recognize(src TokenSource) bool {
	var stack util.Stack[string]
	lookahead := src.Next()

	for {
		if head, handleLen, ok := r.findHandle(&stack); ok {
			for i := 0; i < handleLen; i++ {
				stack.Pop()
			}
			stack.Push(head)
			r.trace("reduce -> " + head)
			continue
		}

		if lookahead != registry.End {
			stack.Push(lookahead)
			r.trace("shift " + lookahead)
			lookahead = src.Next()
			continue
		}

		break
	}

	return stack.Len() == 1 && stack.Peek() == r.G.Start() && lookahead == registry.End
}

// findHandle scans every production of every non-terminal, in grammar
// declaration order, and reports the first whose body matches the stack's
// topmost symbols exactly. It returns the production's head, the number of
// stack symbols consumed, and whether a match was found. Ties are broken by
// declaration order, same as the C original's linear scan of its symbol
// list.
func (r *Recognizer) findHandle(stack *util.Stack[string]) (head string, handleLen int, ok bool) {
	for _, nt := range r.G.NonTerminals() {
		for _, p := range r.G.Productions(nt) {
			if matchesTop(stack, p.Body) {
				return p.Head, len(p.Body), true
			}
		}
	}
	return "", 0, false
}

// matchesTop reports whether the top len(body) entries of stack equal body,
// symbol for symbol, reading the stack bottom-to-top.
func matchesTop(stack *util.Stack[string], body []string) bool {
	if len(body) > stack.Len() {
		return false
	}
	base := stack.Len() - len(body)
	for i, sym := range body {
		if stack.Of[base+i] != sym {
			return false
		}
	}
	return true
}
