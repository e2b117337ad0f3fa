// Package topdown implements a backtracking top-down parse-tree builder: for
// each non-terminal it tries its productions in declaration order, recursing
// into each body symbol in turn, and backtracks to the next alternative the
// moment a symbol fails to match. An alternative whose first body symbol is
// its own head (direct left recursion, as in E -> E PLUS T) is skipped, so
// such alternatives never contribute to a tree. It exists to make concrete why LL(1)
// grammars precompute a FIRST/FOLLOW-driven prediction instead of trying
// alternatives blindly: every failed guess here re-walks however much of the
// token stream it had already consumed. Modeled on
// original_source/top_down/parser.c's parse_tree_gen, restructured as plain
// recursion over a buffered token slice rather than its explicit
// parent-pointer backtracking stack.
package topdown

import (
	"fmt"
	"strings"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

// Tree is one node of a parse tree: a grammar symbol (terminal or
// non-terminal) and, for a non-terminal produced by some production, its
// children in body order. A terminal node has no children.
type Tree struct {
	Symbol   string
	Children []*Tree
}

// String renders the tree as a parenthesized symbol expression, e.g.
// "(E (E (T (F NUMBER))) PLUS (T (F NUMBER)))".
func (t *Tree) String() string {
	if len(t.Children) == 0 {
		return t.Symbol
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("(%s %s)", t.Symbol, strings.Join(parts, " "))
}

// Builder constructs a Tree for a fixed token sequence against a grammar by
// backtracking search. Unlike the table-driven engine, Builder reads its
// entire input up front: backtracking means re-trying a symbol at an
// earlier position, which an unbuffered TokenSource cannot support.
type Builder struct {
	G *grammar.Grammar

	// Trace, when set, receives a line of text for every attempted and
	// failed production, same convention as parse.Recognizer.Trace.
	Trace func(string)
}

func (b *Builder) trace(format string, args ...interface{}) {
	if b.Trace != nil {
		b.Trace(fmt.Sprintf(format, args...))
	}
}

// Build attempts to derive tokens from the grammar's start symbol. It
// returns the parse tree and true on success; on failure (no sequence of
// alternative choices derives tokens in full) it returns nil, false.
// registry.End must not appear in tokens; the slice's length marks the end
// of input instead, mirroring the C original's isend flag.
func (b *Builder) Build(tokens []string) (*Tree, bool) {
	tree, pos, ok := b.expand(b.G.Start(), 0, tokens)
	if !ok || pos != len(tokens) {
		return nil, false
	}
	return tree, true
}

// expand tries to derive sym starting at tokens[pos:], returning the
// subtree built, the position just past what it consumed, and whether it
// succeeded.
func (b *Builder) expand(sym string, pos int, tokens []string) (*Tree, int, bool) {
	if !b.G.IsNonTerminal(sym) {
		if pos < len(tokens) && tokens[pos] == sym {
			return &Tree{Symbol: sym}, pos + 1, true
		}
		b.trace("mismatch: expected %s at position %d", sym, pos)
		return nil, pos, false
	}

	for _, p := range b.G.Productions(sym) {
		if len(p.Body) > 0 && p.Body[0] == sym {
			// left-recursive alternative: expanding it would re-enter sym at
			// the same position forever, so it is never tried.
			b.trace("skip left-recursive %s", p.String())
			continue
		}
		b.trace("try %s", p.String())
		node := &Tree{Symbol: sym}
		cur := pos
		matched := true

		for _, bodySym := range p.Body {
			child, next, ok := b.expand(bodySym, cur, tokens)
			if !ok {
				matched = false
				break
			}
			node.Children = append(node.Children, child)
			cur = next
		}

		if matched {
			return node, cur, true
		}
		b.trace("backtrack from %s", p.String())
	}

	return nil, pos, false
}

// ReadAll drains src until registry.End, returning the tokens seen. It is
// the bridge between a streaming TokenSource and Builder's buffered input.
func ReadAll(src interface{ Next() string }) []string {
	var toks []string
	for {
		t := src.Next()
		if t == registry.End {
			return toks
		}
		toks = append(toks, t)
	}
}
