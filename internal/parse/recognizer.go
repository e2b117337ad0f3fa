package parse

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
	"github.com/ccrownhill/parsing-from-scratch/internal/util"
)

// TokenSource is the abstract "next terminal" contract spec §6 describes:
// on each call, Next returns the next terminal name, signalling end of
// input with registry.End. The recognizer never assumes anything about
// where tokens come from; the input package's direct and interactive
// readers are two concrete implementations.
type TokenSource interface {
	Next() string
}

// frame is one entry of the parse stack: a grammar symbol paired with the
// state that was on top when it was pushed.
type frame struct {
	symbol string
	state  int
}

// Recognizer drives Table over a TokenSource and reports accept/reject. It
// owns no state beyond a single invocation's parse stack; a Recognizer
// value is safe to reuse across calls to Recognize as long as calls are not
// made concurrently on overlapping token sources.
type Recognizer struct {
	Table *Table

	// Trace, if set, receives a line of text for every shift, reduce, goto,
	// and accept/reject decision. The core never logs on its own; the CLI
	// wires this to log.Println when --trace is given.
	Trace func(string)
}

func (r *Recognizer) trace(runID string, format string, args ...interface{}) {
	if r.Trace != nil {
		r.Trace(runID + " " + fmt.Sprintf(format, args...))
	}
}

// Recognize runs the shift/reduce/accept loop of spec §4.6 over src,
// starting from state 0 with start as the symbol at the stack's root, and
// reports whether the token sequence src produces is a sentence of the
// grammar the table was built from. Every trace line from this call is
// prefixed with a fresh run ID, so that concurrent or interleaved --trace
// output from multiple recognitions can be told apart.
func (r *Recognizer) Recognize(start string, src TokenSource) bool {
	runID := uuid.NewString()

	stack := util.Stack[frame]{}
	stack.Push(frame{symbol: start, state: r.Table.Start})

	lookahead := src.Next()
	r.trace(runID, "lookahead: %s", lookahead)

	for {
		top := stack.Peek()

		act, ok := r.Table.Action(top.state, lookahead)
		if !ok {
			r.trace(runID, "reject: no ACTION[%d, %s]", top.state, lookahead)
			return false
		}

		switch act.Kind {
		case Shift:
			stack.Push(frame{symbol: lookahead, state: act.Target})
			r.trace(runID, "shift -> state %d", act.Target)
			lookahead = src.Next()
			r.trace(runID, "lookahead: %s", lookahead)

		case Reduce:
			n := len(act.Produce.Body)
			for i := 0; i < n; i++ {
				stack.Pop()
			}
			newTop := stack.Peek()
			g, ok := r.Table.Goto(newTop.state, act.Produce.Head)
			if !ok {
				r.trace(runID, "reject: no GOTO[%d, %s] after reducing %s", newTop.state, act.Produce.Head, act.Produce.String())
				return false
			}
			stack.Push(frame{symbol: act.Produce.Head, state: g})
			r.trace(runID, "reduce %s -> goto state %d", act.Produce.String(), g)

		case Accept:
			if lookahead != registry.End {
				r.trace(runID, "reject: ACCEPT reached with lookahead %s != %s", lookahead, registry.End)
				return false
			}
			r.trace(runID, "accept")
			return true

		default:
			return false
		}
	}
}
