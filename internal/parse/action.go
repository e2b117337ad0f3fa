package parse

import (
	"fmt"

	"github.com/ccrownhill/parsing-from-scratch/internal/grammar"
)

// ActionKind distinguishes the three kinds of ACTION table entry.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is a tagged union of shift/reduce/accept (spec §9's recommended
// redesign away from the source's ActionType/ActionInstr pairing): the
// target state is only meaningful for Shift, the production only for
// Reduce, and Accept carries nothing extra.
type Action struct {
	Kind    ActionKind
	Target  int               // valid when Kind == Shift
	Produce grammar.Production // valid when Kind == Reduce
}

func (a Action) Equal(o Action) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.Target == o.Target
	case Reduce:
		return a.Produce.Equal(o.Produce)
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.Target)
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Produce.String())
	case Accept:
		return "accept"
	default:
		return "error"
	}
}
