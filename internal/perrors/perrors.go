// Package perrors holds the typed error taxonomy of spec §7: load errors
// (malformed grammar input), build errors (unknown symbols and other
// table-construction defects), and conflict errors (an ACTION cell would
// have to hold two different actions at once). LoadError and BuildError
// wrap an optional underlying cause and implement Unwrap; ConflictError
// carries no cause. All three are safe to compare with errors.As.
package perrors

import "fmt"

// LoadError reports a malformed grammar file: a bad header, a missing start
// directive, a body longer than MAX_BODY, or an unexpected end of file.
type LoadError struct {
	Reason string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("grammar load failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("grammar load failed: %s", e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// BuildError reports a table-construction defect: a reference to an unknown
// symbol, found when the ACTION/GOTO tables are built.
type BuildError struct {
	Reason string
	Cause  error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("table construction failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("table construction failed: %s", e.Reason)
}

func (e *BuildError) Unwrap() error { return e.Cause }

// ConflictError reports that ACTION[state, terminal] would need to hold two
// different actions at once: the grammar is not LR(1). This supersedes the
// "last write wins" behavior spec §4.5 describes as the source's actual
// behavior; spec §9 flags that behavior as hiding grammar bugs and
// recommends detecting it instead, which is what this type is for.
type ConflictError struct {
	State    int
	Terminal string
	First    string
	Second   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not LR(1): state %d has both %s and %s on terminal %q",
		e.State, e.First, e.Second, e.Terminal)
}
