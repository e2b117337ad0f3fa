package util

import (
	"fmt"
	"sort"
	"strings"
)

// SVSet is a set whose members are string-keyed, each carrying a data value of
// type V. Closure (automaton/closure.go) uses one keyed by an LR(1) item's
// canonical string form with the item itself as the value, which is what lets
// it do append-unique by string identity instead of a deep struct comparison
// on every insert.
type SVSet[V any] map[string]V

// NewSVSet builds an SVSet, optionally seeded from existing maps.
func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	s := SVSet[V]{}
	for _, m := range of {
		for k, v := range m {
			s[k] = v
		}
	}
	return s
}

// Set assigns the value for idx, adding it if not already present.
func (s SVSet[V]) Set(idx string, val V) {
	s[idx] = val
}

// Get retrieves the value for idx, or the zero value of V if absent.
func (s SVSet[V]) Get(idx string) V {
	return s[idx]
}

// Has returns whether idx is a member of the set.
func (s SVSet[V]) Has(idx string) bool {
	_, ok := s[idx]
	return ok
}

// Len returns the number of members.
func (s SVSet[V]) Len() int {
	return len(s)
}

// Elements returns the keys of the set, in no particular order.
func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

// Equal returns whether s and o have the same keys. Values are not compared;
// the key is assumed to be the value's canonical string identity.
func (s SVSet[V]) Equal(o SVSet[V]) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}

// StringOrdered renders the set's keys sorted ascending, for use as a stable
// identity when the set itself must be a map key. The canonical-collection
// builder does not use it; it keys states with its own canonicalKey.
func (s SVSet[V]) StringOrdered() string {
	keys := OrderedKeys(s)
	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(keys, ", "))
	sb.WriteRune('}')
	return sb.String()
}

// StringSet is a plain set of strings. The collection builder
// (automaton/collection.go) uses one to dedupe the grammar symbols following
// a dot in a state's item set; the FIRST-set builder (grammar/first.go) uses
// one as its in-progress call-chain guard against mutual left recursion.
type StringSet map[string]bool

// NewStringSet builds a StringSet, optionally seeded from existing maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

func (s StringSet) Add(value string)    { s[value] = true }
func (s StringSet) Remove(value string) { delete(s, value) }
func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}
func (s StringSet) Len() int { return len(s) }

// Elements returns the set's members in ascending string order, so that
// iteration over the set is deterministic.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	sort.Strings(elems)
	return elems
}

func (s StringSet) String() string {
	return fmt.Sprintf("{%s}", strings.Join(s.Elements(), ", "))
}

// Stack is a simple LIFO of T, used for the recognizer's state/symbol stacks.
type Stack[T any] struct {
	Of []T
}

func (s *Stack[T]) Push(v T) {
	s.Of = append(s.Of, v)
}

func (s *Stack[T]) Pop() T {
	last := s.Of[len(s.Of)-1]
	s.Of = s.Of[:len(s.Of)-1]
	return last
}

func (s *Stack[T]) Peek() T {
	return s.Of[len(s.Of)-1]
}

func (s *Stack[T]) Len() int {
	return len(s.Of)
}

func (s *Stack[T]) Empty() bool {
	return len(s.Of) == 0
}
