// Package util contains small generic containers shared across the
// grammar, automaton, and parse packages. It is deliberately small; most of
// it exists so the other packages can key sets and tables by a stringified
// identity instead of comparing structs field by field everywhere.
package util

import (
	"sort"
)

// OrderedKeys returns the keys of m sorted ascending, for walking a map in a
// deterministic order. SVSet.StringOrdered is its only caller.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
