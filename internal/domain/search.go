package domain

import "strings"

// Predicate reports whether an item should be selected.
type Predicate[T any] func(item T) bool

// FirstThenLowerCase returns the first item satisfying p, lowercased.
// ok is false when no item matches.
func FirstThenLowerCase(items []string, p Predicate[string]) (s string, ok bool) {
	for _, item := range items {
		if p(item) {
			return strings.ToLower(item), true
		}
	}

	return "", false
}
