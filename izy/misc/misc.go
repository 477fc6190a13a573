// Package misc collects small helpers that fit nowhere else.
package misc

import "errors"

var ErrDefaultUnsatisfied = errors.New("misc: default value does not satisfy the condition")

// Flatten concatenates the inner slices of s.
func Flatten[T any](s [][]T) []T {
	n := 0
	for _, inner := range s {
		n += len(inner)
	}

	out := make([]T, 0, n)
	for _, inner := range s {
		out = append(out, inner...)
	}

	return out
}

// Unique returns a copy of s without duplicates, keeping first occurrences.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// First returns the first element satisfying cond. A nil cond matches
// anything.
func First[T any](s []T, cond func(T) bool) (T, bool) {
	for _, v := range s {
		if cond == nil || cond(v) {
			return v, true
		}
	}

	var zero T
	return zero, false
}

// FirstOr is First falling back to def, which must satisfy cond too.
func FirstOr[T any](s []T, def T, cond func(T) bool) (T, error) {
	if v, ok := First(s, cond); ok {
		return v, nil
	}

	if cond == nil || cond(def) {
		return def, nil
	}

	return def, ErrDefaultUnsatisfied
}
