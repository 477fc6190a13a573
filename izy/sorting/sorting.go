// Package sorting ranks slices and maps by value. Every sort is stable, so
// equal elements keep their original relative order in both directions.
package sorting

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var ErrEmpty = errors.New("sorting: empty input")

type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func compare[T constraints.Ordered](reverse bool) func(a, b T) int {
	if reverse {
		return func(a, b T) int { return cmp.Compare(b, a) }
	}

	return cmp.Compare[T]
}

// Ascending returns a sorted copy of x.
func Ascending[T constraints.Ordered](x []T) []T {
	out := slices.Clone(x)
	slices.SortStableFunc(out, compare[T](false))
	return out
}

// Descending returns a copy of x sorted from largest to smallest.
func Descending[T constraints.Ordered](x []T) []T {
	out := slices.Clone(x)
	slices.SortStableFunc(out, compare[T](true))
	return out
}

// TopK returns the k largest elements, largest first. A negative k returns
// the |k| smallest, smallest first.
func TopK[T constraints.Ordered](x []T, k int) []T {
	if k < 0 {
		return head(Ascending(x), -k)
	}

	return head(Descending(x), k)
}

// TopKFunc is TopK ordered by key(x[i]).
func TopKFunc[T any, O constraints.Ordered](x []T, k int, key func(T) O) []T {
	c := compare[O](k >= 0)
	if k < 0 {
		k = -k
	}

	out := slices.Clone(x)
	slices.SortStableFunc(out, func(a, b T) int { return c(key(a), key(b)) })
	return head(out, k)
}

// ArgTopK returns the indices of the k largest elements, or of the k smallest
// when reverse is set. A negative k flips the order like in TopK.
func ArgTopK[T constraints.Ordered](x []T, k int, reverse bool) []int {
	if k < 0 {
		k, reverse = -k, !reverse
	}

	return head(Argsort(x, !reverse), k)
}

// Argsort returns the indices that would sort x.
func Argsort[T constraints.Ordered](x []T, reverse bool) []int {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}

	c := compare[T](reverse)
	slices.SortStableFunc(idx, func(a, b int) int { return c(x[a], x[b]) })

	return idx
}

// Argmax returns the index of the first largest element.
func Argmax[T constraints.Ordered](x []T) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}

	best := 0
	for i, v := range x {
		if v > x[best] {
			best = i
		}
	}

	return best, nil
}

// Argmin returns the index of the first smallest element.
func Argmin[T constraints.Ordered](x []T) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}

	best := 0
	for i, v := range x {
		if v < x[best] {
			best = i
		}
	}

	return best, nil
}

// Reorder returns x[idx[0]], x[idx[1]], ...
func Reorder[T any](x []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}

	return out
}

func head[T any](x []T, k int) []T {
	if k < len(x) {
		return x[:k]
	}

	return x
}
