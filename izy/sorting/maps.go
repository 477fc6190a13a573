package sorting

import (
	"cmp"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// sortedKeys gives map functions a deterministic base order, since Go maps
// have none. Ties on value are therefore broken by key.
func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}

// ArgsortMap returns the keys of m ordered by their values.
func ArgsortMap[K, V constraints.Ordered](m map[K]V, reverse bool) []K {
	keys := sortedKeys(m)

	c := compare[V](reverse)
	slices.SortStableFunc(keys, func(a, b K) int { return c(m[a], m[b]) })

	return keys
}

// ArgmaxMap returns the key holding the largest value, the smallest such key
// on ties.
func ArgmaxMap[K, V constraints.Ordered](m map[K]V) (K, error) {
	keys := sortedKeys(m)
	if len(keys) == 0 {
		var zero K
		return zero, ErrEmpty
	}

	best := keys[0]
	for _, k := range keys[1:] {
		if m[k] > m[best] {
			best = k
		}
	}

	return best, nil
}

// ArgminMap returns the key holding the smallest value, the smallest such key
// on ties.
func ArgminMap[K, V constraints.Ordered](m map[K]V) (K, error) {
	keys := sortedKeys(m)
	if len(keys) == 0 {
		var zero K
		return zero, ErrEmpty
	}

	best := keys[0]
	for _, k := range keys[1:] {
		if m[k] < m[best] {
			best = k
		}
	}

	return best, nil
}

// OrderedMap returns the entries of m sorted by value, or by key when byKeys
// is set.
func OrderedMap[K, V constraints.Ordered](m map[K]V, byKeys, reverse bool) []Entry[K, V] {
	var keys []K
	if byKeys {
		keys = sortedKeys(m)
		if reverse {
			slices.SortStableFunc(keys, func(a, b K) int { return cmp.Compare(b, a) })
		}
	} else {
		keys = ArgsortMap(m, reverse)
	}

	out := make([]Entry[K, V], len(keys))
	for i, k := range keys {
		out[i] = Entry[K, V]{k, m[k]}
	}

	return out
}
