package scorer

import (
	"cmp"

	"golang.org/x/exp/slices"
)

func (s *Scorer[K, S]) sorted(reverse bool) []Item[K, S] {
	items := s.Items()
	slices.SortStableFunc(items, func(a, b Item[K, S]) int {
		if reverse {
			return cmp.Compare(b.Score, a.Score)
		}
		return cmp.Compare(a.Score, b.Score)
	})

	return items
}

func (s *Scorer[K, S]) Ascending() []Item[K, S] {
	return s.sorted(false)
}

func (s *Scorer[K, S]) Descending() []Item[K, S] {
	return s.sorted(true)
}

// TopK lists the k best items, best first. A negative k lists the |k| worst,
// worst first, and zero lists everything best first.
func (s *Scorer[K, S]) TopK(k int) []Item[K, S] {
	var items []Item[K, S]
	switch {
	case k == 0:
		return s.Descending()
	case k < 0:
		items, k = s.Ascending(), -k
	default:
		items = s.Descending()
	}

	if k < len(items) {
		items = items[:k]
	}

	return items
}

// BottomK lists the k worst items, or all of them ascending when k is zero.
func (s *Scorer[K, S]) BottomK(k int) []Item[K, S] {
	if k == 0 {
		return s.Ascending()
	}

	return s.TopK(-k)
}

func (s *Scorer[K, S]) Best() (Item[K, S], bool) {
	return first(s.Descending())
}

func (s *Scorer[K, S]) Worst() (Item[K, S], bool) {
	return first(s.Ascending())
}

// Median returns the item at position (len+1)/2 of the descending order,
// clamped to the last item.
func (s *Scorer[K, S]) Median() (Item[K, S], bool) {
	items := s.Descending()
	if len(items) == 0 {
		return Item[K, S]{}, false
	}

	return items[min((len(items)+1)/2, len(items)-1)], true
}

func first[K comparable, S Number](items []Item[K, S]) (Item[K, S], bool) {
	if len(items) == 0 {
		return Item[K, S]{}, false
	}

	return items[0], true
}
