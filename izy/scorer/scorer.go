// Package scorer keeps scores for hashable items and ranks them.
package scorer

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var ErrLengthMismatch = errors.New("scorer: keys and scores differ in length")

type Number interface {
	constraints.Integer | constraints.Float
}

type Item[K comparable, S Number] struct {
	Key   K
	Score S
}

func (i Item[K, S]) String() string {
	return fmt.Sprintf("%v: %v", i.Key, i.Score)
}

type Options[S Number] struct {
	// Missing is reported by Get for absent keys.
	Missing S
}

// Scorer maps items to scores. Iteration follows insertion order; setting an
// existing key keeps its position.
type Scorer[K comparable, S Number] struct {
	keys    []K
	scores  map[K]S
	missing S
}

func New[K comparable, S Number](opts Options[S]) *Scorer[K, S] {
	return &Scorer[K, S]{scores: make(map[K]S), missing: opts.Missing}
}

// FromMap copies m. The resulting order is the map's iteration order.
func FromMap[K comparable, S Number](m map[K]S) *Scorer[K, S] {
	s := New[K, S](Options[S]{})
	for k, v := range m {
		s.Set(k, v)
	}

	return s
}

func FromSlices[K comparable, S Number](keys []K, scores []S) (*Scorer[K, S], error) {
	if len(keys) != len(scores) {
		return nil, fmt.Errorf("%w: %d keys, %d scores", ErrLengthMismatch, len(keys), len(scores))
	}

	s := New[K, S](Options[S]{})
	for i, k := range keys {
		s.Set(k, scores[i])
	}

	return s, nil
}

func (s *Scorer[K, S]) empty() *Scorer[K, S] {
	return New[K, S](Options[S]{Missing: s.missing})
}

func (s *Scorer[K, S]) Set(key K, score S) {
	if s.scores == nil {
		s.scores = make(map[K]S)
	}

	if _, ok := s.scores[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.scores[key] = score
}

// Get returns the score of key, or the missing value.
func (s *Scorer[K, S]) Get(key K) S {
	if v, ok := s.scores[key]; ok {
		return v
	}

	return s.missing
}

func (s *Scorer[K, S]) Lookup(key K) (S, bool) {
	v, ok := s.scores[key]
	return v, ok
}

func (s *Scorer[K, S]) Contains(key K) bool {
	_, ok := s.scores[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (s *Scorer[K, S]) Delete(key K) {
	if _, ok := s.scores[key]; !ok {
		return
	}

	delete(s.scores, key)
	s.keys = slices.DeleteFunc(s.keys, func(k K) bool { return k == key })
}

func (s *Scorer[K, S]) Len() int {
	return len(s.keys)
}

func (s *Scorer[K, S]) Missing() S {
	return s.missing
}

// Add adds score to the current score of key, starting from the missing value.
func (s *Scorer[K, S]) Add(key K, score S) {
	s.Set(key, s.Get(key)+score)
}

// Update adds every score of other to s.
func (s *Scorer[K, S]) Update(other *Scorer[K, S]) {
	for k, v := range other.All() {
		s.Add(k, v)
	}
}

func (s *Scorer[K, S]) Clone() *Scorer[K, S] {
	out := s.empty()
	for k, v := range s.All() {
		out.Set(k, v)
	}

	return out
}

func (s *Scorer[K, S]) All() iter.Seq2[K, S] {
	return func(yield func(K, S) bool) {
		for _, k := range s.keys {
			if !yield(k, s.scores[k]) {
				return
			}
		}
	}
}

func (s *Scorer[K, S]) Items() []Item[K, S] {
	out := make([]Item[K, S], len(s.keys))
	for i, k := range s.keys {
		out[i] = Item[K, S]{k, s.scores[k]}
	}

	return out
}

func (s *Scorer[K, S]) Map() map[K]S {
	out := make(map[K]S, len(s.scores))
	for k, v := range s.scores {
		out[k] = v
	}

	return out
}

func (s *Scorer[K, S]) String() string {
	if s.Len() == 0 {
		return "Scorer()"
	}

	const maxItems = 9

	var items string
	if s.Len() <= maxItems {
		items = join(s.TopK(maxItems))
	} else {
		med, _ := s.Median()
		items = fmt.Sprintf("%s, ..., %s, .., %s",
			join(s.TopK(maxItems/2)), med, join(s.TopK(-(maxItems / 2))))
	}

	return "Scorer({" + items + "})"
}

func join[K comparable, S Number](items []Item[K, S]) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}

	return strings.Join(parts, ", ")
}
