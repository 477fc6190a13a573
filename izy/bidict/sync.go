package bidict

import "sync"

// Synchronized guards a Bidict with a single lock covering both directions,
// so every mutation is observed as one atomic step.
type Synchronized[K, V comparable] struct {
	lock sync.RWMutex
	b    *Bidict[K, V]
}

// NewSynchronized wraps b, or a new empty map when b is nil. The caller must
// not use b directly afterwards.
func NewSynchronized[K, V comparable](b *Bidict[K, V]) *Synchronized[K, V] {
	if b == nil {
		b = New[K, V]()
	}

	return &Synchronized[K, V]{b: b}
}

func (s *Synchronized[K, V]) Set(key K, value V) []Pair[K, V] {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.b.Set(key, value)
}

func (s *Synchronized[K, V]) Update(pairs ...Pair[K, V]) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.b.Update(pairs...)
}

func (s *Synchronized[K, V]) GetByKey(key K) (V, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.GetByKey(key)
}

func (s *Synchronized[K, V]) GetByValue(value V) (K, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.GetByValue(value)
}

func (s *Synchronized[K, V]) Remove(key K) (V, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.b.Remove(key)
}

func (s *Synchronized[K, V]) RemoveByValue(value V) (K, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.b.RemoveByValue(value)
}

func (s *Synchronized[K, V]) ContainsKey(key K) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.ContainsKey(key)
}

func (s *Synchronized[K, V]) ContainsValue(value V) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.ContainsValue(value)
}

func (s *Synchronized[K, V]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.Len()
}

// Pairs returns a snapshot of the current pairs.
func (s *Synchronized[K, V]) Pairs() []Pair[K, V] {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.b.Pairs()
}

// Do runs fn with exclusive access, for compound read-modify-write steps.
// fn must not retain b.
func (s *Synchronized[K, V]) Do(fn func(b *Bidict[K, V]) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return fn(s.b)
}
