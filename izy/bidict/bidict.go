package bidict

import (
	"fmt"
	"iter"
	"strings"
)

const (
	DefaultKeyName   = "direct"
	DefaultValueName = "reverse"
)

// Pair is a single key/value association.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

type entry[K, V comparable] struct {
	key   K
	value V

	prev, next *entry[K, V]
}

// Bidict is a bijective map between K and V. The zero value is an empty
// map ready to use.
type Bidict[K, V comparable] struct {
	forward map[K]*entry[K, V]
	reverse map[V]*entry[K, V]

	head, tail *entry[K, V]

	keyName, valueName string
}

func New[K, V comparable]() *Bidict[K, V] {
	b := &Bidict[K, V]{}
	b.init()
	return b
}

// NewNamed creates an empty map whose two domains are called key and value,
// e.g. NewNamed("word", "id"). The names select the view names reported by
// Forward and Reverse ("word2id" and "id2word").
func NewNamed[K, V comparable](key, value string) (*Bidict[K, V], error) {
	if key == "" || value == "" {
		return nil, fmt.Errorf("%w: names must not be empty (%q, %q)", ErrInvalidArgument, key, value)
	}

	if key == value {
		return nil, fmt.Errorf("%w: key and value names are both %q", ErrInvalidArgument, key)
	}

	b := New[K, V]()
	b.keyName, b.valueName = key, value
	return b, nil
}

// ParseNamed is NewNamed for a "key-value" name pair such as "word-id".
func ParseNamed[K, V comparable](names string) (*Bidict[K, V], error) {
	if strings.Count(names, "-") != 1 {
		return nil, fmt.Errorf("%w: names %q must contain exactly one \"-\"", ErrInvalidArgument, names)
	}

	key, value, _ := strings.Cut(names, "-")
	return NewNamed[K, V](key, value)
}

// FromPairs creates a map holding pairs, applied in order: later pairs evict
// conflicting earlier ones.
func FromPairs[K, V comparable](pairs ...Pair[K, V]) *Bidict[K, V] {
	b := New[K, V]()
	b.Update(pairs...)
	return b
}

// FromMap creates a map from m. Since m is unordered, so is the resulting
// iteration order; if m is not injective the surviving key for a shared value
// is unspecified.
func FromMap[K, V comparable](m map[K]V) *Bidict[K, V] {
	b := New[K, V]()
	b.UpdateMap(m)
	return b
}

// FromSlices pairs keys[i] with values[i]. Both slices must have the same length.
func FromSlices[K, V comparable](keys []K, values []V) (*Bidict[K, V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys but %d values", ErrInvalidArgument, len(keys), len(values))
	}

	b := New[K, V]()
	for i := range keys {
		b.Set(keys[i], values[i])
	}

	return b, nil
}

func (b *Bidict[K, V]) init() {
	if b.forward == nil {
		b.forward = make(map[K]*entry[K, V])
		b.reverse = make(map[V]*entry[K, V])
	}
}

func (b *Bidict[K, V]) link(e *entry[K, V]) {
	b.forward[e.key] = e
	b.reverse[e.value] = e

	e.prev = b.tail
	if b.tail != nil {
		b.tail.next = e
	} else {
		b.head = e
	}
	b.tail = e
}

func (b *Bidict[K, V]) unlink(e *entry[K, V]) Pair[K, V] {
	delete(b.forward, e.key)
	delete(b.reverse, e.value)

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		b.tail = e.prev
	}

	e.prev, e.next = nil, nil
	return Pair[K, V]{Key: e.key, Value: e.value}
}

// Set associates key with value and returns the pairs it evicted to keep the
// map one-to-one: the previous pair of key and/or the previous pair of value.
// Setting a pair that is already present is a no-op and keeps its position;
// a key whose value changes moves to the end of the iteration order.
func (b *Bidict[K, V]) Set(key K, value V) []Pair[K, V] {
	b.init()

	var evicted []Pair[K, V]
	if e, ok := b.forward[key]; ok {
		if e.value == value {
			return nil
		}

		evicted = append(evicted, b.unlink(e))
	}

	if e, ok := b.reverse[value]; ok {
		evicted = append(evicted, b.unlink(e))
	}

	b.link(&entry[K, V]{key: key, value: value})
	return evicted
}

// Update applies Set for every pair in order.
func (b *Bidict[K, V]) Update(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		b.Set(p.Key, p.Value)
	}
}

func (b *Bidict[K, V]) UpdateMap(m map[K]V) {
	for k, v := range m {
		b.Set(k, v)
	}
}

func (b *Bidict[K, V]) GetByKey(key K) (V, error) {
	if e, ok := b.forward[key]; ok {
		return e.value, nil
	}

	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

func (b *Bidict[K, V]) GetByValue(value V) (K, error) {
	if e, ok := b.reverse[value]; ok {
		return e.key, nil
	}

	var zero K
	return zero, fmt.Errorf("%w: value %v", ErrKeyNotFound, value)
}

func (b *Bidict[K, V]) Lookup(key K) (V, bool) {
	if e, ok := b.forward[key]; ok {
		return e.value, true
	}

	var zero V
	return zero, false
}

func (b *Bidict[K, V]) LookupValue(value V) (K, bool) {
	if e, ok := b.reverse[value]; ok {
		return e.key, true
	}

	var zero K
	return zero, false
}

// GetOr returns the value of key, or def when key is absent.
func (b *Bidict[K, V]) GetOr(key K, def V) V {
	if v, ok := b.Lookup(key); ok {
		return v
	}

	return def
}

// GetByValueOr returns the key owning value, or def when value is absent.
func (b *Bidict[K, V]) GetByValueOr(value V, def K) K {
	if k, ok := b.LookupValue(value); ok {
		return k
	}

	return def
}

// Remove deletes the pair of key from both directions and returns its value.
func (b *Bidict[K, V]) Remove(key K) (V, error) {
	e, ok := b.forward[key]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	b.unlink(e)
	return e.value, nil
}

// RemoveByValue deletes the pair owning value and returns its key.
func (b *Bidict[K, V]) RemoveByValue(value V) (K, error) {
	e, ok := b.reverse[value]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w: value %v", ErrKeyNotFound, value)
	}

	b.unlink(e)
	return e.key, nil
}

func (b *Bidict[K, V]) ContainsKey(key K) bool {
	_, ok := b.forward[key]
	return ok
}

func (b *Bidict[K, V]) ContainsValue(value V) bool {
	_, ok := b.reverse[value]
	return ok
}

func (b *Bidict[K, V]) Len() int {
	return len(b.forward)
}

func (b *Bidict[K, V]) Clear() {
	b.forward, b.reverse = nil, nil
	b.head, b.tail = nil, nil
	b.init()
}

// Names returns the domain names given at construction, or the defaults.
func (b *Bidict[K, V]) Names() (key, value string) {
	if b.keyName == "" {
		return DefaultKeyName, DefaultValueName
	}

	return b.keyName, b.valueName
}

// All iterates over the pairs in insertion order.
func (b *Bidict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := b.head; e != nil; {
			next := e.next
			if !yield(e.key, e.value) {
				return
			}
			e = next
		}
	}
}

func (b *Bidict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range b.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (b *Bidict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (b *Bidict[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, b.Len())
	for k, v := range b.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

// Map returns a copy of the forward direction.
func (b *Bidict[K, V]) Map() map[K]V {
	m := make(map[K]V, b.Len())
	for k, v := range b.All() {
		m[k] = v
	}

	return m
}

// InverseMap returns a copy of the reverse direction.
func (b *Bidict[K, V]) InverseMap() map[V]K {
	m := make(map[V]K, b.Len())
	for k, v := range b.All() {
		m[v] = k
	}

	return m
}

func (b *Bidict[K, V]) Clone() *Bidict[K, V] {
	c := New[K, V]()
	c.keyName, c.valueName = b.keyName, b.valueName
	c.Update(b.Pairs()...)
	return c
}

func (b *Bidict[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("Bidict")
	if b.keyName != "" {
		fmt.Fprintf(&sb, "[%s-%s]", b.keyName, b.valueName)
	}

	sb.WriteString("{")
	for e := b.head; e != nil; e = e.next {
		if e != b.head {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", e.key, e.value)
	}
	sb.WriteString("}")

	return sb.String()
}
