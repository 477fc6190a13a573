package bidict

import "iter"

// Mapping is one direction of a Bidict. Writes through a Mapping go to the
// owning Bidict, so eviction works the same from either side.
type Mapping[A, B comparable] interface {
	Name() string
	Get(a A) (B, error)
	Lookup(a A) (B, bool)
	Set(a A, b B)
	Delete(a A) error
	Contains(a A) bool
	Len() int
	All() iter.Seq2[A, B]
}

var (
	_ Mapping[string, int] = forwardView[string, int]{}
	_ Mapping[int, string] = reverseView[string, int]{}
)

// Forward returns the key-to-value view. Its name is "<key>2<value>" for a
// named map and "direct" otherwise.
func (b *Bidict[K, V]) Forward() Mapping[K, V] {
	return forwardView[K, V]{b}
}

// Reverse returns the value-to-key view. Its name is "<value>2<key>" for a
// named map and "reverse" otherwise.
func (b *Bidict[K, V]) Reverse() Mapping[V, K] {
	return reverseView[K, V]{b}
}

type forwardView[K, V comparable] struct {
	b *Bidict[K, V]
}

func (f forwardView[K, V]) Name() string {
	if f.b.keyName == "" {
		return DefaultKeyName
	}

	return f.b.keyName + "2" + f.b.valueName
}

func (f forwardView[K, V]) Get(k K) (V, error) { return f.b.GetByKey(k) }
func (f forwardView[K, V]) Lookup(k K) (V, bool) { return f.b.Lookup(k) }
func (f forwardView[K, V]) Set(k K, v V) { f.b.Set(k, v) }
func (f forwardView[K, V]) Contains(k K) bool { return f.b.ContainsKey(k) }
func (f forwardView[K, V]) Len() int { return f.b.Len() }
func (f forwardView[K, V]) All() iter.Seq2[K, V] { return f.b.All() }

func (f forwardView[K, V]) Delete(k K) error {
	_, err := f.b.Remove(k)
	return err
}

type reverseView[K, V comparable] struct {
	b *Bidict[K, V]
}

func (r reverseView[K, V]) Name() string {
	if r.b.keyName == "" {
		return DefaultValueName
	}

	return r.b.valueName + "2" + r.b.keyName
}

func (r reverseView[K, V]) Get(v V) (K, error) { return r.b.GetByValue(v) }
func (r reverseView[K, V]) Lookup(v V) (K, bool) { return r.b.LookupValue(v) }
func (r reverseView[K, V]) Set(v V, k K) { r.b.Set(k, v) }
func (r reverseView[K, V]) Contains(v V) bool { return r.b.ContainsValue(v) }
func (r reverseView[K, V]) Len() int { return r.b.Len() }

func (r reverseView[K, V]) Delete(v V) error {
	_, err := r.b.RemoveByValue(v)
	return err
}

func (r reverseView[K, V]) All() iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		for k, v := range r.b.All() {
			if !yield(v, k) {
				return
			}
		}
	}
}
