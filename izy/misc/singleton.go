package misc

import (
	"reflect"
	"sync"
)

// Singleton lazily builds a single value with New on first Get.
type Singleton[T any] struct {
	New func() T

	once  sync.Once
	value T
}

func (s *Singleton[T]) Get() T {
	s.once.Do(func() {
		if s.New != nil {
			s.value = s.New()
		}
	})

	return s.value
}

var (
	instancesLock sync.Mutex
	instances     = make(map[reflect.Type]any)
)

// Instance returns the process-wide instance of T, building it with create
// the first time T is requested. Later create functions are ignored.
func Instance[T any](create func() *T) *T {
	typ := reflect.TypeFor[T]()

	instancesLock.Lock()
	defer instancesLock.Unlock()

	if v, ok := instances[typ]; ok {
		return v.(*T)
	}

	var v *T
	if create != nil {
		v = create()
	} else {
		v = new(T)
	}

	instances[typ] = v
	return v
}
