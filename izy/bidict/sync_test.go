package bidict

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizedConcurrent(t *testing.T) {
	s := NewSynchronized[int, int](nil)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				s.Set((w*i)%37, i%23)
				_, _ = s.GetByValue(i % 23)
				if i%5 == 0 {
					_, _ = s.Remove(i % 37)
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, s.Do(func(b *Bidict[int, int]) error {
		checkInvariants(t, b)
		return nil
	}))
	assert.Equal(t, len(s.Pairs()), s.Len())
}

func TestSynchronizedDelegates(t *testing.T) {
	s := NewSynchronized(FromPairs(Pair[string, int]{"a", 1}))
	s.Update(Pair[string, int]{"b", 2})

	assert.True(t, s.ContainsKey("b"))
	assert.True(t, s.ContainsValue(1))

	v, err := s.GetByKey("b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	k, err := s.RemoveByValue(1)
	require.NoError(t, err)
	assert.Equal(t, "a", k)

	_, err = s.GetByValue(1)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
