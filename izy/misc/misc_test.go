package misc

import (
	"bytes"
	"testing"

	"github.com/MRtecno98/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4}, Flatten([][]int{{1, 2}, {}, {3, 4}}))
	assert.Empty(t, Flatten[int](nil))
}

func TestUnique(t *testing.T) {
	in := []string{"b", "a", "b", "c", "a"}
	assert.Equal(t, []string{"b", "a", "c"}, Unique(in))
	assert.Len(t, in, 5)
}

func TestFirst(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	v, ok := First([]int{1, 3, 4, 6}, even)
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = First([]int{7}, nil)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = First([]int{1, 3}, even)
	assert.False(t, ok)
}

func TestFirstOr(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	v, err := FirstOr([]int{1, 3}, 10, even)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = FirstOr([]int{1, 3}, 11, even)
	assert.ErrorIs(t, err, ErrDefaultUnsatisfied)

	v, err = FirstOr(nil, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestSingleton(t *testing.T) {
	calls := 0
	s := Singleton[*bytes.Buffer]{New: func() *bytes.Buffer {
		calls++
		return new(bytes.Buffer)
	}}

	assert.Same(t, s.Get(), s.Get())
	assert.Equal(t, 1, calls)
}

type registry struct{ name string }

func TestInstance(t *testing.T) {
	a := Instance(func() *registry { return &registry{name: "first"} })
	b := Instance(func() *registry { return &registry{name: "second"} })

	assert.Same(t, a, b)
	assert.Equal(t, "first", b.name)
}

func TestSetupLogger(t *testing.T) {
	fs := afero.NewMemMapFs()
	var stdout bytes.Buffer

	l, err := SetupLoggerFs(fs, &stdout, "test", "run.log", Truncate)
	require.NoError(t, err)
	l.Info("hello", "n", 1)
	l.Debug("hidden")
	require.NoError(t, l.Close())

	data, err := afero.ReadFile(fs, "run.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "logger=test")
	assert.NotContains(t, string(data), "hidden")
	assert.Equal(t, string(data), stdout.String())

	l, err = SetupLoggerFs(fs, &stdout, "test", "run.log", Append)
	require.NoError(t, err)
	l.Level.Set(-4)
	l.Debug("shown")
	require.NoError(t, l.Close())

	data, err = afero.ReadFile(fs, "run.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
	assert.Contains(t, string(data), "msg=shown")

	_, err = SetupLoggerFs(fs, &stdout, "test", "run.log", Mode("x"))
	assert.Error(t, err)
}
