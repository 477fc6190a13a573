package discovery

import (
	"bytes"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeSeq(start, stop, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < stop; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func nested() []any {
	x := []any{
		[4]int{1, 2, 3, 4},
		map[int]any{1: rangeSeq(0, 3, 1), 2: rangeSeq(2, 40, 2), 5: 6, 7: 8},
		rangeSeq(0, 1000, 1),
		[4]int{7, 8, 9, 10},
	}
	for i := range 10 {
		x = append(x, i)
	}

	return x
}

func TestHead(t *testing.T) {
	assert.Equal(t, "[(1, 2, 3), {1: (0, 1, 2), 2: (2, 4, 6), 5: 6}, (0, 1, 2)]", Sprint(Head(nested(), 3, false)))
	assert.Equal(t, "[(1, 2, ...), {1: (0, 1, ...), 2: (2, 4, ...), ...: ...}, ...]", Sprint(Head(nested(), 2, true)))
}

func TestHeadScalars(t *testing.T) {
	assert.Equal(t, "hello", Head("hello", 2, true))
	assert.Equal(t, 42, Head(42, 2, true))
	assert.Nil(t, Head(nil, 2, true))
}

func TestHeadTypes(t *testing.T) {
	assert.Equal(t, []any{1, 2}, Head([]int{1, 2, 3}, 2, false))
	assert.Equal(t, []any{1, 2, Etc{}}, Head([]int{1, 2, 3}, 2, true))
	assert.Equal(t, []any{1, 2}, Head([]int{1, 2}, 2, true), "exact length is not truncated")
	assert.Equal(t, Tuple{"a"}, Head([1]string{"a"}, 2, true))
	assert.Equal(t, Map{{"a", 1}, {"b", 2}, {Etc{}, Etc{}}}, Head(map[string]int{"c": 3, "b": 2, "a": 1}, 2, true))
}

func TestHeadInfinite(t *testing.T) {
	assert.Equal(t, Tuple{0, 1, 2, Etc{}}, Head(naturals(), 3, true))
	assert.Equal(t, Tuple{}, Head(naturals(), 0, false))
}

func TestHeadSeq2(t *testing.T) {
	seq := func(yield func(string, int) bool) {
		for i, s := range []string{"z", "y", "x"} {
			if !yield(s, i) {
				return
			}
		}
	}

	assert.Equal(t, Map{{"z", 0}, {"y", 1}, {Etc{}, Etc{}}}, Head(seq, 2, true))
}

func TestHeadChan(t *testing.T) {
	ch := make(chan int, 5)
	for i := range 5 {
		ch <- i
	}
	close(ch)

	assert.Equal(t, []any{0, 1, Etc{}}, Head(ch, 2, true))
	assert.Equal(t, []any{2, 3, 4}, Head(ch, 10, true))
}

func TestPFormat(t *testing.T) {
	expected := strings.Join([]string{
		"[ (1, 2, 3, ...),",
		"  {1: (0, 1, 2), 2: (2, 4, 6, ...), 5: 6, ...: ...},",
		"  (0, 1, 2, ...),",
		"  ...]",
	}, "\n")

	assert.Equal(t, expected, PFormat(nested(), Options{}))
}

func TestHPrint(t *testing.T) {
	expected := strings.Join([]string{
		"[   (1, 2, 3, 4),",
		"    {   1: (0, 1, 2),",
		"        2: (   2,",
		"               4,",
		"               6,",
		"               8,",
		"               10,",
		"               ...),",
		"        5: 6,",
		"        7: 8},",
		"    (0, 1, 2, 3, 4, ...),",
		"    (7, 8, 9, 10),",
		"    0,",
		"    ...]",
		"",
	}, "\n")

	var buf bytes.Buffer
	require.NoError(t, HPrint(&buf, nested(), Options{N: 5, Width: 32, Indent: 4}))
	assert.Equal(t, expected, buf.String())
}

func TestPFormatDepth(t *testing.T) {
	x := []any{[]any{[]any{1}}, map[string]int{"a": 1}}

	assert.Equal(t, `[[[1]], {"a": 1}]`, PFormat(x, Options{}))
	assert.Equal(t, "[[...], {...}]", PFormat(x, Options{Depth: 1}))
	assert.Equal(t, "[[[...]], {\"a\": 1}]", PFormat(x, Options{Depth: 2}))
}

func TestSprintTuple(t *testing.T) {
	assert.Equal(t, "(1,)", Sprint(Tuple{1}))
	assert.Equal(t, "[nil, \"s\", true]", Sprint([]any{nil, "s", true}))
}

func TestGoFormat(t *testing.T) {
	out := GoFormat([]int{1, 2, 3, 4}, 2)
	assert.Contains(t, out, "[]interface {}{")
	assert.Contains(t, out, "discovery.Etc{}")
}
