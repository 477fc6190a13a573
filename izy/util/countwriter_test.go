package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountingWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewLookbackCountingWriter(&buf, 2)

	_, _ = w.Write([]byte("hello"))
	assert.Equal(t, 5, w.BytesWritten)
	assert.Equal(t, []byte("lo"), w.LastBytes)
	assert.False(t, w.EndsWithNewline())

	_, _ = w.Write([]byte("!\n"))
	assert.Equal(t, 7, w.BytesWritten)
	assert.Equal(t, []byte("!\n"), w.LastBytes)
	assert.True(t, w.EndsWithNewline())
	assert.Equal(t, "hello!\n", buf.String())
}

func TestCountingWriterNoLookback(t *testing.T) {
	var buf bytes.Buffer
	w := NewCountingWriter(&buf)

	_, _ = w.Write([]byte("abc"))
	assert.Equal(t, 3, w.BytesWritten)
	assert.Empty(t, w.LastBytes)
}
