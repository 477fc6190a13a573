package util

import "io"

type CountingWriter struct {
	io.Writer
	BytesWritten int

	// LastBytes holds up to the last n bytes written, oldest first.
	LastBytes []byte
	lookback  int
}

func NewCountingWriter(w io.Writer) *CountingWriter {
	return NewLookbackCountingWriter(w, 0)
}

func NewLookbackCountingWriter(w io.Writer, lookback int) *CountingWriter {
	return &CountingWriter{
		Writer:    w,
		LastBytes: make([]byte, 0, lookback),
		lookback:  lookback,
	}
}

func (w *CountingWriter) Write(b []byte) (int, error) {
	n, err := w.Writer.Write(b)
	w.BytesWritten += n

	if w.lookback > 0 && n > 0 {
		w.LastBytes = append(w.LastBytes, b[:n]...)
		if over := len(w.LastBytes) - w.lookback; over > 0 {
			w.LastBytes = append(w.LastBytes[:0], w.LastBytes[over:]...)
		}
	}

	return n, err
}

// EndsWithNewline reports whether the last byte written was '\n'.
func (w *CountingWriter) EndsWithNewline() bool {
	return len(w.LastBytes) > 0 && w.LastBytes[len(w.LastBytes)-1] == '\n'
}
