package bidict

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = (*Bidict[int, int])(nil)
	_ json.Unmarshaler = (*Bidict[int, int])(nil)

	nullBytes = []byte("null")
)

// MarshalJSON encodes the map as an ordered array of [key, value] pairs, so
// keys need not be strings and insertion order survives a round trip.
func (b *Bidict[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, b.Len())
	for k, v := range b.All() {
		pairs = append(pairs, [2]any{k, v})
	}

	return json.Marshal(pairs)
}

// UnmarshalJSON replaces the contents with the decoded pairs. Every element is
// decoded and checked before the map is touched; a malformed element leaves
// the map unchanged and reports ErrInvalidArgument.
func (b *Bidict[K, V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullBytes) {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	pairs := make([]Pair[K, V], 0, len(raw))
	for i, el := range raw {
		var fields []json.RawMessage
		if err := json.Unmarshal(el, &fields); err != nil {
			return fmt.Errorf("%w: element %d: %v", ErrInvalidArgument, i, err)
		}

		if len(fields) != 2 {
			return fmt.Errorf("%w: element %d has %d fields, want 2", ErrInvalidArgument, i, len(fields))
		}

		var p Pair[K, V]
		if err := json.Unmarshal(fields[0], &p.Key); err != nil {
			return fmt.Errorf("%w: element %d key: %v", ErrInvalidArgument, i, err)
		}

		if err := json.Unmarshal(fields[1], &p.Value); err != nil {
			return fmt.Errorf("%w: element %d value: %v", ErrInvalidArgument, i, err)
		}

		pairs = append(pairs, p)
	}

	b.Clear()
	b.Update(pairs...)

	return nil
}
