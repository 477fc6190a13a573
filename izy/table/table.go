// Package table holds small column-oriented tables of arbitrary cells, with
// text rendering, CSV and SQLite round trips.
package table

import (
	"fmt"
	"iter"
	"sort"

	"golang.org/x/exp/slices"
)

type Row map[string]any

// Table is an ordered set of named columns sharing one length.
type Table struct {
	names []string
	cols  map[string][]any
}

func New() *Table {
	return &Table{cols: make(map[string][]any)}
}

func FromColumns(names []string, cols [][]any) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names, %d columns", ErrColumnCount, len(names), len(cols))
	}

	t := New()
	for i, name := range names {
		if _, ok := t.cols[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}

		if i > 0 && len(cols[i]) != len(cols[0]) {
			lengths := make([]int, len(cols))
			for j, c := range cols {
				lengths[j] = len(c)
			}

			return nil, fmt.Errorf("%w: %v", ErrRaggedColumns, lengths)
		}

		t.names = append(t.names, name)
		t.cols[name] = slices.Clone(cols[i])
	}

	return t, nil
}

// FromRows builds a table whose columns are the keys of rows in first-seen
// order, keys within a row taken alphabetically. Missing cells are nil.
func FromRows(rows []Row) *Table {
	t := New()
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			if _, ok := t.cols[k]; !ok {
				t.names = append(t.names, k)
				t.cols[k] = nil
			}
		}
	}

	for _, row := range rows {
		t.Append(row)
	}

	return t
}

func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}

	return len(t.cols[t.names[0]])
}

func (t *Table) Columns() []string {
	return slices.Clone(t.names)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of name. The slice is shared with the table.
func (t *Table) Column(name string) ([]any, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}

	return col, nil
}

// Row returns row i. It panics when i is out of range, like slice indexing.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.names))
	for _, name := range t.names {
		row[name] = t.cols[name][i]
	}

	return row
}

func (t *Table) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 0; i < t.Len(); i++ {
			if !yield(i, t.Row(i)) {
				return
			}
		}
	}
}

// Slice copies rows i to j. Negative bounds count from the end and both are
// clamped to the table, so an empty range gives an empty table.
func (t *Table) Slice(i, j int) *Table {
	i, j = bound(i, t.Len()), bound(j, t.Len())
	j = max(i, j)

	out := New()
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.cols[name] = slices.Clone(t.cols[name][i:j])
	}

	return out
}

func bound(i, n int) int {
	if i < 0 {
		i += n
	}

	return min(max(i, 0), n)
}

func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([][]any, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}

		cols[i] = col
	}

	return FromColumns(names, cols)
}

// SetColumn replaces or adds a column. Its length must match the table
// unless the table has no columns yet.
func (t *Table) SetColumn(name string, values []any) error {
	if len(t.names) > 0 && len(values) != t.Len() {
		return fmt.Errorf("%w: %d != %d", ErrLength, len(values), t.Len())
	}

	if t.cols == nil {
		t.cols = make(map[string][]any)
	}

	if _, ok := t.cols[name]; !ok {
		t.names = append(t.names, name)
	}

	t.cols[name] = values
	return nil
}

// SetRow overwrites row i. Columns missing from row become nil and keys that
// are not columns are ignored.
func (t *Table) SetRow(i int, row Row) {
	for _, name := range t.names {
		t.cols[name][i] = row[name]
	}
}

func (t *Table) Append(row Row) {
	for _, name := range t.names {
		t.cols[name] = append(t.cols[name], row[name])
	}
}

// Extend appends the rows of other, which must have the same columns.
func (t *Table) Extend(other *Table) error {
	if len(t.names) != len(other.names) {
		return fmt.Errorf("%w: %v and %v", ErrColumnMismatch, t.names, other.names)
	}

	for _, name := range t.names {
		if !other.HasColumn(name) {
			return fmt.Errorf("%w: %v and %v", ErrColumnMismatch, t.names, other.names)
		}
	}

	for _, name := range t.names {
		t.cols[name] = append(t.cols[name], other.cols[name]...)
	}

	return nil
}

// Concat returns a new table with the rows of t followed by those of other.
func (t *Table) Concat(other *Table) (*Table, error) {
	out := t.Clone()
	if err := out.Extend(other); err != nil {
		return nil, err
	}

	return out, nil
}

// Clone copies the columns. Cells are copied shallowly.
func (t *Table) Clone() *Table {
	return t.Slice(0, t.Len())
}
