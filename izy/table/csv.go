package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MRtecno98/afero"
	"github.com/MRtecno98/izy/izy/util"
	"github.com/hashicorp/go-multierror"
)

type CSVOptions struct {
	// Sep is the field separator, ',' when zero.
	Sep rune
	// NoHeader writes no header line, or reads columns named "0", "1", ...
	NoHeader bool
	// Missing replaces empty fields when reading.
	Missing any
	// Transform converts non-empty fields when reading. Fields are kept as
	// strings when nil.
	Transform func(string) (any, error)
}

func (o CSVOptions) sep() rune {
	if o.Sep == 0 {
		return ','
	}

	return o.Sep
}

// WriteCSV writes the table to w and returns the number of bytes written.
// nil cells are written as empty fields.
func (t *Table) WriteCSV(w io.Writer, opts CSVOptions) (int, error) {
	cw := util.NewCountingWriter(w)

	writer := csv.NewWriter(cw)
	writer.Comma = opts.sep()

	if !opts.NoHeader {
		if err := writer.Write(t.names); err != nil {
			return cw.BytesWritten, err
		}
	}

	record := make([]string, len(t.names))
	for r := 0; r < t.Len(); r++ {
		for i, name := range t.names {
			if v := t.cols[name][r]; v != nil {
				record[i] = fmt.Sprint(v)
			} else {
				record[i] = ""
			}
		}

		if err := writer.Write(record); err != nil {
			return cw.BytesWritten, err
		}
	}

	writer.Flush()
	return cw.BytesWritten, writer.Error()
}

// ReadCSV reads a table from r. Short records are padded with the missing
// value. Records longer than the header and failed transforms are skipped and
// reported together once the whole input has been read, along with the table
// of the records that did decode.
func ReadCSV(r io.Reader, opts CSVOptions) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.sep()
	reader.FieldsPerRecord = -1

	t := New()
	var result *multierror.Error

	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if line == 1 {
			names := record
			if opts.NoHeader {
				names = make([]string, len(record))
				for i := range record {
					names[i] = strconv.Itoa(i)
				}
			}

			for _, name := range names {
				if t.HasColumn(name) {
					return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
				}

				t.SetColumn(name, []any{})
			}

			if !opts.NoHeader {
				continue
			}
		}

		if len(record) > len(t.names) {
			result = multierror.Append(result, fmt.Errorf("record %d: %w: %d > %d",
				line, ErrRecordLength, len(record), len(t.names)))
			continue
		}

		row, err := decodeRecord(t.names, record, opts)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("record %d: %w", line, err))
			continue
		}

		t.Append(row)
	}

	return t, result.ErrorOrNil()
}

func decodeRecord(names, record []string, opts CSVOptions) (Row, error) {
	row := make(Row, len(names))
	for i, name := range names {
		if i >= len(record) || record[i] == "" {
			row[name] = opts.Missing
			continue
		}

		if opts.Transform == nil {
			row[name] = record[i]
			continue
		}

		v, err := opts.Transform(record[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}

		row[name] = v
	}

	return row, nil
}

// ToCSV writes the table to path, replacing its contents.
func (t *Table) ToCSV(fs afero.Fs, path string, opts CSVOptions) error {
	return t.writeFile(fs, path, os.O_TRUNC, opts)
}

// AppendToCSV appends the rows of the table to path without a header.
func (t *Table) AppendToCSV(fs afero.Fs, path string, opts CSVOptions) error {
	opts.NoHeader = true
	return t.writeFile(fs, path, os.O_APPEND, opts)
}

func (t *Table) writeFile(fs afero.Fs, path string, mode int, opts CSVOptions) (err error) {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|mode, 0644)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	_, err = t.WriteCSV(f, opts)
	return err
}

func FromCSV(fs afero.Fs, path string, opts CSVOptions) (*Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return ReadCSV(f, opts)
}
