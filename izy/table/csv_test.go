package table

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/MRtecno98/afero"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	tbl := sample(t)
	opts := CSVOptions{Sep: '\t'}

	require.NoError(t, tbl.ToCSV(fs, "output.tsv", opts))

	read, err := FromCSV(fs, "output.tsv", opts)
	require.NoError(t, err)
	assert.Equal(t, tbl.String(), read.String())
	assert.Equal(t, []string{"a", "b", "c"}, read.Columns())
	assert.Equal(t, Row{"a": "very-loong-value", "b": "1", "c": nil}, read.Row(3))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := sample(t).Slice(2, 4).WriteCSV(&buf, CSVOptions{})
	require.NoError(t, err)

	expected := "a,b,c\n21638540,0,6\nvery-loong-value,1,\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, len(expected), n)

	buf.Reset()
	_, err = sample(t).Slice(0, 1).WriteCSV(&buf, CSVOptions{NoHeader: true})
	require.NoError(t, err)
	assert.Equal(t, "3,16,0\n", buf.String())
}

func TestAppendToCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	tbl := sample(t)

	require.NoError(t, tbl.Slice(0, 2).ToCSV(fs, "out.csv", CSVOptions{}))
	require.NoError(t, tbl.Slice(2, 4).AppendToCSV(fs, "out.csv", CSVOptions{}))

	read, err := FromCSV(fs, "out.csv", CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, read.Len())
	assert.Equal(t, tbl.String(), read.String())
}

func TestReadCSVOptions(t *testing.T) {
	atoi := func(s string) (any, error) { return strconv.Atoi(s) }

	tbl, err := ReadCSV(strings.NewReader("1;2\n3;\n"), CSVOptions{
		Sep:       ';',
		NoHeader:  true,
		Missing:   -1,
		Transform: atoi,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, tbl.Columns())

	col, err := tbl.Column("1")
	require.NoError(t, err)
	assert.Equal(t, []any{2, -1}, col)
}

func TestReadCSVShortRecord(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Equal(t, Row{"a": "1", "b": nil, "c": nil}, tbl.Row(0))
}

func TestReadCSVErrors(t *testing.T) {
	atoi := func(s string) (any, error) { return strconv.Atoi(s) }

	tbl, err := ReadCSV(strings.NewReader("a,b\n1,2\n1,2,3\nx,4\n5,6\n"), CSVOptions{Transform: atoi})
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, err, ErrRecordLength)

	assert.Equal(t, 2, tbl.Len(), "valid records are kept")

	_, err = ReadCSV(strings.NewReader("a,a\n"), CSVOptions{})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestReadCSVEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	require.NoError(t, err)
	assert.Zero(t, tbl.Len())
	assert.Empty(t, tbl.Columns())
}

func TestFromCSVMissingFile(t *testing.T) {
	_, err := FromCSV(afero.NewMemMapFs(), "nope.csv", CSVOptions{})
	assert.Error(t, err)
}
