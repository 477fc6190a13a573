package table

import "errors"

var (
	ErrRaggedColumns   = errors.New("table: columns differ in length")
	ErrColumnCount     = errors.New("table: names and columns differ in count")
	ErrDuplicateColumn = errors.New("table: duplicate column")
	ErrNoColumn        = errors.New("table: no such column")
	ErrLength          = errors.New("table: column length does not match the table")
	ErrColumnMismatch  = errors.New("table: tables have different columns")
	ErrUnknownStyle    = errors.New("table: unknown style")
	ErrRecordLength    = errors.New("table: record has more fields than columns")
)
