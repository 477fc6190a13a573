package bidict

import "errors"

var (
	// ErrKeyNotFound is returned by lookups and removals of an absent key or value.
	ErrKeyNotFound = errors.New("bidict: key not found")
	// ErrInvalidArgument is returned when construction input is malformed.
	// It is always reported before the map is modified.
	ErrInvalidArgument = errors.New("bidict: invalid argument")
)
