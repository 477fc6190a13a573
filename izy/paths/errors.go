package paths

import "errors"

var (
	ErrNotExist   = errors.New("paths: file or directory does not exist")
	ErrNoName     = errors.New("paths: path has an empty name")
	ErrNotEmpty   = errors.New("paths: directory not empty")
	ErrChecksum   = errors.New("paths: checksum mismatch")
	ErrHTTPStatus = errors.New("paths: unexpected HTTP status")
)
