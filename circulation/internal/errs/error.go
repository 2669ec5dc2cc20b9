package errs

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrInvalid    = errors.New("invalid request")
	ErrIDMismatch = errors.New("id in path and body mismatch")
	ErrConflict   = errors.New("book is already borrowed")
	ErrDecode     = errors.New("row decode failed")
)
