package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateKey    = errors.New("id already exists")
	ErrConflict        = errors.New("book is already loaned out")
	ErrInvalidField    = errors.New("search field is not allowed")
	ErrMalformedSource = errors.New("catalog source is malformed")
	ErrMalformedInput  = errors.New("catalog row is malformed")
	ErrUnauthorized    = errors.New("invalid credentials")
	ErrForbidden       = errors.New("operation is not allowed for this role")
)
