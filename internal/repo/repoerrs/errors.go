package repoerrs

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrAlreadyExists         = errors.New("already exists")
	ErrInvalidValue          = errors.New("value violates a check constraint")
	ErrUnsupportedGroupField = errors.New("unsupported group field")
)
