package opt

import "errors"

var (
	// ErrAbsent reports an attempt to unwrap an absent option.
	ErrAbsent = errors.New("cannot unwrap absent option")

	// ErrTypeMismatch reports a held value that does not convert to the
	// requested type.
	ErrTypeMismatch = errors.New("type mismatch")
)
