package ir

import "errors"

var (
	// ErrUnrepresentable reports a Go value with no node representation.
	ErrUnrepresentable = errors.New("unrepresentable value")
)
