package ir

import "errors"

var (
	ErrBadElement = errors.New("element must be a single upper-case letter")
	ErrBadCount   = errors.New("count must be positive")
)
