package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadRune = errors.New("character outside the notation alphabet")
)

// Err attaches a position to a tokenize failure.
type Err struct {
	Err error
	Pos *Pos
}

func NewErr(err error, pos *Pos) *Err {
	return &Err{Err: err, Pos: pos}
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s %s", e.Err, e.Pos)
}

func BadRuneErr(r rune, pos *Pos) error {
	return NewErr(fmt.Errorf("%w: %q", ErrBadRune, r), pos)
}
