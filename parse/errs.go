package parse

import (
	"errors"
	"fmt"

	"github.com/bydysawd/byd-format/byd/token"
)

var (
	ErrParse            = errors.New("parse error")
	ErrMalformedTerm    = fmt.Errorf("%w: malformed term", ErrParse)
	ErrMalformedFormula = fmt.Errorf("%w: malformed formula", ErrParse)
	ErrMissingEquals    = fmt.Errorf("%w: equation needs exactly one '='", ErrParse)
	ErrEmptySide        = fmt.Errorf("%w: empty equation side", ErrParse)
)

// Err attaches a position to a parse failure.
type Err struct {
	Err error
	Pos *token.Pos
}

func (e *Err) Unwrap() error {
	return e.Err
}

func (e *Err) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %s", e.Err, e.Pos)
}

func errAt(err error, pos *token.Pos) error {
	return &Err{Err: err, Pos: pos}
}

// PosOf recovers the input position of a parse or tokenize failure, nil if
// err carries none.
func PosOf(err error) *token.Pos {
	var pe *Err
	if errors.As(err, &pe) {
		return pe.Pos
	}
	var te *token.Err
	if errors.As(err, &te) {
		return te.Pos
	}
	return nil
}
