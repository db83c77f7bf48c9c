package fnlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnresolvedName   = errors.New("unresolved name")
	ErrNotCallable      = errors.New("not callable")
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrMalformedBinding = errors.New("malformed binding")
	ErrDepthExceeded    = errors.New("call depth exceeded")
	ErrNoPlotter        = errors.New("no plotter")
	ErrSyntax           = errors.New("syntax error")
)

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
