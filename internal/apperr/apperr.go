// internal/apperr/apperr.go
//
// Single tagged error type shared by every package of the game.
//
// An Error carries a Kind plus optional diagnostic context (file, row, word
// side, offending word). Sentinels such as ErrFormat match any Error of the
// same kind through errors.Is, so callers branch on the kind without type
// switches:
//
//	if errors.Is(err, apperr.ErrFormat) { ... }

package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	KindFormat          Kind = iota + 1 // bad, missing or repeated separator
	KindWordValidation                  // illegal characters, too short word or pair
	KindDuplicateWord                   // both words of a pair are identical
	KindSourceExhausted                 // nothing left to pick from
	KindPrecondition                    // caller passed malformed arguments
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format error"
	case KindWordValidation:
		return "word validation error"
	case KindDuplicateWord:
		return "duplicate word error"
	case KindSourceExhausted:
		return "source exhausted"
	case KindPrecondition:
		return "precondition violation"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is.
var (
	ErrFormat          = &Error{Kind: KindFormat, Row: -1}
	ErrWordValidation  = &Error{Kind: KindWordValidation, Row: -1}
	ErrDuplicateWord   = &Error{Kind: KindDuplicateWord, Row: -1}
	ErrSourceExhausted = &Error{Kind: KindSourceExhausted, Row: -1}
	ErrPrecondition    = &Error{Kind: KindPrecondition, Row: -1}
)

// Error is the tagged error variant.
type Error struct {
	Kind Kind
	Msg  string
	File string // source file name, if known
	Row  int    // 0-based row index, -1 when unknown
	Side string // "first" or "second" for word validation failures
	Word string // offending word, if any
}

// New returns an Error of the given kind without context.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Row: -1}
}

// Newf is New with fmt formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Precondition is shorthand for a KindPrecondition error.
func Precondition(format string, args ...any) *Error {
	return Newf(KindPrecondition, format, args...)
}

// WithRow returns a copy of e carrying the row index.
func (e *Error) WithRow(row int) *Error {
	c := *e
	c.Row = row
	return &c
}

// WithFile returns a copy of e carrying the file name.
func (e *Error) WithFile(file string) *Error {
	c := *e
	c.File = file
	return &c
}

// WithWord returns a copy of e naming the offending side and word.
func (e *Error) WithWord(side, word string) *Error {
	c := *e
	c.Side = side
	c.Word = word
	return &c
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	var where []string
	if e.File != "" {
		where = append(where, e.File)
	}
	if e.Row >= 0 {
		where = append(where, fmt.Sprintf("line %d", e.Row+1))
	}
	if len(where) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(where, ", "))
		b.WriteString(")")
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Side != "" {
		fmt.Fprintf(&b, " [%s word %q]", e.Side, e.Word)
	}
	return b.String()
}

// Is matches any Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the Kind of the first Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
