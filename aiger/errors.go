// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds.  Every *Error unwraps to exactly one of these.
var (
	ErrPrematureEOF    = errors.New("premature EOF")
	ErrBadHeader       = errors.New("bad header")
	ErrExpectedLit     = errors.New("expected literal")
	ErrExpectedSep     = errors.New("expected separator")
	ErrInvalidLit      = errors.New("invalid literal")
	ErrMaxVar          = errors.New("invalid maximal variable index")
	ErrAlreadyDefined  = errors.New("literal already defined")
	ErrInvalidReset    = errors.New("invalid latch reset value")
	ErrBadDelta        = errors.New("bad delta encoding")
	ErrSymbolTable     = errors.New("corrupted symbol table")
	ErrSymbolIndex     = errors.New("symbol index out of bounds")
	ErrMultipleSymbols = errors.New("multiple symbols")
	ErrMissingNewline  = errors.New("new line missing")
	ErrUndefinedLit    = errors.New("literal not defined")
	ErrCombLoop        = errors.New("combinational logic has a loop")
	ErrModeMismatch    = errors.New("binary mismatch")
	ErrIO              = errors.New("io error")
)

// Error is a diagnostic about malformed input or an inconsistent model.
//
// Line is set for errors found while scanning text, Char for errors in the
// binary and gate section.  Both are zero for errors found by Check on a
// model built in memory.
type Error struct {
	Kind error
	Line int
	Char int
	Msg  string
	Err  error // underlying io error, if any
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	if e.Char > 0 {
		return fmt.Sprintf("character %d: %s", e.Char, e.Msg)
	}
	return e.Msg
}

// Unwrap gives the kind of e and the underlying io error, so that
// errors.Is works with both.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func lineError(line int, kind error, format string, args ...interface{}) *Error {
	e := newError(kind, format, args...)
	e.Line = line
	return e
}

func charError(char int, kind error, format string, args ...interface{}) *Error {
	e := newError(kind, format, args...)
	e.Char = char
	return e
}

// fail records e as the error of t unless there already is one, and
// returns the recorded error.
func (t *T) fail(e *Error) error {
	if t.err == nil {
		t.err = e
	}
	return t.err
}

// Err returns the first error recorded on t by Read or Check, or nil.
func (t *T) Err() error {
	return t.err
}
