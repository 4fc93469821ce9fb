// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"io"
	"strconv"

	"github.com/go-air/aiger/z"
	"github.com/pkg/errors"
)

// Mode selects the output format of Write.
type Mode uint8

const (
	// Binary is the compact "aig" format.
	Binary Mode = 0
	// Ascii is the "aag" format.
	Ascii Mode = 1
	// Stripped omits the symbol table and comments.
	Stripped Mode = 2
)

// writer wraps a bufio.Writer.  Write errors are sticky in bufio, so they
// are only looked at when flushing.
type writer struct {
	w   *bufio.Writer
	buf []byte
}

func (w *writer) str(s string) {
	w.w.WriteString(s)
}

func (w *writer) ch(c byte) {
	w.w.WriteByte(c)
}

func (w *writer) u(u uint32) {
	w.buf = strconv.AppendUint(w.buf[:0], uint64(u), 10)
	w.w.Write(w.buf)
}

func (w *writer) lit(m z.Lit) {
	w.u(uint32(m))
}

// line writes ms separated by spaces and terminated by a new line.
func (w *writer) line(ms ...z.Lit) {
	for i, m := range ms {
		if i > 0 {
			w.ch(' ')
		}
		w.lit(m)
	}
	w.ch('\n')
}

func (w *writer) delta(d uint32) {
	w.buf = AppendDelta(w.buf[:0], d)
	w.w.Write(w.buf)
}

// Write writes t to w in the given mode.
//
// t must pass Check.  Writing in binary mode first puts t in canonical
// form with Reencode, so the numbering of t may change.
func (t *T) Write(w io.Writer, mode Mode) error {
	if err := t.Check(); err != nil {
		return err
	}
	aw := &writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 16)}
	if mode&Ascii != 0 {
		t.writeAscii(aw)
	} else {
		if err := t.Reencode(); err != nil {
			return err
		}
		t.writeBinary(aw)
	}
	if mode&Stripped == 0 {
		t.writeSymbols(aw)
		t.writeComments(aw)
	}
	return errors.Wrap(aw.w.Flush(), "aiger: write")
}

// WriteAscii writes t to w in ascii format with symbols and comments.
func (t *T) WriteAscii(w io.Writer) error {
	return t.Write(w, Ascii)
}

// WriteBinary writes t to w in binary format with symbols and comments,
// reencoding t first.
func (t *T) WriteBinary(w io.Writer) error {
	return t.Write(w, Binary)
}

// writeBody writes everything between the header and the and gates.
// In compact (binary) mode inputs are implicit and latches are written
// without their literal.
func (t *T) writeBody(w *writer, compact bool) {
	if !compact {
		for i := range t.Inputs {
			w.line(t.Inputs[i].Lit)
		}
	}
	for i := range t.Latches {
		l := &t.Latches[i]
		if !compact {
			w.lit(l.Lit)
			w.ch(' ')
		}
		w.lit(l.Next)
		if l.Reset != z.LitFalse {
			w.ch(' ')
			w.lit(l.Reset)
		}
		w.ch('\n')
	}
	for _, syms := range [...][]Symbol{t.Outputs, t.Bad, t.Constraints} {
		for i := range syms {
			w.line(syms[i].Lit)
		}
	}
	for i := range t.Justice {
		w.u(uint32(len(t.Justice[i].Lits)))
		w.ch('\n')
	}
	for i := range t.Justice {
		for _, m := range t.Justice[i].Lits {
			w.line(m)
		}
	}
	for i := range t.Fairness {
		w.line(t.Fairness[i].Lit)
	}
}

func (t *T) writeAscii(w *writer) {
	makeHeader(t, false).write(w)
	t.writeBody(w, false)
	for i := range t.Ands {
		a := &t.Ands[i]
		w.line(a.Lhs, a.Rhs0, a.Rhs1)
	}
}

func (t *T) writeBinary(w *writer) {
	makeHeader(t, true).write(w)
	t.writeBody(w, true)
	lhs := t.maxInputOrLatch() + 2
	for i := range t.Ands {
		a := &t.Ands[i]
		if a.Lhs != lhs || a.Lhs <= a.Rhs0 || a.Rhs0 < a.Rhs1 {
			panic("aiger: binary write of model not in canonical form")
		}
		w.delta(uint32(lhs - a.Rhs0))
		w.delta(uint32(a.Rhs0 - a.Rhs1))
		lhs += 2
	}
}

var symbolTags = [...]byte{'i', 'l', 'o', 'b', 'c', 'j', 'f'}

// tagged gives the symbol slices of t in symbol table order.
func (t *T) tagged() [7][]Symbol {
	return [7][]Symbol{t.Inputs, t.Latches, t.Outputs, t.Bad,
		t.Constraints, t.Justice, t.Fairness}
}

func (t *T) hasSymbols() bool {
	for _, syms := range t.tagged() {
		for i := range syms {
			if syms[i].Name != "" {
				return true
			}
		}
	}
	return false
}

// write the symbol table
func (t *T) writeSymbols(w *writer) {
	if !t.hasSymbols() {
		return
	}
	for k, syms := range t.tagged() {
		for i := range syms {
			if syms[i].Name == "" {
				continue
			}
			w.ch(symbolTags[k])
			w.u(uint32(i))
			w.ch(' ')
			w.str(syms[i].Name)
			w.ch('\n')
		}
	}
}

func (t *T) writeComments(w *writer) {
	if len(t.Comments) == 0 {
		return
	}
	w.str("c\n")
	for _, c := range t.Comments {
		w.str(c)
		w.ch('\n')
	}
}
