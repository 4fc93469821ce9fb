// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"io"
	"math"

	"github.com/go-air/aiger/z"
	"github.com/pkg/errors"
)

const eof = -1

// scanner gives one character of lookahead over a byte stream and keeps
// track of positions for diagnostics.
type scanner struct {
	r       io.ByteReader
	ch      int // current character or eof
	line    int // line of ch
	tokLine int // line at which the current token started
	litLine int // line of the last literal read
	char    int // number of characters read
	inBody  bool
	aag     bool  // nothing but digits and white space since the header
	err     error // first read error other than io.EOF
}

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func (s *scanner) next() int {
	res := eof
	b, err := s.r.ReadByte()
	if err == nil {
		res = int(b)
	} else if err != io.EOF && s.err == nil {
		s.err = err
	}
	if isSpace(s.ch) && !isSpace(res) {
		s.tokLine = s.line
	}
	s.ch = res
	if s.inBody && s.aag && !isSpace(res) && !isDigit(res) && res != eof {
		s.aag = false
	}
	if res == '\n' {
		s.line++
	}
	if res != eof {
		s.char++
	}
	return res
}

// ReadByte consumes the current character, so that deltas can be decoded
// directly off the scanner.
func (s *scanner) ReadByte() (byte, error) {
	if s.ch == eof {
		if s.err != nil {
			return 0, s.err
		}
		return 0, io.EOF
	}
	b := byte(s.ch)
	s.next()
	return b, nil
}

type follow uint8

const (
	followSpace follow = iota
	followNewline
	followEither
)

// lit reads an unsigned number which must be followed by the separator
// described by f.  The separator is consumed and returned.
func (s *scanner) lit(f follow) (uint32, byte, *Error) {
	if !isDigit(s.ch) {
		kind := ErrExpectedLit
		if s.ch == eof {
			kind = ErrPrematureEOF
		}
		return 0, 0, lineError(s.line, kind, "expected literal")
	}
	n := uint64(s.ch - '0')
	for isDigit(s.next()) {
		if n <= math.MaxUint32 {
			n = 10*n + uint64(s.ch-'0')
		}
	}
	if n > math.MaxUint32 {
		return 0, 0, lineError(s.tokLine, ErrInvalidLit, "number exceeds 32 bits")
	}
	res := uint32(n)
	switch f {
	case followSpace:
		if s.ch != ' ' {
			return 0, 0, lineError(s.tokLine, ErrExpectedSep,
				"expected space after literal %d", res)
		}
	case followNewline:
		if s.ch != '\n' {
			return 0, 0, lineError(s.tokLine, ErrExpectedSep,
				"expected new line after literal %d", res)
		}
	default:
		if s.ch != ' ' && s.ch != '\n' {
			return 0, 0, lineError(s.tokLine, ErrExpectedSep,
				"expected space or new line after literal %d", res)
		}
	}
	sep := byte(s.ch)
	s.litLine = s.tokLine
	s.next()
	return res, sep, nil
}

type readMode uint8

const (
	readAny readMode = iota
	readAscii
	readBinary
)

// preallocation is bounded so that a lying header can not make us
// allocate much more than the input justifies.
const maxPrealloc = 1 << 16

func prealloc(n uint32) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}

type reader struct {
	t    *T
	s    scanner
	h    header
	mode readMode
}

// Read reads a model in ascii or binary format from r.  The format is
// taken from the header.  The model is checked after reading, so a nil
// error means the result passes Check.
func Read(r io.Reader) (*T, error) {
	return readNew(r, readAny)
}

// ReadAscii is like Read but fails with ErrModeMismatch unless r
// holds an "aag" model.
func ReadAscii(r io.Reader) (*T, error) {
	return readNew(r, readAscii)
}

// ReadBinary is like Read but fails with ErrModeMismatch unless r
// holds an "aig" model.
func ReadBinary(r io.Reader) (*T, error) {
	return readNew(r, readBinary)
}

func readNew(r io.Reader, mode readMode) (*T, error) {
	t := New()
	if err := t.read(r, mode); err != nil {
		return nil, err
	}
	return t, nil
}

// Read replaces the contents of t with the model read from r, see the
// function Read.  On failure the error is also recorded in t.
func (t *T) Read(r io.Reader) error {
	return t.read(r, readAny)
}

func (t *T) read(r io.Reader, mode readMode) error {
	t.Reset()
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	rd := &reader{t: t, mode: mode}
	rd.s = scanner{r: br, ch: ' ', line: 1}
	e := rd.run()
	if rd.s.err != nil {
		e = &Error{
			Kind: ErrIO,
			Line: rd.s.line,
			Msg:  "read failed: " + rd.s.err.Error(),
			Err:  errors.Wrap(rd.s.err, "aiger: read")}
	}
	if e != nil {
		return t.fail(e)
	}
	return t.Check()
}

func (rd *reader) run() *Error {
	steps := [...]func() *Error{
		rd.header,
		rd.inputs,
		rd.latches,
		rd.properties,
		rd.justice,
		rd.fairness,
		rd.ands,
		rd.symbols,
	}
	for _, step := range steps {
		if e := step(); e != nil {
			return e
		}
	}
	return nil
}

func (rd *reader) header() *Error {
	s := &rd.s
	if s.next() != 'a' {
		return lineError(s.line, ErrBadHeader, "expected 'a' as first character")
	}
	if s.next() != 'i' && s.ch != 'a' {
		return lineError(s.line, ErrBadHeader, "expected 'i' or 'a' after 'a'")
	}
	h := &rd.h
	h.binary = s.ch == 'i'
	switch {
	case rd.mode == readAscii && h.binary:
		return lineError(s.line, ErrModeMismatch, "expected 'aag' header")
	case rd.mode == readBinary && !h.binary:
		return lineError(s.line, ErrModeMismatch, "expected 'aig' header")
	}
	if s.next() != 'g' {
		return lineError(s.line, ErrBadHeader, "expected 'g' after 'a[ai]'")
	}
	if s.next() != ' ' {
		return lineError(s.line, ErrBadHeader, "expected ' ' after 'a[ai]g'")
	}
	s.next()

	var e *Error
	for _, p := range [...]*uint32{&h.max, &h.in, &h.latch, &h.out} {
		if *p, _, e = s.lit(followSpace); e != nil {
			return e
		}
	}
	sep := byte(' ')
	for _, p := range [...]*uint32{&h.and, &h.bad, &h.constraint, &h.justice} {
		if *p, sep, e = s.lit(followEither); e != nil {
			return e
		}
		if sep != ' ' {
			break
		}
	}
	if sep == ' ' {
		if h.fair, _, e = s.lit(followNewline); e != nil {
			return e
		}
	}

	if h.binary && uint64(h.in)+uint64(h.latch)+uint64(h.and) != uint64(h.max) {
		return lineError(s.line, ErrMaxVar, "invalid maximal variable index")
	}
	if h.max > math.MaxUint32>>1 {
		return lineError(s.line, ErrMaxVar, "maximal variable index %d too large", h.max)
	}
	t := rd.t
	t.importLit(z.Var(h.max).Pos())
	t.Inputs = fit(t, t.Inputs, prealloc(h.in))
	t.Latches = fit(t, t.Latches, prealloc(h.latch))
	t.Outputs = fit(t, t.Outputs, prealloc(h.out))
	t.Ands = fit(t, t.Ands, prealloc(h.and))
	t.Bad = fit(t, t.Bad, prealloc(h.bad))
	t.Constraints = fit(t, t.Constraints, prealloc(h.constraint))
	t.Justice = fit(t, t.Justice, prealloc(h.justice))
	t.Fairness = fit(t, t.Fairness, prealloc(h.fair))
	return nil
}

// valid tells whether m's variable is within the header's bound.
func (rd *reader) valid(m uint32) bool {
	return m>>1 <= rd.h.max
}

func (rd *reader) invalid(m uint32, what string) *Error {
	return lineError(rd.s.litLine, ErrInvalidLit, "literal %d is not a valid %s", m, what)
}

// definable checks that m can be defined as an input, latch or and gate.
func (rd *reader) definable(m uint32, what string) *Error {
	if m < 2 || m&1 != 0 || !rd.valid(m) {
		return rd.invalid(m, what)
	}
	if r := rd.t.types[m>>1].role; r != roleNone {
		return lineError(rd.s.litLine, ErrAlreadyDefined,
			"literal %d already defined as %s", m, r)
	}
	return nil
}

func (rd *reader) inputs() *Error {
	for i := uint32(0); i < rd.h.in; i++ {
		m := 2 * (i + 1)
		if !rd.h.binary {
			var e *Error
			if m, _, e = rd.s.lit(followNewline); e != nil {
				return e
			}
			if e = rd.definable(m, "input"); e != nil {
				return e
			}
		}
		rd.t.AddInput(z.Lit(m), "")
	}
	return nil
}

func (rd *reader) latches() *Error {
	s := &rd.s
	var e *Error
	for i := uint32(0); i < rd.h.latch; i++ {
		m := 2 * (i + rd.h.in + 1)
		if !rd.h.binary {
			if m, _, e = s.lit(followSpace); e != nil {
				return e
			}
			if e = rd.definable(m, "latch"); e != nil {
				return e
			}
		}
		next, sep, e := s.lit(followEither)
		if e != nil {
			return e
		}
		if !rd.valid(next) {
			return rd.invalid(next, "literal")
		}
		rd.t.AddLatch(z.Lit(m), z.Lit(next), "")
		if sep != ' ' {
			continue
		}
		reset, _, e := s.lit(followNewline)
		if e != nil {
			return e
		}
		if reset > 1 && reset != m {
			return lineError(s.litLine, ErrInvalidReset,
				"invalid reset literal %d of latch %d", reset, m)
		}
		rd.t.AddReset(z.Lit(m), z.Lit(reset))
	}
	return nil
}

// properties reads outputs, bad states and constraints.
func (rd *reader) properties() *Error {
	t := rd.t
	sets := [...]struct {
		n    uint32
		what string
		add  func(z.Lit, string)
	}{
		{rd.h.out, "output", t.AddOutput},
		{rd.h.bad, "bad", t.AddBad},
		{rd.h.constraint, "constraint", t.AddConstraint},
	}
	for _, set := range sets {
		for i := uint32(0); i < set.n; i++ {
			m, _, e := rd.s.lit(followNewline)
			if e != nil {
				return e
			}
			if !rd.valid(m) {
				return rd.invalid(m, set.what)
			}
			set.add(z.Lit(m), "")
		}
	}
	return nil
}

func (rd *reader) justice() *Error {
	if rd.h.justice == 0 {
		return nil
	}
	t := rd.t
	sizes := make([]uint32, 0, prealloc(rd.h.justice))
	for i := uint32(0); i < rd.h.justice; i++ {
		n, _, e := rd.s.lit(followNewline)
		if e != nil {
			return e
		}
		sizes = append(sizes, n)
	}
	var ms []z.Lit
	for _, n := range sizes {
		ms = ms[:0]
		for j := uint32(0); j < n; j++ {
			m, _, e := rd.s.lit(followNewline)
			if e != nil {
				return e
			}
			if !rd.valid(m) {
				return rd.invalid(m, "justice literal")
			}
			ms = append(ms, z.Lit(m))
		}
		t.AddJustice(ms, "")
	}
	return nil
}

func (rd *reader) fairness() *Error {
	for i := uint32(0); i < rd.h.fair; i++ {
		m, _, e := rd.s.lit(followNewline)
		if e != nil {
			return e
		}
		if !rd.valid(m) {
			return rd.invalid(m, "fairness")
		}
		rd.t.AddFairness(z.Lit(m), "")
	}
	return nil
}

func (rd *reader) ands() *Error {
	rd.s.inBody = true
	rd.s.aag = true
	if rd.h.binary {
		return rd.binaryAnds()
	}
	return rd.asciiAnds()
}

func (rd *reader) asciiAnds() *Error {
	s := &rd.s
	for i := uint32(0); i < rd.h.and; i++ {
		lhs, _, e := s.lit(followSpace)
		if e != nil {
			return e
		}
		if e = rd.definable(lhs, "LHS of AND"); e != nil {
			return e
		}
		rhs0, _, e := s.lit(followSpace)
		if e != nil {
			return e
		}
		if !rd.valid(rhs0) {
			return rd.invalid(rhs0, "literal")
		}
		rhs1, _, e := s.lit(followNewline)
		if e != nil {
			return e
		}
		if !rd.valid(rhs1) {
			return rd.invalid(rhs1, "literal")
		}
		rd.t.AddAnd(z.Lit(lhs), z.Lit(rhs0), z.Lit(rhs1))
	}
	return nil
}

// delta reads one delta which may be at most max.
func (rd *reader) delta(max uint32) (uint32, *Error) {
	s := &rd.s
	start := s.char
	d, err := ReadDelta(s)
	switch {
	case err == ErrPrematureEOF:
		return 0, charError(s.char, ErrPrematureEOF, "unexpected end of file")
	case err == ErrBadDelta:
		return 0, charError(start, ErrBadDelta, "invalid code")
	case err != nil:
		return 0, &Error{Kind: ErrIO, Char: start, Msg: err.Error(), Err: err}
	case d > max:
		return 0, charError(start, ErrBadDelta, "invalid delta")
	}
	return d, nil
}

func (rd *reader) binaryAnds() *Error {
	t := rd.t
	lhs := t.maxInputOrLatch()
	for i := uint32(0); i < rd.h.and; i++ {
		lhs += 2
		d0, e := rd.delta(uint32(lhs))
		if e != nil {
			return e
		}
		rhs0 := lhs - z.Lit(d0)
		d1, e := rd.delta(uint32(rhs0))
		if e != nil {
			return e
		}
		t.AddAnd(lhs, rhs0, rhs0-z.Lit(d1))
	}
	return nil
}

// symbols reads the symbol table and the comments.
func (rd *reader) symbols() *Error {
	s := &rd.s
	t := rd.t
	var buf []byte
	for s.ch != eof {
		tag := tagIndex(s.ch)
		if tag < 0 {
			if s.aag {
				return lineError(s.line, ErrSymbolTable,
					"corrupted symbol table ('aig' instead of 'aag' header?)")
			}
			return lineError(s.line, ErrSymbolTable, "expected '[cilobcjf]' or EOF")
		}
		s.next()
		if symbolTags[tag] == 'c' && s.ch == '\n' {
			return rd.comments()
		}
		what := symbolKinds[tag]
		syms := t.tagged()[tag]
		pos, _, e := s.lit(followSpace)
		if e != nil {
			return e
		}
		if int64(pos) >= int64(len(syms)) {
			return lineError(s.litLine, ErrSymbolIndex,
				"%s symbol table entry position %d too large", what, pos)
		}
		sym := &syms[pos]
		if sym.Name != "" {
			return lineError(s.litLine, ErrMultipleSymbols,
				"%s %d has multiple symbols", what, sym.Lit)
		}
		buf = buf[:0]
		for s.ch != '\n' && s.ch != eof {
			buf = append(buf, byte(s.ch))
			s.next()
		}
		if s.ch == eof {
			return lineError(s.line, ErrMissingNewline, "new line missing")
		}
		s.next()
		sym.Name = t.copyStr(string(buf))
	}
	return nil
}

var symbolKinds = [...]string{"input", "latch", "output", "bad",
	"constraint", "justice", "fairness"}

func tagIndex(c int) int {
	for i, tag := range symbolTags {
		if int(tag) == c {
			return i
		}
	}
	return -1
}

// comments reads comment lines after the "c" marker line.
func (rd *reader) comments() *Error {
	s := &rd.s
	s.next()
	var buf []byte
	for s.ch != eof {
		buf = buf[:0]
		for s.ch != '\n' {
			buf = append(buf, byte(s.ch))
			s.next()
			if s.ch == eof {
				return lineError(s.line, ErrMissingNewline, "new line after comment missing")
			}
		}
		s.next()
		rd.t.AddComment(string(buf))
	}
	return nil
}
