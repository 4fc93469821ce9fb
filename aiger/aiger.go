// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"fmt"
	"strings"

	"github.com/go-air/aiger/z"
)

// Version is the version of the aiger format implemented.
const Version = "1.9"

// Symbol is an input, latch, output, bad state, constraint, justice or
// fairness entry of a model.
//
// Next and Reset are only used by latches.  Reset is z.LitFalse, z.LitTrue
// or the latch literal itself for an uninitialized latch.  Lits is only used
// by justice properties, which have no Lit.  An empty Name means the symbol
// is unnamed.
type Symbol struct {
	Lit   z.Lit
	Next  z.Lit
	Reset z.Lit
	Lits  []z.Lit
	Name  string
}

// And is an and gate Lhs = Rhs0 & Rhs1.  Lhs is always positive.
type And struct {
	Lhs, Rhs0, Rhs1 z.Lit
}

type role uint8

const (
	roleNone role = iota
	roleInput
	roleLatch
	roleAnd
)

// typeEntry gives the role of a variable and its index in the
// corresponding slice of the model.
type typeEntry struct {
	role role
	idx  int
}

// T is an aiger model.
//
// The exported slices may be read freely but should only be extended with
// the Add methods, which keep the variable index of T up to date.
type T struct {
	MaxVar      z.Var
	Inputs      []Symbol
	Latches     []Symbol
	Outputs     []Symbol
	Bad         []Symbol
	Constraints []Symbol
	Justice     []Symbol
	Fairness    []Symbol
	Ands        []And
	Comments    []string

	types []typeEntry
	coi   []bool
	cfg   Config
	err   error
}

// New creates an empty model.
func New() *T {
	return NewWith(Config{})
}

// NewWith creates an empty model whose memory is accounted through
// cfg.Allocator.
func NewWith(cfg Config) *T {
	return &T{cfg: cfg}
}

// Reset releases everything owned by t, leaving t empty.  The
// configuration of t is kept.
func (t *T) Reset() {
	for _, syms := range t.symbolSlices() {
		t.freeSymbols(*syms)
	}
	release(t, t.Ands)
	for _, c := range t.Comments {
		t.freeStr(c)
	}
	release(t, t.Comments)
	release(t, t.types)
	release(t, t.coi)
	*t = T{cfg: t.cfg}
}

func (t *T) symbolSlices() []*[]Symbol {
	return []*[]Symbol{&t.Inputs, &t.Latches, &t.Outputs, &t.Bad,
		&t.Constraints, &t.Justice, &t.Fairness}
}

func (t *T) freeSymbols(syms []Symbol) {
	for i := range syms {
		t.freeStr(syms[i].Name)
		release(t, syms[i].Lits)
	}
	release(t, syms)
}

// importLit makes sure the type table covers m and raises t.MaxVar if
// needed.  It returns m's variable.
func (t *T) importLit(m z.Lit) z.Var {
	v := m.Var()
	if v > t.MaxVar {
		t.MaxVar = v
	}
	for int(v) >= len(t.types) {
		n := 2 * len(t.types)
		if n == 0 {
			n = 1
		}
		t.types = resize(t, t.types, n)[:n]
	}
	return v
}

func (t *T) mustNotFault() {
	if t.err != nil {
		panic(fmt.Sprintf("aiger: add to faulted model: %s", t.err))
	}
}

func (t *T) mustDefine(m z.Lit, what string) z.Var {
	if m.IsConst() {
		panic(fmt.Sprintf("aiger: constant %s literal %s", what, m))
	}
	if !m.IsPos() {
		panic(fmt.Sprintf("aiger: negated %s literal %s", what, m))
	}
	v := t.importLit(m)
	if r := t.types[v].role; r != roleNone {
		panic(fmt.Sprintf("aiger: %s literal %s already defined as %s", what, m, r))
	}
	return v
}

// AddInput adds an input with literal m and optional name.
func (t *T) AddInput(m z.Lit, name string) {
	t.mustNotFault()
	v := t.mustDefine(m, "input")
	t.types[v] = typeEntry{role: roleInput, idx: len(t.Inputs)}
	t.Inputs = push(t, t.Inputs, Symbol{Lit: m, Name: t.copyStr(name)})
}

// AddLatch adds a latch with literal m, next state literal next and
// optional name.  The latch is initialized to false; use AddReset to
// change that.
func (t *T) AddLatch(m, next z.Lit, name string) {
	t.mustNotFault()
	v := t.mustDefine(m, "latch")
	t.types[v] = typeEntry{role: roleLatch, idx: len(t.Latches)}
	t.importLit(next)
	t.Latches = push(t, t.Latches, Symbol{Lit: m, Next: next, Name: t.copyStr(name)})
}

// AddReset sets the reset value of latch m to reset, which must be
// z.LitFalse, z.LitTrue or m for an uninitialized latch.
func (t *T) AddReset(m, reset z.Lit) {
	t.mustNotFault()
	if reset > z.LitTrue && reset != m {
		panic(fmt.Sprintf("aiger: invalid reset %s for latch %s", reset, m))
	}
	if m.IsConst() || !m.IsPos() {
		panic(fmt.Sprintf("aiger: invalid latch literal %s", m))
	}
	v := t.importLit(m)
	te := t.types[v]
	if te.role != roleLatch {
		panic(fmt.Sprintf("aiger: literal %s is not a latch", m))
	}
	t.Latches[te.idx].Reset = reset
}

func (t *T) addLit(syms []Symbol, m z.Lit, name string) []Symbol {
	t.mustNotFault()
	t.importLit(m)
	return push(t, syms, Symbol{Lit: m, Name: t.copyStr(name)})
}

// AddOutput adds an output m with optional name.
func (t *T) AddOutput(m z.Lit, name string) {
	t.Outputs = t.addLit(t.Outputs, m, name)
}

// AddBad adds a bad state property m with optional name.
func (t *T) AddBad(m z.Lit, name string) {
	t.Bad = t.addLit(t.Bad, m, name)
}

// AddConstraint adds an invariant constraint m with optional name.
func (t *T) AddConstraint(m z.Lit, name string) {
	t.Constraints = t.addLit(t.Constraints, m, name)
}

// AddFairness adds a fairness constraint m with optional name.
func (t *T) AddFairness(m z.Lit, name string) {
	t.Fairness = t.addLit(t.Fairness, m, name)
}

// AddJustice adds a justice property consisting of the literals ms.
// ms is copied.
func (t *T) AddJustice(ms []z.Lit, name string) {
	t.mustNotFault()
	lits := make([]z.Lit, len(ms))
	t.alloc(len(ms) * sizeOf[z.Lit]())
	for i, m := range ms {
		t.importLit(m)
		lits[i] = m
	}
	t.Justice = push(t, t.Justice, Symbol{Lits: lits, Name: t.copyStr(name)})
}

// AddAnd adds the and gate lhs = rhs0 & rhs1.  lhs must be a positive
// literal whose variable has no definition yet.
func (t *T) AddAnd(lhs, rhs0, rhs1 z.Lit) {
	t.mustNotFault()
	v := t.mustDefine(lhs, "and")
	t.types[v] = typeEntry{role: roleAnd, idx: len(t.Ands)}
	t.importLit(rhs0)
	t.importLit(rhs1)
	t.Ands = push(t, t.Ands, And{Lhs: lhs, Rhs0: rhs0, Rhs1: rhs1})
}

// AddComment adds one comment line, which may not contain a new line.
func (t *T) AddComment(c string) {
	t.mustNotFault()
	if strings.ContainsRune(c, '\n') {
		panic("aiger: comment contains a new line")
	}
	t.Comments = push(t, t.Comments, t.copyStr(c))
}

// StripSymbolsAndComments removes all symbol names and comments from t and
// returns how many were removed.
func (t *T) StripSymbolsAndComments() int {
	n := len(t.Comments)
	for _, c := range t.Comments {
		t.freeStr(c)
	}
	release(t, t.Comments)
	t.Comments = nil
	for _, syms := range t.symbolSlices() {
		for i := range *syms {
			sym := &(*syms)[i]
			if sym.Name == "" {
				continue
			}
			t.freeStr(sym.Name)
			sym.Name = ""
			n++
		}
	}
	return n
}

func (r role) String() string {
	switch r {
	case roleInput:
		return "input"
	case roleLatch:
		return "latch"
	case roleAnd:
		return "AND"
	default:
		return "undefined"
	}
}

// NumComments gives the number of comment lines of t.
func (t *T) NumComments() int {
	return len(t.Comments)
}
