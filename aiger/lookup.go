// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/go-air/aiger/z"

// Tag classifies the variable of a literal.
type Tag int

const (
	TagConst Tag = iota
	TagInput
	TagLatch
	TagAnd
	TagNone // variable without definition
)

func (t *T) entry(m z.Lit) typeEntry {
	v := m.Var()
	if int(v) >= len(t.types) {
		return typeEntry{}
	}
	return t.types[v]
}

// LitTag returns the tag of m's variable.
func (t *T) LitTag(m z.Lit) Tag {
	if m.IsConst() {
		return TagConst
	}
	switch t.entry(m).role {
	case roleInput:
		return TagInput
	case roleLatch:
		return TagLatch
	case roleAnd:
		return TagAnd
	}
	return TagNone
}

// IsInput returns the input symbol of m's variable, or nil if it is not
// an input.  The result points into t.Inputs.
func (t *T) IsInput(m z.Lit) *Symbol {
	te := t.entry(m)
	if m.IsConst() || te.role != roleInput {
		return nil
	}
	return &t.Inputs[te.idx]
}

// IsLatch returns the latch symbol of m's variable, or nil if it is not
// a latch.
func (t *T) IsLatch(m z.Lit) *Symbol {
	te := t.entry(m)
	if m.IsConst() || te.role != roleLatch {
		return nil
	}
	return &t.Latches[te.idx]
}

// IsAnd returns the and gate defining m's variable, or nil.
func (t *T) IsAnd(m z.Lit) *And {
	te := t.entry(m)
	if m.IsConst() || te.role != roleAnd {
		return nil
	}
	return &t.Ands[te.idx]
}

// SymbolName gives the name of the input or latch defining m's variable.
// Other kinds of symbols are not looked up.
func (t *T) SymbolName(m z.Lit) (string, bool) {
	var sym *Symbol
	if sym = t.IsInput(m); sym == nil {
		sym = t.IsLatch(m)
	}
	if sym == nil || sym.Name == "" {
		return "", false
	}
	return sym.Name, true
}

// COI returns one flag per variable 0..t.MaxVar telling whether the
// variable is in the cone of influence of the properties of t.
//
// Every variable is reported as in the cone of influence.
func (t *T) COI() []bool {
	release(t, t.coi)
	n := int(t.MaxVar) + 1
	t.coi = make([]bool, n)
	t.alloc(n)
	for i := range t.coi {
		t.coi[i] = true
	}
	return t.coi
}
