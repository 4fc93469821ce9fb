// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/go-air/aiger/z"

// Check validates t.  It verifies, in this order and stopping at the first
// problem, that the next state literals of all latches are defined, that
// all outputs, bad states, constraints, justice and fairness literals are
// defined, that all and gate inputs are defined and that the and gates do
// not form a combinational loop.
//
// A literal is defined if it is constant or its variable is an input, a
// latch or an and gate.  The error found, if any, is recorded as the
// error of t and returned by all later calls.
func (t *T) Check() error {
	if t.err != nil {
		return t.err
	}
	checks := [...]func() *Error{
		t.checkNexts,
		t.checkProperties,
		t.checkAnds,
		t.checkCycles,
	}
	for _, check := range checks {
		if e := check(); e != nil {
			return t.fail(e)
		}
	}
	return nil
}

func (t *T) defined(m z.Lit) bool {
	v := m.Var()
	if v == 0 {
		return true
	}
	if int(v) >= len(t.types) {
		return false
	}
	return t.types[v].role != roleNone
}

func (t *T) checkNexts() *Error {
	for i := range t.Latches {
		l := &t.Latches[i]
		if !t.defined(l.Next) {
			return newError(ErrUndefinedLit,
				"next state function %d of latch %d undefined", l.Next, l.Lit)
		}
	}
	return nil
}

func (t *T) checkProperties() *Error {
	sets := []struct {
		what string
		syms []Symbol
	}{
		{"output", t.Outputs},
		{"bad", t.Bad},
		{"constraint", t.Constraints},
		{"justice", t.Justice},
		{"fairness", t.Fairness},
	}
	for _, set := range sets {
		for i := range set.syms {
			sym := &set.syms[i]
			ms := sym.Lits
			if ms == nil {
				ms = []z.Lit{sym.Lit}
			}
			for _, m := range ms {
				if !t.defined(m) {
					return newError(ErrUndefinedLit, "%s %d undefined", set.what, m.Strip())
				}
			}
		}
	}
	return nil
}

func (t *T) checkAnds() *Error {
	for i := range t.Ands {
		a := &t.Ands[i]
		for _, m := range [...]z.Lit{a.Rhs0, a.Rhs1} {
			if !t.defined(m) {
				return newError(ErrUndefinedLit, "literal %d in AND %d undefined", m, a.Lhs)
			}
		}
	}
	return nil
}

func (t *T) checkCycles() *Error {
	d := newDfs(t)
	defer d.release()
	if v := d.cycle(); v != 0 {
		return newError(ErrCombLoop, "cyclic definition for AND gate %d", v.Pos())
	}
	return nil
}
