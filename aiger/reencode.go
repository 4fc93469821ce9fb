// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"sort"

	"github.com/go-air/aiger/z"
)

func (t *T) maxInputOrLatch() z.Lit {
	res := z.LitFalse
	for i := range t.Inputs {
		if m := t.Inputs[i].Lit; m > res {
			res = m
		}
	}
	for i := range t.Latches {
		if m := t.Latches[i].Lit; m > res {
			res = m
		}
	}
	return res
}

// IsReencoded tells whether t is in the canonical form required by the
// binary format: inputs are 2, 4, ..., latches follow in order, and gates
// follow with strictly increasing left hand sides, each gate g satisfying
// g.Lhs > g.Rhs0 >= g.Rhs1, and t.MaxVar is the last variable used.
//
// IsReencoded does not modify t.
func (t *T) IsReencoded() bool {
	max := z.LitFalse
	for i := range t.Inputs {
		max += 2
		if t.Inputs[i].Lit != max {
			return false
		}
	}
	for i := range t.Latches {
		max += 2
		if t.Latches[i].Lit != max {
			return false
		}
	}
	lhs := t.maxInputOrLatch() + 2
	for i := range t.Ands {
		a := &t.Ands[i]
		if a.Lhs <= max || a.Lhs != lhs {
			return false
		}
		if a.Lhs <= a.Rhs0 || a.Rhs0 < a.Rhs1 {
			return false
		}
		lhs += 2
	}
	return int(t.MaxVar) == len(t.Inputs)+len(t.Latches)+len(t.Ands)
}

// recoder holds the state of one Reencode call.
type recoder struct {
	t       *T
	code    []z.Lit // old literal to new literal, 0 if not yet assigned
	next    z.Lit   // next unused new literal
	onstack []bool
	stack   []visit
}

func (r *recoder) release() {
	release(r.t, r.code)
	release(r.t, r.onstack)
	release(r.t, r.stack)
}

func (r *recoder) newCode(v z.Var) {
	m := v.Pos()
	if r.code[m] != 0 {
		panic("aiger: variable recoded twice")
	}
	r.code[m] = r.next
	r.code[m.Not()] = r.next.Not()
	r.next += 2
}

func (r *recoder) push(v z.Var, leave bool) {
	r.stack = push(r.t, r.stack, visit{v: v, leave: leave})
}

// lit gives the new literal for m, numbering the and gates m depends on
// in post order when m is an and gate not yet numbered.
func (r *recoder) lit(m z.Lit) z.Lit {
	if m.IsConst() {
		return m
	}
	if c := r.code[m]; c != 0 {
		return c
	}
	t := r.t
	if t.types[m.Var()].role != roleAnd {
		panic("aiger: reencode reached an undefined literal")
	}
	r.push(m.Var(), false)
	for len(r.stack) > 0 {
		n := len(r.stack) - 1
		w := r.stack[n]
		r.stack = r.stack[:n]
		if w.leave {
			r.onstack[w.v] = false
			r.newCode(w.v)
			continue
		}
		if r.code[w.v.Pos()] != 0 || r.onstack[w.v] {
			continue
		}
		r.onstack[w.v] = true
		r.push(w.v, true)
		a := &t.Ands[t.types[w.v].idx]
		c0, c1 := a.Rhs0.Var(), a.Rhs1.Var()
		if c0 < c1 {
			c0, c1 = c1, c0
		}
		// the smaller child is on top and numbered first
		for _, c := range [...]z.Var{c0, c1} {
			if c != 0 && t.types[c].role == roleAnd && !r.onstack[c] {
				r.push(c, false)
			}
		}
	}
	return r.code[m]
}

// Reencode puts t in the canonical form described at IsReencoded.
//
// Inputs and latches are renumbered in order.  And gates are renumbered in
// depth first post order from the latch next state and reset literals,
// outputs, bad states, constraints, justice and fairness literals, in this
// order.  Gates not reachable from any of these are removed.  Reencode
// does nothing if t is already canonical.
//
// Reencode returns the error of Check if t is not valid.
func (t *T) Reencode() error {
	if err := t.Check(); err != nil {
		return err
	}
	if t.IsReencoded() {
		return nil
	}
	nv := int(t.MaxVar) + 1
	r := &recoder{t: t, next: 2}
	r.code = fit(t, r.code, 2*nv)[:2*nv]
	r.onstack = fit(t, r.onstack, nv)[:nv]
	defer r.release()
	r.code[z.LitTrue] = z.LitTrue

	for i := range t.Inputs {
		r.newCode(t.Inputs[i].Lit.Var())
	}
	for i := range t.Latches {
		r.newCode(t.Latches[i].Lit.Var())
	}
	for i := range t.Latches {
		l := &t.Latches[i]
		l.Next = r.lit(l.Next)
		l.Reset = r.lit(l.Reset)
	}
	for _, syms := range [...][]Symbol{t.Outputs, t.Bad, t.Constraints} {
		for i := range syms {
			syms[i].Lit = r.lit(syms[i].Lit)
		}
	}
	for i := range t.Justice {
		ms := t.Justice[i].Lits
		for j := range ms {
			ms[j] = r.lit(ms[j])
		}
	}
	for i := range t.Fairness {
		t.Fairness[i].Lit = r.lit(t.Fairness[i].Lit)
	}

	j := 0
	for i := range t.Ands {
		a := t.Ands[i]
		lhs := r.code[a.Lhs]
		if lhs == 0 {
			continue
		}
		rhs0, rhs1 := r.code[a.Rhs0], r.code[a.Rhs1]
		if rhs0 < rhs1 {
			rhs0, rhs1 = rhs1, rhs0
		}
		if lhs <= rhs0 {
			panic("aiger: reencoded gate not above its inputs")
		}
		t.Ands[j] = And{Lhs: lhs, Rhs0: rhs0, Rhs1: rhs1}
		j++
	}
	t.Ands = t.Ands[:j]
	sort.Slice(t.Ands, func(i, j int) bool {
		return t.Ands[i].Lhs < t.Ands[j].Lhs
	})
	t.MaxVar = (r.next - 1).Var()

	for i := range t.types {
		t.types[i] = typeEntry{}
	}
	for i := range t.Ands {
		t.types[t.Ands[i].Lhs.Var()] = typeEntry{role: roleAnd, idx: i}
	}
	for i := range t.Inputs {
		in := &t.Inputs[i]
		in.Lit = r.code[in.Lit]
		t.types[in.Lit.Var()] = typeEntry{role: roleInput, idx: i}
	}
	for i := range t.Latches {
		l := &t.Latches[i]
		l.Lit = r.code[l.Lit]
		t.types[l.Lit.Var()] = typeEntry{role: roleLatch, idx: i}
	}
	return nil
}
