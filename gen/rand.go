// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/z"
)

// Opts gives the shape of a random model.
type Opts struct {
	Inputs      int
	Latches     int
	Ands        int
	Outputs     int
	Bad         int
	Constraints int
	Justice     int
	Fairness    int
	Gaps        int  // variable indices left unused
	Named       bool // name every symbol
	Comments    int
}

// DefaultOpts gives a small sequential model with every kind of
// property.
func DefaultOpts() *Opts {
	return &Opts{
		Inputs:      4,
		Latches:     3,
		Ands:        20,
		Outputs:     2,
		Bad:         1,
		Constraints: 1,
		Justice:     1,
		Fairness:    1,
		Gaps:        2,
		Named:       true,
		Comments:    1}
}

// Rand generates a random valid model with the shape given by opts, using
// the package random number generator.
//
// Variables are assigned to inputs, latches and and gates in random order
// and the gates are added in random order, so the result is normally not
// in canonical form.  The and gates are acyclic and every literal used is
// defined, so the result passes Check.
func Rand(opts *Opts) *aiger.T {
	mu.Lock()
	defer mu.Unlock()
	return randT(rng, opts)
}

// RandFrom is like Rand but draws from src.
func RandFrom(src rand.Source, opts *Opts) *aiger.T {
	return randT(rand.New(src), opts)
}

// pick draws a literal over vs or a constant.
func pick(r *rand.Rand, vs []z.Var) z.Lit {
	m := z.LitFalse
	if i := r.Intn(len(vs) + 1); i < len(vs) {
		m = vs[i].Pos()
	}
	if r.Intn(2) == 1 {
		m = m.Not()
	}
	return m
}

func name(o *Opts, kind string, i int) string {
	if !o.Named {
		return ""
	}
	return fmt.Sprintf("%s%d", kind, i)
}

func randT(r *rand.Rand, o *Opts) *aiger.T {
	n := o.Inputs + o.Latches + o.Ands + o.Gaps
	vars := make([]z.Var, n)
	for i, p := range r.Perm(n) {
		vars[i] = z.Var(p + 1)
	}
	ins := vars[:o.Inputs]
	lats := vars[o.Inputs : o.Inputs+o.Latches]
	ands := vars[o.Inputs+o.Latches : o.Inputs+o.Latches+o.Ands]

	// gates only use variables defined before them, which keeps the
	// graph acyclic.
	defs := make([]z.Var, 0, n)
	defs = append(defs, ins...)
	defs = append(defs, lats...)
	gates := make([]aiger.And, len(ands))
	for i, v := range ands {
		gates[i] = aiger.And{Lhs: v.Pos(), Rhs0: pick(r, defs), Rhs1: pick(r, defs)}
		defs = append(defs, v)
	}
	r.Shuffle(len(gates), func(i, j int) {
		gates[i], gates[j] = gates[j], gates[i]
	})

	t := aiger.New()
	for i, v := range ins {
		t.AddInput(v.Pos(), name(o, "in", i))
	}
	for i, v := range lats {
		m := v.Pos()
		t.AddLatch(m, pick(r, defs), name(o, "latch", i))
		switch r.Intn(3) {
		case 1:
			t.AddReset(m, z.LitTrue)
		case 2:
			t.AddReset(m, m)
		}
	}
	for i := range gates {
		g := &gates[i]
		t.AddAnd(g.Lhs, g.Rhs0, g.Rhs1)
	}
	props := [...]struct {
		n    int
		kind string
		add  func(z.Lit, string)
	}{
		{o.Outputs, "out", t.AddOutput},
		{o.Bad, "bad", t.AddBad},
		{o.Constraints, "constraint", t.AddConstraint},
		{o.Fairness, "fair", t.AddFairness},
	}
	for _, p := range props {
		for i := 0; i < p.n; i++ {
			p.add(pick(r, defs), name(o, p.kind, i))
		}
	}
	var ms []z.Lit
	for i := 0; i < o.Justice; i++ {
		ms = ms[:0]
		for j := r.Intn(3); j >= 0; j-- {
			ms = append(ms, pick(r, defs))
		}
		t.AddJustice(ms, name(o, "justice", i))
	}
	for i := 0; i < o.Comments; i++ {
		t.AddComment(fmt.Sprintf("random model comment %d", i))
	}
	return t
}
