// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"fmt"

	"github.com/go-air/aiger/z"
)

// Eval64 evaluates the and gates of t with 64 assignments in parallel.
//
// vals is indexed by variable and must have length at least t.MaxVar+1.
// The caller sets the entries of input and latch variables; Eval64 sets
// vals[0] to 0 and the entry of every and gate variable.  Other entries
// are left alone.  Eval64 returns the error of Check if t is not valid.
func (t *T) Eval64(vals []uint64) error {
	if err := t.Check(); err != nil {
		return err
	}
	if len(vals) <= int(t.MaxVar) {
		panic(fmt.Sprintf("aiger: eval with %d values, need %d", len(vals), t.MaxVar+1))
	}
	vals[0] = 0
	d := newDfs(t)
	defer d.release()
	for i := range t.Ands {
		d.post(t.Ands[i].Lhs.Var(), func(a *And) {
			vals[a.Lhs.Var()] = LitValue64(vals, a.Rhs0) & LitValue64(vals, a.Rhs1)
		})
	}
	return nil
}

// LitValue64 gives the value of m under vals, see Eval64.
func LitValue64(vals []uint64, m z.Lit) uint64 {
	v := vals[m.Var()]
	if !m.IsPos() {
		return ^v
	}
	return v
}
