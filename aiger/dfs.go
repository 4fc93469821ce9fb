// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/go-air/aiger/z"

// visit is a work item of an iterative depth first search.  A variable is
// pushed once to be entered and, once entered, once more to be left
// after all its children.
type visit struct {
	v     z.Var
	leave bool
}

// dfs holds the scratch state of one traversal over the and gates of a
// model.  Nothing is kept in the model itself, so traversals are
// independent of each other.
type dfs struct {
	t       *T
	mark    []bool
	onstack []bool
	stack   []visit
}

func newDfs(t *T) *dfs {
	n := int(t.MaxVar) + 1
	d := &dfs{t: t}
	d.mark = fit(t, d.mark, n)[:n]
	d.onstack = fit(t, d.onstack, n)[:n]
	return d
}

// release gives the scratch buffers back.
func (d *dfs) release() {
	release(d.t, d.mark)
	release(d.t, d.onstack)
	release(d.t, d.stack)
	d.mark, d.onstack, d.stack = nil, nil, nil
}

func (d *dfs) push(v z.Var, leave bool) {
	d.stack = push(d.t, d.stack, visit{v: v, leave: leave})
}

func (d *dfs) pop() visit {
	n := len(d.stack) - 1
	w := d.stack[n]
	d.stack = d.stack[:n]
	return w
}

func (d *dfs) isAnd(v z.Var) bool {
	return d.t.types[v].role == roleAnd
}

// cycle searches the and gates for a combinational loop, returning the
// first variable found on one or 0 if there is none.
func (d *dfs) cycle() z.Var {
	t := d.t
	for i := z.Var(1); i <= t.MaxVar; i++ {
		if !d.isAnd(i) || d.mark[i] {
			continue
		}
		d.push(i, false)
		for len(d.stack) > 0 {
			w := d.pop()
			if w.leave {
				d.onstack[w.v] = false
				continue
			}
			if d.mark[w.v] && d.onstack[w.v] {
				d.stack = d.stack[:0]
				return w.v
			}
			if !d.isAnd(w.v) || d.mark[w.v] {
				continue
			}
			d.mark[w.v] = true
			d.onstack[w.v] = true
			d.push(w.v, true)
			a := &t.Ands[t.types[w.v].idx]
			if c := a.Rhs0.Var(); c != 0 {
				d.push(c, false)
			}
			if c := a.Rhs1.Var(); c != 0 {
				d.push(c, false)
			}
		}
	}
	return 0
}

// post calls fn on every and gate reachable from v which has not been
// reached yet in this traversal, children before parents.  The and
// graph must be acyclic.
func (d *dfs) post(v z.Var, fn func(a *And)) {
	t := d.t
	d.push(v, false)
	for len(d.stack) > 0 {
		w := d.pop()
		if w.leave {
			fn(&t.Ands[t.types[w.v].idx])
			continue
		}
		if w.v == 0 || !d.isAnd(w.v) || d.mark[w.v] {
			continue
		}
		d.mark[w.v] = true
		a := &t.Ands[t.types[w.v].idx]
		d.push(w.v, true)
		d.push(a.Rhs1.Var(), false)
		d.push(a.Rhs0.Var(), false)
	}
}
