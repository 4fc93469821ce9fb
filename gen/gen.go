// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/z"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// AndCycle generates n and gates over one input which form a
// combinational loop
//
//	v1 = v2 & i, v2 = v3 & i, ..., vn = v1 & i
//
// with output v1.  The result fails Check.
func AndCycle(n int) *aiger.T {
	t := aiger.New()
	in := z.Var(n + 1).Pos()
	t.AddInput(in, "")
	for i := 1; i <= n; i++ {
		j := i + 1
		if j > n {
			j = 1
		}
		t.AddAnd(z.Var(i).Pos(), z.Var(j).Pos(), in)
	}
	t.AddOutput(z.Var(1).Pos(), "")
	return t
}

// AndChain generates the conjunction of n+1 inputs as a chain of n and
// gates, in canonical numbering, with the last gate as output.
func AndChain(n int) *aiger.T {
	t := aiger.New()
	for i := 1; i <= n+1; i++ {
		t.AddInput(z.Var(i).Pos(), "")
	}
	acc := z.Var(1).Pos()
	for i := 1; i <= n; i++ {
		g := z.Var(n + 1 + i).Pos()
		a, b := z.Var(i+1).Pos(), acc
		if a < b {
			a, b = b, a
		}
		t.AddAnd(g, a, b)
		acc = g
	}
	t.AddOutput(acc, "")
	return t
}
