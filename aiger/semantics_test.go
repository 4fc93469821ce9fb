// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/go-air/aiger/aiger"
	"github.com/go-air/aiger/gen"
	"github.com/go-air/aiger/z"
)

// roots evaluates a under the given input and latch values and returns the
// values of all latch next states and properties in order.
func roots(t *testing.T, a *aiger.T, ins, lats []uint64) []uint64 {
	t.Helper()
	vals := make([]uint64, a.MaxVar+1)
	for i := range a.Inputs {
		vals[a.Inputs[i].Lit.Var()] = ins[i]
	}
	for i := range a.Latches {
		vals[a.Latches[i].Lit.Var()] = lats[i]
	}
	if err := a.Eval64(vals); err != nil {
		t.Fatal(err)
	}
	var res []uint64
	add := func(m z.Lit) {
		res = append(res, aiger.LitValue64(vals, m))
	}
	for i := range a.Latches {
		add(a.Latches[i].Next)
	}
	for _, syms := range [][]aiger.Symbol{a.Outputs, a.Bad, a.Constraints, a.Fairness} {
		for i := range syms {
			add(syms[i].Lit)
		}
	}
	for i := range a.Justice {
		for _, m := range a.Justice[i].Lits {
			add(m)
		}
	}
	return res
}

func randVals(r *rand.Rand, n int) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.Uint64()
	}
	return vs
}

func equal(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReencodePreservesSemantics(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	opts := gen.DefaultOpts()
	opts.Ands = 60
	for i := 0; i < 100; i++ {
		a := gen.RandFrom(rand.NewSource(int64(i)), opts)
		ins := randVals(r, len(a.Inputs))
		lats := randVals(r, len(a.Latches))
		want := roots(t, a, ins, lats)

		var buf bytes.Buffer
		if err := a.WriteBinary(&buf); err != nil {
			t.Fatal(err)
		}
		if !a.IsReencoded() {
			t.Fatalf("model %d not canonical after binary write", i)
		}
		if got := roots(t, a, ins, lats); !equal(got, want) {
			t.Errorf("model %d: reencode changed semantics", i)
		}
		b, err := aiger.ReadBinary(&buf)
		if err != nil {
			t.Fatalf("model %d: %s", i, err)
		}
		if got := roots(t, b, ins, lats); !equal(got, want) {
			t.Errorf("model %d: binary round trip changed semantics", i)
		}
		if int(b.MaxVar) != len(b.Inputs)+len(b.Latches)+len(b.Ands) {
			t.Errorf("model %d: max var %d", i, b.MaxVar)
		}
	}
}

func TestAsciiRoundTripPreservesNumbering(t *testing.T) {
	opts := gen.DefaultOpts()
	for i := 0; i < 50; i++ {
		a := gen.RandFrom(rand.NewSource(int64(i)), opts)
		var buf bytes.Buffer
		if err := a.WriteAscii(&buf); err != nil {
			t.Fatal(err)
		}
		text := buf.String()
		b, err := aiger.ReadAscii(&buf)
		if err != nil {
			t.Fatalf("model %d: %s\n%s", i, err, text)
		}
		buf.Reset()
		if err := b.WriteAscii(&buf); err != nil {
			t.Fatal(err)
		}
		if buf.String() != text {
			t.Errorf("model %d: ascii round trip differs:\n%s\nvs\n%s", i, buf.String(), text)
		}
	}
}

func TestCounterRandom(t *testing.T) {
	var c aiger.Counter
	a := aiger.NewWith(aiger.Config{Allocator: &c})
	for i := 0; i < 20; i++ {
		src := gen.RandFrom(rand.NewSource(int64(i)), gen.DefaultOpts())
		var buf bytes.Buffer
		if err := src.WriteBinary(&buf); err != nil {
			t.Fatal(err)
		}
		if err := a.Read(&buf); err != nil {
			t.Fatal(err)
		}
		if err := a.Reencode(); err != nil {
			t.Fatal(err)
		}
		a.Reset()
		if c.Cur != 0 {
			t.Fatalf("model %d: %d bytes leaked", i, c.Cur)
		}
	}
}
