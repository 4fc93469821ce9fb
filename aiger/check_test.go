// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"errors"
	"testing"

	"github.com/go-air/aiger/z"
)

func TestCheckOrder(t *testing.T) {
	tests := map[string]struct {
		build func(a *T)
		msg   string
	}{
		"next before output": {
			build: func(a *T) {
				a.AddLatch(2, 9, "")
				a.AddOutput(11, "")
			},
			msg: "next state function 9 of latch 2 undefined"},
		"output before and": {
			build: func(a *T) {
				a.AddAnd(2, 9, 0)
				a.AddOutput(11, "")
			},
			msg: "output 10 undefined"},
		"bad": {
			build: func(a *T) { a.AddBad(4, "") },
			msg:   "bad 4 undefined"},
		"constraint": {
			build: func(a *T) { a.AddConstraint(5, "") },
			msg:   "constraint 4 undefined"},
		"justice": {
			build: func(a *T) { a.AddJustice([]z.Lit{1, 7}, "") },
			msg:   "justice 6 undefined"},
		"fairness": {
			build: func(a *T) { a.AddFairness(8, "") },
			msg:   "fairness 8 undefined"},
		"and before cycle": {
			build: func(a *T) {
				a.AddAnd(2, 4, 1)
				a.AddAnd(4, 2, 7)
			},
			msg: "literal 7 in AND 4 undefined"},
	}
	for name, tc := range tests {
		a := New()
		tc.build(a)
		err := a.Check()
		if err == nil || err.Error() != tc.msg {
			t.Errorf("%s: got %v want %q", name, err, tc.msg)
		}
	}
}

func TestCheckCycle(t *testing.T) {
	a := New()
	a.AddInput(2, "")
	a.AddAnd(4, 6, 2)
	a.AddAnd(6, 4, 3)
	a.AddOutput(4, "")
	err := a.Check()
	if !errors.Is(err, ErrCombLoop) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "cyclic definition for AND gate 4" {
		t.Errorf("message %q", err.Error())
	}
	if a.Err() != err {
		t.Errorf("error not recorded")
	}
}

func TestCheckDiamond(t *testing.T) {
	// shared fan-in is not a cycle
	a := New()
	a.AddInput(2, "")
	a.AddInput(4, "")
	a.AddAnd(6, 4, 2)
	a.AddAnd(8, 7, 2)
	a.AddAnd(10, 7, 4)
	a.AddAnd(12, 10, 8)
	a.AddOutput(13, "")
	if err := a.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestCheckSelfLoop(t *testing.T) {
	a := New()
	a.AddAnd(2, 3, 1)
	if err := a.Check(); !errors.Is(err, ErrCombLoop) {
		t.Errorf("got %v", err)
	}
}

func TestCheckEmpty(t *testing.T) {
	if err := New().Check(); err != nil {
		t.Error(err)
	}
}
