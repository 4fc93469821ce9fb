// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "testing"

func TestLitConst(t *testing.T) {
	if LitFalse.Not() != LitTrue {
		t.Errorf("false not true")
	}
	if !LitFalse.IsConst() || !LitTrue.IsConst() {
		t.Errorf("constants not const")
	}
	if LitFalse.Var() != 0 || LitTrue.Var() != 0 {
		t.Errorf("constants not on var 0")
	}
}

func TestLitStrip(t *testing.T) {
	for i := 1; i < 100; i++ {
		v := Var(i)
		if v.Neg().Strip() != v.Pos() {
			t.Errorf("strip %s", v.Neg())
		}
		if v.Pos().Strip() != v.Pos() {
			t.Errorf("strip %s", v.Pos())
		}
		if v.Pos().IsConst() {
			t.Errorf("%s const", v.Pos())
		}
		if Lit(2*i+1).String() != v.Neg().String() {
			t.Errorf("string %d", i)
		}
	}
}
