// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Var is an aiger variable.  Var(0) is the constant variable.
type Var uint32

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negated literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

// String returns "v" followed by the index of v.
func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
