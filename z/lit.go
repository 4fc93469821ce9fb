// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// Lit is an aiger literal.
type Lit uint32

const (
	// LitFalse is the constant false literal.
	LitFalse Lit = 0
	// LitTrue is the constant true literal.
	LitTrue Lit = 1
)

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos returns whether m is not negated.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int {
	if m&1 == 0 {
		return 1
	}
	return -1
}

// Strip returns the positive literal of m's variable.
func (m Lit) Strip() Lit {
	return m &^ 1
}

// IsConst returns whether m is one of the two constant literals.
func (m Lit) IsConst() bool {
	return m < 2
}

// String gives the decimal aiger encoding of m.
func (m Lit) String() string {
	return strconv.FormatUint(uint64(m), 10)
}
