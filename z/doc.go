// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the literal and variable types of the aiger format.
//
// A literal packs a variable and a polarity into one unsigned integer: the
// variable is the literal shifted right by one and the low bit is set for
// negated literals.  Variable 0 is reserved for the constants, so literal 0
// is false and literal 1 is true.
package z
