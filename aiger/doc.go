// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements aiger format version 1.9 ascii and binary
// readers and writers together with the in-memory model they operate on.
//
// A model (*T) holds inputs, latches, outputs, bad state properties,
// invariant constraints, justice and fairness properties and the and gates
// defining them.  Models are built with the Add methods, validated with
// Check and put into the canonical numbering required by the binary format
// with Reencode.
//
// Misuse of the Add methods, such as defining a variable twice or passing a
// negated literal where a variable definition is expected, panics.
// Malformed input and inconsistent models are reported as *Error values.
package aiger
