// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for aiger models.
//
// Package gen supplies random models with a configurable number of inputs,
// latches, gates and properties, numbered arbitrarily so that they exercise
// reencoding, as well as small structured models such as chains of and
// gates and combinational loops.
package gen
