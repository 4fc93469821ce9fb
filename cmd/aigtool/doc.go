// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command aigtool checks, converts and generates aiger models.
//
//	aigtool [--config file] [--verbose] <command> args...
//
// <command> may be
//
//	check FILE            read and validate FILE, print ok or the problem
//	info FILE             print the header counts of FILE
//	convert IN OUT        rewrite IN to OUT (--ascii, --binary, --strip)
//	reencode IN OUT       put IN in canonical form and write it to OUT
//	strip IN OUT          remove symbols and comments
//	fuzz OUT              write a random model (--seed, --ands, ..., --check)
//
// Files ending in .gz, .bz2 (read only) and .xz are compressed.  The file
// "-" is standard input or output.  Unless a mode is given, OUT is written
// in ascii if it ends in .aag and in binary otherwise.
//
// The configuration file is YAML, for example
//
//	log:
//	  level: info      # debug, info, warn, error
//	  format: console  # or json
//	output:
//	  mode: auto       # ascii, binary
//	  strip: false
//	fuzz:
//	  seed: 1
//	  inputs: 4
//	  latches: 3
//	  ands: 20
//	  outputs: 2
package main
