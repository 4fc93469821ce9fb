// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aigfile reads and writes aiger models from and to files.
//
// Files ending in ".gz" and ".xz" are transparently decompressed on read
// and compressed on write; files ending in ".bz2" can be read but not
// written.  The path "-" stands for standard input or output.  Write
// mode defaults to ascii for ".aag" files, with or without a compression
// suffix, and to binary otherwise.
package aigfile
