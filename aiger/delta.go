// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"io"

	"github.com/pkg/errors"
)

// This file implements the variable length coding of the deltas of binary
// and gates: 7 data bits per byte, least significant group first, the high
// bit set on every byte but the last.  We don't use encoding/binary's
// uvarint because it is 64 bit and does not bound the code at 5 bytes.

const (
	deltaMask    = (1 << 7) - 1
	deltaMore    = 1 << 7
	maxDeltaLen  = 5
	lastDeltaMax = 1 << (32 - 7*(maxDeltaLen-1))
)

// AppendDelta appends the code of d to dst.  d = 0 is coded as a single
// zero byte.
func AppendDelta(dst []byte, d uint32) []byte {
	for d&^deltaMask != 0 {
		dst = append(dst, byte(d&deltaMask)|deltaMore)
		d >>= 7
	}
	return append(dst, byte(d))
}

// DeltaLen gives the number of bytes AppendDelta uses for d.
func DeltaLen(d uint32) int {
	n := 1
	for d&^deltaMask != 0 {
		d >>= 7
		n++
	}
	return n
}

// ReadDelta decodes one delta from r.
func ReadDelta(r io.ByteReader) (uint32, error) {
	var res uint32
	for i := 0; i < maxDeltaLen; i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			return 0, ErrPrematureEOF
		}
		if err != nil {
			return 0, errors.Wrap(err, "read delta")
		}
		if i == maxDeltaLen-1 && b >= lastDeltaMax {
			return 0, ErrBadDelta
		}
		res |= uint32(b&deltaMask) << uint(7*i)
		if b&deltaMore == 0 {
			return res, nil
		}
	}
	return 0, ErrBadDelta
}
