// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"math"
	"math/bits"
	"math/rand"
	"testing"
)

func TestAppendDelta(t *testing.T) {
	tests := map[uint32][]byte{
		0:              {0x00},
		1:              {0x01},
		127:            {0x7f},
		128:            {0x80, 0x01},
		16383:          {0xff, 0x7f},
		16384:          {0x80, 0x80, 0x01},
		math.MaxUint32: {0xff, 0xff, 0xff, 0xff, 0x0f},
	}
	for d, exp := range tests {
		got := AppendDelta(nil, d)
		if !bytes.Equal(got, exp) {
			t.Errorf("%d: % x != % x", d, got, exp)
		}
		if DeltaLen(d) != len(exp) {
			t.Errorf("%d: len %d != %d", d, DeltaLen(d), len(exp))
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(44))
	var buf []byte
	var ds []uint32
	for i := 0; i < 10000; i++ {
		d := r.Uint32() >> uint(r.Intn(32))
		ds = append(ds, d)
		buf = AppendDelta(buf, d)
		n := (bits.Len32(d) + 6) / 7
		if n == 0 {
			n = 1
		}
		if DeltaLen(d) != n {
			t.Errorf("len of %d: %d != %d", d, DeltaLen(d), n)
		}
	}
	br := bytes.NewReader(buf)
	for _, d := range ds {
		got, err := ReadDelta(br)
		if err != nil {
			t.Fatal(err)
		}
		if got != d {
			t.Errorf("read %d != %d", got, d)
		}
	}
	if br.Len() != 0 {
		t.Errorf("%d bytes left", br.Len())
	}
}

func TestReadDeltaErrors(t *testing.T) {
	tests := map[string]struct {
		in  []byte
		err error
	}{
		"empty":     {nil, ErrPrematureEOF},
		"truncated": {[]byte{0x80}, ErrPrematureEOF},
		"too long":  {[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, ErrBadDelta},
		"overflow":  {[]byte{0xff, 0xff, 0xff, 0xff, 0x10}, ErrBadDelta},
	}
	for name, tc := range tests {
		_, err := ReadDelta(bytes.NewReader(tc.in))
		if err != tc.err {
			t.Errorf("%s: %v != %v", name, err, tc.err)
		}
	}
}
