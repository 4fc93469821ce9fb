// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

// header for aiger v 1.9
type header struct {
	binary     bool
	max        uint32
	in         uint32
	latch      uint32
	out        uint32
	and        uint32
	bad        uint32
	constraint uint32
	justice    uint32
	fair       uint32
}

func makeHeader(t *T, binary bool) *header {
	return &header{
		binary:     binary,
		max:        uint32(t.MaxVar),
		in:         uint32(len(t.Inputs)),
		latch:      uint32(len(t.Latches)),
		out:        uint32(len(t.Outputs)),
		and:        uint32(len(t.Ands)),
		bad:        uint32(len(t.Bad)),
		constraint: uint32(len(t.Constraints)),
		justice:    uint32(len(t.Justice)),
		fair:       uint32(len(t.Fairness))}
}

// fields gives the header counts to write.  The optional counts
// B C J F are only written up to the last non-zero one.
func (h *header) fields() []uint32 {
	fs := []uint32{h.max, h.in, h.latch, h.out, h.and,
		h.bad, h.constraint, h.justice, h.fair}
	n := len(fs)
	for n > 5 && fs[n-1] == 0 {
		n--
	}
	return fs[:n]
}

func (h *header) write(w *writer) {
	if h.binary {
		w.str("aig")
	} else {
		w.str("aag")
	}
	for _, f := range h.fields() {
		w.ch(' ')
		w.u(f)
	}
	w.ch('\n')
}
