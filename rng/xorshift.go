// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

// XORShift128 implements the classic 128-bit xorshift generator over four
// 32-bit words.
type XORShift128 struct {
	state [4]uint32
}

// NewXORShift128 constructs an XORShift128 generator seeded from the low
// and high halves of seed, each used twice: [lo, hi, lo, hi].
func NewXORShift128(seed uint64) *XORShift128 {
	x := &XORShift128{}
	x.Reseed(seed)
	return x
}

func (x *XORShift128) Name() string { return "XORShift128" }

func (x *XORShift128) Reseed(seed uint64) {
	lo, hi := uint32(seed), uint32(seed>>32)
	x.state = [4]uint32{lo, hi, lo, hi}
}

func (x *XORShift128) NextU32() uint32 {
	s := &x.state
	t := s[3]
	sv := s[0]
	s[3] = s[2]
	s[2] = s[1]
	s[1] = sv
	t ^= t << 11
	t ^= t >> 8
	s[0] = t ^ sv ^ (sv >> 19)
	return s[0]
}

func (x *XORShift128) Next() uint64 {
	a := uint64(x.NextU32())
	b := uint64(x.NextU32())
	return (a << 32) | b
}

func (x *XORShift128) Advance(delta uint64) {
	for i := uint64(0); i < delta; i++ {
		x.NextU32()
	}
}
