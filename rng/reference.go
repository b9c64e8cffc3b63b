// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import "math/bits"

// Reference is the harness's speed and correctness baseline: a
// xoshiro256** generator seeded via SplitMix64. It stands in for "a
// standard seedable 64-bit-per-call stream" that every other generator in
// the zoo is compared against.
type Reference struct {
	s [4]uint64
}

// NewReference constructs a Reference generator seeded deterministically
// from seed.
func NewReference(seed uint64) *Reference {
	r := &Reference{}
	r.Reseed(seed)
	return r
}

func splitMix64(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (r *Reference) Name() string { return "Reference" }

func (r *Reference) Reseed(seed uint64) {
	for i := range r.s {
		v := seed + uint64(i)
		for {
			v = splitMix64(v)
			if v != 0 {
				break
			}
		}
		r.s[i] = v
	}
}

func (r *Reference) Next() uint64 {
	s := &r.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

func (r *Reference) NextU32() uint32 {
	return uint32(r.Next() >> 32)
}

func (r *Reference) Advance(delta uint64) {
	for i := uint64(0); i < delta; i++ {
		r.Next()
	}
}
