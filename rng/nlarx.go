// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

// StreamNLARXu128 is a stream-cipher-style add-rotate-XOR PRNG with a
// non-linear step, built so that seeking to any position in its output
// stream is O(1): the 128-bit state is (seedHi:counterLo), where only the
// low 64 bits ever change between calls.
type StreamNLARXu128 struct {
	state u128
}

const nlarxRounds = 6

// NewStreamNLARXu128 constructs a StreamNLARXu128 generator with state
// (seed << 64) | 0.
func NewStreamNLARXu128(seed uint64) *StreamNLARXu128 {
	n := &StreamNLARXu128{}
	n.Reseed(seed)
	return n
}

func (n *StreamNLARXu128) Name() string { return "StreamNLARXu128" }

func (n *StreamNLARXu128) Reseed(seed uint64) {
	n.state = u128{hi: seed, lo: 0}
}

// Seek sets the low 64 bits of the state directly, giving O(1) random
// access into the output stream: after Seek(c), the next call to Next()
// returns the same value as constructing fresh and advancing c+1 times.
func (n *StreamNLARXu128) Seek(counter uint64) {
	n.state.lo = counter
}

func (n *StreamNLARXu128) Advance(delta uint64) {
	n.state.lo += delta
}

func mixU128(in u128) u128 {
	out := in
	for i := 0; i < nlarxRounds; i++ {
		out = out.swapBytes()
		out = out.xor(out.rotl(17))
		if out.lo&1 != 0 {
			out = out.add(out.rotl(23))
		} else {
			out = out.add(out.rotl(41))
		}
		if out.lo&2 != 0 {
			out = out.add(out.rotl(33))
		} else {
			out = out.add(out.rotl(17))
		}
	}
	return out
}

func (n *StreamNLARXu128) Next() uint64 {
	n.Advance(1)
	return mixU128(n.state).lo
}

func (n *StreamNLARXu128) NextU32() uint32 {
	n.Advance(1)
	return uint32(mixU128(n.state).lo)
}
