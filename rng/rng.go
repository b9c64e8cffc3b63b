// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rng implements the generator zoo: a uniform Generator contract
// plus concrete 32-bit, 64-bit, 128-bit and AES-round-based stream
// generators spanning trivially-broken to cryptographically-strong
// constructions.
//
// Every Generator is deterministic: constructing two generators of the same
// type with the same seed and calling Next()/NextU32() the same number of
// times on each produces identical output streams. The harness serializes
// all calls to a single Generator; none of the implementations here are
// safe for concurrent use.
package rng

// Generator is the uniform contract every PRNG in the zoo implements.
type Generator interface {
	// Name identifies the generator in suite output.
	Name() string
	// Next advances the state and returns a 64-bit output.
	Next() uint64
	// NextU32 advances the state and returns a 32-bit output.
	NextU32() uint32
	// Advance moves the state forward as if delta Next() calls had been
	// made, without materializing their output.
	Advance(delta uint64)
	// Reseed resets the generator as if freshly constructed with seed.
	Reseed(seed uint64)
}

// Seeker is implemented by generators that support O(1) random access into
// their output stream via an explicit counter value.
type Seeker interface {
	Seek(counter uint64)
}
