// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/cpu"
)

// RijndaelStream is a block-cipher-as-stream generator: a 128-bit counter
// run through four rounds of the Rijndael round transform against a single
// fixed round key (no key schedule, the key is XORed in fresh each round).
// The round transform runs in software (see aesround.go); it does not use
// the AES instructions. Construction still requires a host that reports
// AES hardware support; on a platform without it, NewRijndaelStream
// returns a configuration error.
type RijndaelStream struct {
	counter u128
	key     [16]byte
}

// hasAESAcceleration reports whether this platform exposes the AES
// instruction set pearlacid's RijndaelStream is gated on.
func hasAESAcceleration() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}

// NewRijndaelStream constructs a RijndaelStream generator. It returns an
// error if the host lacks AES hardware acceleration.
func NewRijndaelStream(seed uint64) (*RijndaelStream, error) {
	if !hasAESAcceleration() {
		return nil, fmt.Errorf("rng: RijndaelStream requires AES hardware acceleration, which is not available on this platform")
	}
	r := &RijndaelStream{}
	r.reseed(seed)
	return r, nil
}

func (r *RijndaelStream) Name() string { return "RijndaelStream" }

func (r *RijndaelStream) reseed(seed uint64) {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[0:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], ^seed)
	r.key = key
	r.counter = u128{}
}

// Reseed resets the generator as if freshly constructed with seed. Unlike
// the other generators in this package, RijndaelStream's construction can
// fail (missing AES acceleration); since that was already validated by
// NewRijndaelStream, Reseed itself cannot fail.
func (r *RijndaelStream) Reseed(seed uint64) {
	r.reseed(seed)
}

// Seek sets the counter directly, giving O(1) random access into the
// output stream.
func (r *RijndaelStream) Seek(counter uint64) {
	r.counter = u128{lo: counter}
}

func (r *RijndaelStream) Advance(delta uint64) {
	r.counter = r.counter.addU64(delta)
}

const rijndaelRounds = 4

func (r *RijndaelStream) encryptCounter() [16]byte {
	var block [16]byte
	binary.LittleEndian.PutUint64(block[0:8], r.counter.lo)
	binary.LittleEndian.PutUint64(block[8:16], r.counter.hi)
	for i := 0; i < rijndaelRounds; i++ {
		block = aesRound(block, r.key)
	}
	return block
}

func (r *RijndaelStream) Next() uint64 {
	r.Advance(1)
	ct := r.encryptCounter()
	return binary.LittleEndian.Uint64(ct[0:8])
}

func (r *RijndaelStream) NextU32() uint32 {
	return uint32(r.Next())
}
