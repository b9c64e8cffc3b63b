// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"hash"
)

// ConditionSeed reduces arbitrary-length entropy to the uint64 seed every
// Generator constructor expects; the driver binary's -seed-entropy flag
// runs the battery against a seed derived this way. An SHAd-style double
// hash (hash h(0^b || data), then rehash the digest, so a generator
// reseeded from attacker-influenced bytes never has its state equal the
// raw hash of that data) produces a 256-bit key, which then keys an
// AES-CTR stream from which the seed is drawn. Only a single 8-byte block
// is ever taken per conditioning call.
func ConditionSeed(data []byte) uint64 {
	key := doubleHash(sha256.New(), data)
	block, err := aes.NewCipher(key)
	if err != nil {
		panic("rng: AES-256 key from ConditionSeed double-hash has unexpected length: " + err.Error())
	}
	var iv [aes.BlockSize]byte
	stream := cipher.NewCTR(block, iv[:])
	out := make([]byte, 8)
	stream.XORKeyStream(out, out)
	return binary.LittleEndian.Uint64(out)
}

// doubleHash resets h, writes a block of zeros sized to h's block size,
// writes data, then rehashes the resulting digest.
func doubleHash(h hash.Hash, data []byte) []byte {
	h.Reset()
	zeros := make([]byte, h.BlockSize())
	if _, err := h.Write(zeros); err != nil {
		panic("rng: hash write failed: " + err.Error())
	}
	if _, err := h.Write(data); err != nil {
		panic("rng: hash write failed: " + err.Error())
	}
	digest := h.Sum(nil)

	h.Reset()
	if _, err := h.Write(digest); err != nil {
		panic("rng: hash write failed: " + err.Error())
	}
	return h.Sum(nil)
}
