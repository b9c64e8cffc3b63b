// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import "math/bits"

// u128 is a 128-bit unsigned integer split into high/low 64-bit halves,
// used by the LCG family (Lehmer64, UlsLcg512, UlsLcg512H) whose state or
// modulus does not fit in a uint64.
type u128 struct {
	hi, lo uint64
}

// mul multiplies u by the 64-bit constant m modulo 2^128.
func (u u128) mul(m uint64) u128 {
	hi, lo := bits.Mul64(u.lo, m)
	return u128{hi: u.hi*m + hi, lo: lo}
}

// mul2 multiplies u by the 128-bit constant v modulo 2^128.
func (u u128) mul2(v u128) u128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	return u128{hi: hi + u.lo*v.hi + u.hi*v.lo, lo: lo}
}

// add adds v to u modulo 2^128.
func (u u128) add(v u128) u128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return u128{hi: hi, lo: lo}
}

// addU64 adds the 64-bit value v to u modulo 2^128.
func (u u128) addU64(v uint64) u128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	hi, _ := bits.Add64(u.hi, 0, carry)
	return u128{hi: hi, lo: lo}
}

func (u u128) xor(v u128) u128 { return u128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }

func (u u128) or(v u128) u128 { return u128{hi: u.hi | v.hi, lo: u.lo | v.lo} }

// shl shifts u left by k bits (0 <= k <= 128), dropping overflow.
func (u u128) shl(k uint) u128 {
	switch {
	case k == 0:
		return u
	case k >= 128:
		return u128{}
	case k < 64:
		return u128{hi: (u.hi << k) | (u.lo >> (64 - k)), lo: u.lo << k}
	default:
		return u128{hi: u.lo << (k - 64)}
	}
}

// shr shifts u right by k bits (0 <= k <= 128), logically (no sign extension).
func (u u128) shr(k uint) u128 {
	switch {
	case k == 0:
		return u
	case k >= 128:
		return u128{}
	case k < 64:
		return u128{hi: u.hi >> k, lo: (u.lo >> k) | (u.hi << (64 - k))}
	default:
		return u128{lo: u.hi >> (k - 64)}
	}
}

// rotl rotates u left by k bits within the full 128-bit width.
func (u u128) rotl(k uint) u128 {
	k %= 128
	if k == 0 {
		return u
	}
	return u.shl(k).or(u.shr(128 - k))
}

// swapBytes reverses the 16-byte representation of u.
func (u u128) swapBytes() u128 {
	return u128{hi: bits.ReverseBytes64(u.lo), lo: bits.ReverseBytes64(u.hi)}
}
