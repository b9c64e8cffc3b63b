// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

// UlsLcg512 runs four parallel 128-bit LCGs with distinct multipliers and
// increments and XORs their high-64-bit halves together after stepping all
// four.
type UlsLcg512 struct {
	s [4]u128
}

var (
	ulsMult0 = u128{hi: 0x59ca1b2888a0a80f, lo: 0xc054cd25b1fde311}
	ulsIncr0 = u128{hi: 0xa53a3854d740d22b, lo: 0x4802f2e6ea01e350}

	ulsMult1 = u128{hi: 0xade47f9859546ba0, lo: 0x94573e7c2194a93c}
	ulsIncr1 = u128{hi: 0xc77a0728309148b9, lo: 0x5143795d657a29f2}

	ulsMult2 = u128{hi: 0x85fec39e4833d57d, lo: 0xd07f903f191ecfd3}
	ulsIncr2 = u128{hi: 0x77421f2a59df2305, lo: 0x739f337afcad9edb}

	ulsMult3 = u128{hi: 0xcdf30907584f7e15, lo: 0x51c0667353108b63}
	ulsIncr3 = u128{hi: 0x935fec88eaba8c39, lo: 0xe94503587c22ce99}
)

// NewUlsLcg512 constructs a UlsLcg512 generator.
func NewUlsLcg512(seed uint64) *UlsLcg512 {
	u := &UlsLcg512{}
	u.Reseed(seed)
	return u
}

func (u *UlsLcg512) Name() string { return "UlsLcg512" }

func ulsInitialState(seed uint64) [4]u128 {
	notSeed := ^seed
	return [4]u128{
		{hi: notSeed, lo: notSeed},
		{hi: seed, lo: seed},
		{hi: seed, lo: notSeed},
		{hi: notSeed, lo: seed},
	}
}

func (u *UlsLcg512) Reseed(seed uint64) {
	u.s = ulsInitialState(seed)
}

func (u *UlsLcg512) Next() uint64 {
	u.s[0] = u.s[0].mul2(ulsMult0).add(ulsIncr0)
	u.s[1] = u.s[1].mul2(ulsMult1).add(ulsIncr1)
	u.s[2] = u.s[2].mul2(ulsMult2).add(ulsIncr2)
	u.s[3] = u.s[3].mul2(ulsMult3).add(ulsIncr3)
	return u.s[0].hi ^ u.s[1].hi ^ u.s[2].hi ^ u.s[3].hi
}

func (u *UlsLcg512) NextU32() uint32 {
	return uint32(u.Next())
}

func (u *UlsLcg512) Advance(delta uint64) {
	for i := uint64(0); i < delta; i++ {
		u.Next()
	}
}

// UlsLcg512H shares UlsLcg512's state shape with different constants;
// output is the high 64 bits of the 128-bit sum of the four states instead
// of their XOR.
type UlsLcg512H struct {
	s [4]u128
}

var (
	ulsHMult0 = u128{hi: 0xe7513927bf964921, lo: 0x35e503ed7f5b837e}
	ulsHIncr0 = u128{hi: 0x126b06c2bfe2dac7, lo: 0x725ee66c0e1efe69}

	ulsHMult1 = u128{hi: 0x6420fafa38bd7d81, lo: 0xfc02e8cbfac57698}
	ulsHIncr1 = u128{hi: 0xd2a884d8ed65a425, lo: 0x999f67abfa901eba}

	ulsHMult2 = u128{hi: 0x3072f956f9d4a953, lo: 0x1efd7c4bd3f684f5}
	ulsHIncr2 = u128{hi: 0x2f18c679c54a581a, lo: 0xef3f88efa973d2c9}

	ulsHMult3 = u128{hi: 0xa7b5b12dc766a03c, lo: 0xfdbaf54bacac8382}
	ulsHIncr3 = u128{hi: 0xb12c82d5df1c4e33, lo: 0xfd207ba107b9c620}
)

// NewUlsLcg512H constructs a UlsLcg512H generator.
func NewUlsLcg512H(seed uint64) *UlsLcg512H {
	u := &UlsLcg512H{}
	u.Reseed(seed)
	return u
}

func (u *UlsLcg512H) Name() string { return "UlsLcg512H" }

func (u *UlsLcg512H) Reseed(seed uint64) {
	u.s = ulsInitialState(seed)
}

func (u *UlsLcg512H) Next() uint64 {
	u.s[0] = u.s[0].mul2(ulsHMult0).add(ulsHIncr0)
	u.s[1] = u.s[1].mul2(ulsHMult1).add(ulsHIncr1)
	u.s[2] = u.s[2].mul2(ulsHMult2).add(ulsHIncr2)
	u.s[3] = u.s[3].mul2(ulsHMult3).add(ulsHIncr3)

	sum := u.s[0].add(u.s[1]).add(u.s[2]).add(u.s[3])
	return sum.hi
}

func (u *UlsLcg512H) NextU32() uint32 {
	return uint32(u.Next())
}

func (u *UlsLcg512H) Advance(delta uint64) {
	for i := uint64(0); i < delta; i++ {
		u.Next()
	}
}
