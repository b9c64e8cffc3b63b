// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package corpus holds the static test data: fixed seeds, weak-seed
// scan candidates, and known-rank matrices used by the rest of the module's
// unit tests and by the suite driver's default seed list.
package corpus

// DefaultSeeds are the 16 fixed seeds the suite driver tests by default,
// in addition to the extremes 0, 1, and ^uint64(0) it always prepends.
var DefaultSeeds = []uint64{
	0x0123456789abcdef,
	0xfedcba9876543210,
	0xdeadbeefcafebabe,
	0x0ddc0ffeebadf00d,
	0x1122334455667788,
	0x8877665544332211,
	0xaaaaaaaaaaaaaaaa,
	0x5555555555555555,
	0x0000000100000001,
	0xffffffff00000000,
	0x00000000ffffffff,
	0x123456789abcdef0,
	0x0fedcba987654321,
	0x7777777777777777,
	0x9999999999999999,
	0x0102030405060708,
}

// Extremes are prepended to DefaultSeeds by the suite driver: the zero
// seed, the minimal nonzero seed, and the all-ones seed.
var Extremes = []uint64{0, 1, ^uint64(0)}

// SeedsWithExtremes returns Extremes followed by DefaultSeeds, the
// sequence the suite driver runs when no explicit seed list is given.
func SeedsWithExtremes() []uint64 {
	out := make([]uint64, 0, len(Extremes)+len(DefaultSeeds))
	out = append(out, Extremes...)
	out = append(out, DefaultSeeds...)
	return out
}

// WeakSeedCandidates is the static list of seeds scanned by the optional
// weak-seed scan: seeds known or suspected, across the generator zoo, to
// produce degenerate output for at least one generator family (small
// state cycles, fixed points, short periods under specific multipliers).
var WeakSeedCandidates = []uint64{
	0,
	1,
	2,
	3,
	^uint64(0),
	^uint64(0) - 1,
	1 << 63,
	(1 << 63) - 1,
	0x8000000000000001,
	0x0000000080000000, // RANDU's classic degenerate low-order-bit seed
	0x00000001deadbeef,
	0xffffffffffffffff ^ 1,
}

// RankMatrix is a 32x32 GF(2) matrix fixture with a hard-coded expected
// rank, used to cross-check bitmath.RankGF2Fast against
// bitmath.RankGF2NIST.
type RankMatrix struct {
	Name         string
	Rows         [32]uint32
	ExpectedRank int
}

// RankFixtures are fixed test matrices with hard-coded expected ranks:
// the identity matrix (full rank 32), the zero matrix (rank 0), and a
// matrix with two identical rows (rank 31).
var RankFixtures = []RankMatrix{
	{
		Name:         "identity",
		Rows:         identityRows(),
		ExpectedRank: 32,
	},
	{
		Name:         "zero",
		Rows:         [32]uint32{},
		ExpectedRank: 0,
	},
	{
		Name:         "duplicate-row",
		Rows:         duplicateRowRows(),
		ExpectedRank: 31,
	},
}

func identityRows() [32]uint32 {
	var rows [32]uint32
	for i := range rows {
		rows[i] = uint32(1) << uint(31-i)
	}
	return rows
}

func duplicateRowRows() [32]uint32 {
	rows := identityRows()
	rows[1] = rows[0]
	return rows
}
