// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitmath

// RankGF2Fast computes the rank over GF(2) of a 32x32 bit matrix given as
// 32 rows of 32 bits each (MSB-first column order), via a single forward
// elimination pass. This is the hot-path implementation used by the
// binary-matrix-rank test.
//
// rows is not mutated.
func RankGF2Fast(rows [32]uint32) int {
	m := rows
	rank := 0
	for col := 31; col >= 0; col-- {
		mask := uint32(1) << uint(col)
		pivot := -1
		for r := rank; r < 32; r++ {
			if m[r]&mask != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		m[rank], m[pivot] = m[pivot], m[rank]
		for r := 0; r < 32; r++ {
			if r != rank && m[r]&mask != 0 {
				m[r] ^= m[rank]
			}
		}
		rank++
	}
	return rank
}

// RankGF2NIST computes the same quantity as RankGF2Fast via the classic
// NIST SP 800-22 matrix-rank reference algorithm: forward elimination
// followed by backward elimination to reduced row-echelon form, then a
// count of the resulting diagonal ones. It is intentionally a different
// code path (LSB-first, two elimination passes) from RankGF2Fast so the
// two can be cross-checked against each other in tests.
func RankGF2NIST(rows [32]uint32) int {
	m := rows

	// Forward elimination.
	for i := 0; i < 31; i++ {
		bit := uint32(1) << uint(i)
		if m[i]&bit == 0 {
			for k := i + 1; k < 32; k++ {
				if m[k]&bit != 0 {
					m[i], m[k] = m[k], m[i]
					break
				}
			}
		}
		if m[i]&bit == 0 {
			continue
		}
		for k := i + 1; k < 32; k++ {
			if m[k]&bit != 0 {
				m[k] ^= m[i]
			}
		}
	}

	// Backward elimination.
	for i := 31; i > 0; i-- {
		bit := uint32(1) << uint(i)
		if m[i]&bit == 0 {
			for k := i - 1; k >= 0; k-- {
				if m[k]&bit != 0 {
					m[i], m[k] = m[k], m[i]
					break
				}
			}
		}
		if m[i]&bit == 0 {
			continue
		}
		for k := i - 1; k >= 0; k-- {
			if m[k]&bit != 0 {
				m[k] ^= m[i]
			}
		}
	}

	rank := 0
	for i := 0; i < 32; i++ {
		if m[i]&(uint32(1)<<uint(i)) != 0 {
			rank++
		}
	}
	return rank
}
