// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/pearlacid/pearlacid/bitmath"
)

// matrixRankPi is the expected distribution over {rank=32, rank=31,
// rank<=30} for a uniformly random 32x32 GF(2) matrix (NIST SP 800-22
// test 2.5).
var matrixRankPi = [3]float64{0.2888, 0.5776, 0.1336}

const matrixChunkWords = 16 // 16 words = 32 rows of 32 bits = 1024 bits

func matrixRankBin(rank int) int {
	switch {
	case rank == 32:
		return 0
	case rank == 31:
		return 1
	default:
		return 2
	}
}

// buildRows splits a 16-word chunk into the 32 rows of a 32x32 GF(2)
// matrix: row 2i is the high 32 bits of word i, row 2i+1 the low 32 bits.
func buildRows(chunk []uint64) [32]uint32 {
	var rows [32]uint32
	for i, w := range chunk {
		rows[2*i] = uint32(w >> 32)
		rows[2*i+1] = uint32(w)
	}
	return rows
}

// BinaryMatrixRank is NIST SP 800-22 test 2.5: buf is partitioned into
// 1024-bit (16-word) chunks, each interpreted as a 32x32 GF(2) matrix
// whose rank is computed via bitmath.RankGF2Fast, binned into
// {rank=32, rank=31, rank<=30}, and compared against matrixRankPi.
//
// Unlike the other chi-squared tests here, the p-value is not derived from
// an incomplete gamma function: with two degrees of freedom the chi-squared
// survival function collapses to exp(-chi2/2).
func BinaryMatrixRank(buf []uint64) float64 {
	return feedAll(NewBinaryMatrixRankOnline(), buf)
}

type matrixRankOnline struct {
	bins      [3]int
	numChunks int
	pending   [matrixChunkWords]uint64
	fill      int
}

// NewBinaryMatrixRankOnline returns the streaming form of
// BinaryMatrixRank.
func NewBinaryMatrixRankOnline() Online {
	return &matrixRankOnline{}
}

func (o *matrixRankOnline) Feed(w uint64) {
	o.pending[o.fill] = w
	o.fill++
	if o.fill == matrixChunkWords {
		rank := bitmath.RankGF2Fast(buildRows(o.pending[:]))
		o.bins[matrixRankBin(rank)]++
		o.numChunks++
		o.fill = 0
	}
}

func (o *matrixRankOnline) Finish() float64 {
	if o.numChunks == 0 {
		return 0
	}

	var chi2 float64
	for i := 0; i < 3; i++ {
		expected := float64(o.numChunks) * matrixRankPi[i]
		d := float64(o.bins[i]) - expected
		chi2 += d * d / expected
	}
	if chi2 == 0 {
		return 0
	}

	return clampP(math.Exp(-chi2 / 2))
}
