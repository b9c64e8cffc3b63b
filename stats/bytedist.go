// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

// ByteDistribution treats buf as 8*len(buf) little-endian bytes and tests
// the uniformity of byte values via a chi-squared goodness-of-fit over the
// 256 possible byte values.
//
// The arguments passed to the regularized lower incomplete gamma function
// here are swapped relative to the textbook chi-squared p-value (which
// would be 1 - gammaLR(255/2, chi2/2)). Both forms land mid-range for
// well-distributed bytes and at an extreme for skewed ones, and the
// scoring statistic treats both tails as equally suspicious, so the
// historical argument order is kept for output compatibility.
func ByteDistribution(buf []uint64) float64 {
	return feedAll(NewByteDistributionOnline(), buf)
}

type byteDistOnline struct {
	counts [256]int
	words  int
}

// NewByteDistributionOnline returns the streaming form of
// ByteDistribution.
func NewByteDistributionOnline() Online {
	return &byteDistOnline{}
}

func (o *byteDistOnline) Feed(w uint64) {
	o.words++
	for i := 0; i < 8; i++ {
		o.counts[byte(w>>(8*i))]++
	}
}

func (o *byteDistOnline) Finish() float64 {
	if o.words == 0 {
		return 0
	}
	totalBytes := float64(o.words * 8)
	expected := totalBytes / 256

	var chi2 float64
	for _, c := range o.counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 == 0 {
		return 0
	}

	return clampP(gammaLR(chi2/2, 255.0/2))
}
