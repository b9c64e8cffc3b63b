// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import "math/bits"

// BlockFrequency is the NIST-style block bit-frequency test applied with
// a block size of one 64-bit word: each word contributes
// (popcount/64 - 0.5)^2 to a running chi-squared statistic. The p-value
// is the standard upper-incomplete-gamma form, so a constant all-zeros or
// all-ones stream pins it to 0.0.
func BlockFrequency(buf []uint64) float64 {
	return feedAll(NewBlockFrequencyOnline(), buf)
}

type blockFreqOnline struct {
	sum   float64
	words int
}

// NewBlockFrequencyOnline returns the streaming form of BlockFrequency.
func NewBlockFrequencyOnline() Online {
	return &blockFreqOnline{}
}

func (o *blockFreqOnline) Feed(w uint64) {
	o.words++
	frac := float64(bits.OnesCount64(w))/64 - 0.5
	o.sum += frac * frac
}

func (o *blockFreqOnline) Finish() float64 {
	if o.words == 0 {
		return 0
	}
	chi2 := o.sum * 4 * 64
	if chi2 == 0 {
		return 0
	}
	return clampP(gammaUR(float64(o.words)/2, chi2/2))
}
