// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

// Online is the streaming form of a statistical test: words are fed one at
// a time and the p-value is computed at the end, without the test ever
// holding the full buffer. Every online form produces bit-for-bit the same
// p-value as its slice counterpart fed the same words in the same order;
// the slice functions are in fact thin wrappers over these. Finish returns
// 0.0 when no words were fed.
//
// A streaming pass keeps peak memory flat regardless of sample size,
// which matters once buffers reach the multi-GiB range.
type Online interface {
	Feed(w uint64)
	Finish() float64
}

// NewBattery returns a fresh online accumulator for every test in the
// battery, in report order. n is the number of words the caller intends
// to feed; only the leading-zeros spacing test consumes it (its bin scale
// is fixed up front), the rest count for themselves.
func NewBattery(n int) []Online {
	return []Online{
		NewByteDistributionOnline(),
		NewLeadingZerosSpacingOnline(n),
		NewMonobitOnline(),
		NewRunsOnline(),
		NewBlockFrequencyOnline(),
		NewLongestRunOfOnesOnline(),
		NewBinaryMatrixRankOnline(),
	}
}

func feedAll(o Online, buf []uint64) float64 {
	if len(buf) == 0 {
		return 0
	}
	for _, w := range buf {
		o.Feed(w)
	}
	return o.Finish()
}
