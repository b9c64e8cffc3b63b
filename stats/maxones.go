// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

// longestOnesPi are the NIST SP 800-22 reference probabilities for the six
// longest-run-of-ones categories (<=10, 11, 12, 13, 14, >=15) over 8192-bit
// blocks.
var longestOnesPi = [6]float64{0.13448, 0.23272, 0.23898, 0.17245, 0.10381, 0.11756}

const (
	maxOnesBlockWords = 128 // 8192 bits per block
	maxOnesBins       = 6
)

func longestRunBin(longest int) int {
	switch {
	case longest <= 10:
		return 0
	case longest == 11:
		return 1
	case longest == 12:
		return 2
	case longest == 13:
		return 3
	case longest == 14:
		return 4
	default:
		return 5
	}
}

// LongestRunOfOnes is NIST SP 800-22 test 2.4: buf is partitioned into
// 8192-bit blocks (the remainder is discarded), each block's longest run
// of ones is categorized into six bins, and the resulting distribution is
// compared against longestOnesPi via chi-squared. Bits within each word
// are walked MSB-first, and runs span word boundaries within a block.
func LongestRunOfOnes(buf []uint64) float64 {
	return feedAll(NewLongestRunOfOnesOnline(), buf)
}

type maxOnesOnline struct {
	bins       [maxOnesBins]int
	numBlocks  int
	blockWords int
	cur        int
	best       int
}

// NewLongestRunOfOnesOnline returns the streaming form of
// LongestRunOfOnes.
func NewLongestRunOfOnesOnline() Online {
	return &maxOnesOnline{}
}

func (o *maxOnesOnline) Feed(w uint64) {
	for i := 63; i >= 0; i-- {
		if (w>>uint(i))&1 == 1 {
			o.cur++
			if o.cur > o.best {
				o.best = o.cur
			}
		} else {
			o.cur = 0
		}
	}
	o.blockWords++
	if o.blockWords == maxOnesBlockWords {
		o.bins[longestRunBin(o.best)]++
		o.numBlocks++
		o.blockWords = 0
		o.cur = 0
		o.best = 0
	}
}

func (o *maxOnesOnline) Finish() float64 {
	if o.numBlocks == 0 {
		return 0
	}

	var chi2 float64
	for i := 0; i < maxOnesBins; i++ {
		expected := float64(o.numBlocks) * longestOnesPi[i]
		d := float64(o.bins[i]) - expected
		chi2 += d * d / expected
	}
	if chi2 == 0 {
		return 0
	}

	return clampP(gammaUR(5.0/2, chi2/2))
}
