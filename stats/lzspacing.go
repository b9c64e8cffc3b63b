// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import "math"

// LeadingZerosSpacing measures the spacing between "hits" — words whose
// low k bits are all zero, for a k chosen so hits are expected roughly
// every 2^k words — against the geometric distribution a uniform stream
// predicts, via a 256-bin chi-squared goodness-of-fit.
func LeadingZerosSpacing(buf []uint64) float64 {
	return feedAll(NewLeadingZerosSpacingOnline(len(buf)), buf)
}

const lzNumBins = 256

type lzSpacingOnline struct {
	mask     uint64
	hitProb  float64
	binWidth float64

	bins         [lzNumBins]int
	sinceHit     int
	totalHits    int
	seenFirstHit bool
}

// NewLeadingZerosSpacingOnline returns the streaming form of
// LeadingZerosSpacing. The hit mask and bin scale depend on the sample
// size, so n — the number of words the caller intends to feed — is fixed
// at construction.
func NewLeadingZerosSpacingOnline(n int) Online {
	k := 1
	if n > 0 {
		k = int(math.Ceil(math.Log2(float64(n) / 16384)))
		if k < 1 {
			k = 1
		}
	}
	return &lzSpacingOnline{
		mask:     uint64(1)<<uint(k) - 1,
		hitProb:  1.0 / float64(uint64(1)<<uint(k)),
		binWidth: float64(uint64(4)<<uint(k)) / lzNumBins,
	}
}

func (o *lzSpacingOnline) Feed(w uint64) {
	if w&o.mask != 0 {
		o.sinceHit++
		return
	}
	if o.seenFirstHit {
		bin := int(float64(o.sinceHit) / o.binWidth)
		if bin >= lzNumBins {
			bin = lzNumBins - 1
		}
		o.bins[bin]++
		o.totalHits++
	}
	o.seenFirstHit = true
	o.sinceHit = 0
}

func (o *lzSpacingOnline) Finish() float64 {
	if o.totalHits == 0 {
		return 0
	}

	cdf := func(x float64) float64 {
		return 1 - math.Pow(1-o.hitProb, x)
	}

	var chi2 float64
	for i := 0; i < lzNumBins; i++ {
		lo := float64(i) * o.binWidth
		hi := float64(i+1) * o.binWidth
		var expected float64
		if i == lzNumBins-1 {
			expected = float64(o.totalHits) * (1 - cdf(lo))
		} else {
			expected = float64(o.totalHits) * (cdf(hi) - cdf(lo))
		}
		if expected == 0 {
			continue
		}
		d := float64(o.bins[i]) - expected
		chi2 += d * d / expected
	}
	if chi2 == 0 {
		return 0
	}

	return clampP(gammaLR(255.0/2, chi2/2))
}
