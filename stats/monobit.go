// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/bits"

	"github.com/pearlacid/pearlacid/bitmath"
)

// Monobit tests the overall balance of 1-bits against 0-bits across the
// whole buffer: a uniform stream's popcount per word should average 32,
// so the summed signed deviation should be small relative to sqrt(N*64).
func Monobit(buf []uint64) float64 {
	return feedAll(NewMonobitOnline(), buf)
}

type monobitOnline struct {
	diff  int64
	words int
}

// NewMonobitOnline returns the streaming form of Monobit.
func NewMonobitOnline() Online {
	return &monobitOnline{}
}

func (o *monobitOnline) Feed(w uint64) {
	o.words++
	o.diff += int64(bits.OnesCount64(w)) - 32
}

func (o *monobitOnline) Finish() float64 {
	if o.words == 0 {
		return 0
	}
	absDiff := math.Abs(float64(o.diff))
	p := math.Erfc(absDiff / math.Sqrt(float64(o.words)*64) * bitmath.InvRoot2)
	return clampP(p)
}
