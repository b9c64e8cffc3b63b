// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import (
	"time"

	"github.com/pearlacid/pearlacid/rng"
)

// Acquire fills a buffer of n 64-bit words from g, starting from whatever
// state g is currently in (the caller is expected to have reseeded it),
// and reports the throughput achieved in bytes per second.
func Acquire(g rng.Generator, n int) ([]uint64, float64) {
	buf := make([]uint64, n)
	start := time.Now()
	for i := range buf {
		buf[i] = g.Next()
	}
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return buf, 0
	}
	speed := float64(n*8) / elapsed
	return buf, speed
}
