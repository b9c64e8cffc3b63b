// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import (
	"time"

	"github.com/pearlacid/pearlacid/rng"
)

// AcquireWithCycles behaves like Acquire but additionally reports the
// number of CPU cycles the generation loop took, read from the platform
// cycle counter (RDTSC on x86) before and after. The count is
// informational only: never used as a test input, and approximate on
// multi-core systems where the counter isn't synchronized across cores.
// ok is false on platforms without a cycle counter (anything but amd64
// here), in which case cycles is always 0.
func AcquireWithCycles(g rng.Generator, n int) (buf []uint64, speed float64, cycles uint64, ok bool) {
	if !cyclesSupported {
		buf, speed = Acquire(g, n)
		return buf, speed, 0, false
	}
	buf = make([]uint64, n)
	pre := rdtsc()
	start := time.Now()
	for i := range buf {
		buf[i] = g.Next()
	}
	elapsed := time.Since(start).Seconds()
	cycles = rdtsc() - pre
	if elapsed > 0 {
		speed = float64(n*8) / elapsed
	}
	return buf, speed, cycles, true
}

// Throughput measures the same throughput and cycle count as
// AcquireWithCycles without materializing a buffer; the generated words
// are discarded. The generator is left n steps past its current state.
func Throughput(g rng.Generator, n int) (speed float64, cycles uint64, ok bool) {
	pre := rdtsc()
	start := time.Now()
	var sideEffect uint64
	for i := 0; i < n; i++ {
		sideEffect ^= g.Next()
	}
	elapsed := time.Since(start).Seconds()
	cycles = rdtsc() - pre
	runtimeKeepAlive = sideEffect
	if elapsed > 0 {
		speed = float64(n*8) / elapsed
	}
	return speed, cycles, cyclesSupported
}

// runtimeKeepAlive stops the compiler from eliding the generation loop in
// Throughput.
var runtimeKeepAlive uint64
