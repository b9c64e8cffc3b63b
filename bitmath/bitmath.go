// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitmath collects the small numeric and formatting helpers shared
// by the rest of pearlacid: a fast integer log2, two independent GF(2)
// binary-matrix rank implementations, and the byte-count/elapsed-time
// pretty-printers used by the suite driver's output.
package bitmath

import (
	"fmt"
	"math/bits"
	"time"
)

// InvRoot2 is 1/sqrt(2), used by the monobit and runs tests.
const InvRoot2 = 0.7071067811865475

// FastLog2 returns 0 for n <= 1, and ceil(log2(n)) otherwise.
//
// FastLog2(2^k) == k and FastLog2(2^k+1) == k+1 for all k >= 0.
func FastLog2(n uint64) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len64(n - 1))
}

// FormatByteCount renders a byte count using binary (Ki/Mi/Gi) units. The
// unit boundary is inclusive: exactly 1024 bytes renders as "1.00 KiB", not
// "1024.00 B".
func FormatByteCount(numBytes uint64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case numBytes >= gib:
		return fmt.Sprintf("%.2f GiB", float64(numBytes)/gib)
	case numBytes >= mib:
		return fmt.Sprintf("%.2f MiB", float64(numBytes)/mib)
	case numBytes >= kib:
		return fmt.Sprintf("%.2f KiB", float64(numBytes)/kib)
	default:
		return fmt.Sprintf("%.2f B", float64(numBytes))
	}
}

// FormatElapsed renders a duration the way the suite driver's per-test
// output lines expect it.
func FormatElapsed(d time.Duration) string {
	return d.String()
}
