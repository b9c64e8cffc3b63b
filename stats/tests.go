// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

// TestFunc is the uniform shape of a statistical test: a pure function
// from a buffer of 64-bit words to a p-value in [0,1].
type TestFunc func(buf []uint64) float64

// Test pairs a test's report name with its implementation. The battery
// always runs and reports in one fixed order: Bytes, LZ-Space, Mono,
// Runs, Blocks, MaxOnes, Matrix.
type Test struct {
	ID string
	Fn TestFunc
}

// Battery is the full seven-test suite, in report order.
var Battery = []Test{
	{ID: "Bytes", Fn: ByteDistribution},
	{ID: "LZ-Space", Fn: LeadingZerosSpacing},
	{ID: "Mono", Fn: Monobit},
	{ID: "Runs", Fn: Runs},
	{ID: "Blocks", Fn: BlockFrequency},
	{ID: "MaxOnes", Fn: LongestRunOfOnes},
	{ID: "Matrix", Fn: BinaryMatrixRank},
}
