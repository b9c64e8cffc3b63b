// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/mathext"

// gammaLR is the regularized lower incomplete gamma function P(a, x),
// backed by gonum's numerics rather than a hand-rolled series/continued-
// fraction expansion.
func gammaLR(a, x float64) float64 {
	return mathext.GammaIncReg(a, x)
}

// gammaUR is the regularized upper incomplete gamma function Q(a, x) = 1 -
// P(a, x).
func gammaUR(a, x float64) float64 {
	return mathext.GammaIncRegComp(a, x)
}

// clampP clamps a p-value into [0,1] to absorb floating-point drift from
// the special-function approximations.
func clampP(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
