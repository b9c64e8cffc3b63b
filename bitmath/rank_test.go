// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pearlacid/pearlacid/corpus"
)

func TestRankFixtures(t *testing.T) {
	for _, fx := range corpus.RankFixtures {
		fx := fx
		t.Run(fx.Name, func(t *testing.T) {
			assert.Equalf(t, fx.ExpectedRank, RankGF2Fast(fx.Rows), "RankGF2Fast(%s)", fx.Name)
			assert.Equalf(t, fx.ExpectedRank, RankGF2NIST(fx.Rows), "RankGF2NIST(%s)", fx.Name)
		})
	}
}

// TestRankImplementationsAgree cross-checks RankGF2Fast against
// RankGF2NIST across a spread of pseudo-random matrices.
func TestRankImplementationsAgree(t *testing.T) {
	var state uint64 = 0x2545F4914F6CDD1D
	next := func() uint32 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return uint32(state)
	}
	for trial := 0; trial < 200; trial++ {
		var rows [32]uint32
		for i := range rows {
			rows[i] = next()
		}
		fast := RankGF2Fast(rows)
		nist := RankGF2NIST(rows)
		assert.Equalf(t, nist, fast, "trial %d: RankGF2Fast vs RankGF2NIST for rows %v", trial, rows)
	}
}
