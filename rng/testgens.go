// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

// This file implements the fixed/degenerate generators used to anchor the
// statistical tests' extreme-case behavior: constant-zero, constant-one,
// and the alternating patterns. None of them depend on their seed.

// OnlyZero always returns 0.
type OnlyZero struct{}

func NewOnlyZero(uint64) *OnlyZero     { return &OnlyZero{} }
func (*OnlyZero) Name() string         { return "OnlyZero" }
func (*OnlyZero) Next() uint64         { return 0 }
func (*OnlyZero) NextU32() uint32      { return 0 }
func (*OnlyZero) Advance(uint64)       {}
func (*OnlyZero) Reseed(uint64)        {}

// OnlyOne always returns all-ones.
type OnlyOne struct{}

func NewOnlyOne(uint64) *OnlyOne  { return &OnlyOne{} }
func (*OnlyOne) Name() string     { return "OnlyOne" }
func (*OnlyOne) Next() uint64     { return ^uint64(0) }
func (*OnlyOne) NextU32() uint32  { return ^uint32(0) }
func (*OnlyOne) Advance(uint64)   {}
func (*OnlyOne) Reseed(uint64)    {}

// AlternatingBlocks negates its entire state on every call, starting from
// 0: its output alternates between 0 and all-ones every step.
type AlternatingBlocks struct {
	state uint64
}

func NewAlternatingBlocks(uint64) *AlternatingBlocks { return &AlternatingBlocks{} }
func (*AlternatingBlocks) Name() string              { return "AlternatingBlocks" }
func (a *AlternatingBlocks) Reseed(uint64)           { a.state = 0 }

func (a *AlternatingBlocks) Advance(delta uint64) {
	if delta&1 == 1 {
		a.state = ^a.state
	}
}

func (a *AlternatingBlocks) Next() uint64 {
	a.Advance(1)
	return a.state
}

func (a *AlternatingBlocks) NextU32() uint32 {
	return uint32(a.Next())
}

// AlternatingBytes always returns the 0xff00 byte pattern.
type AlternatingBytes struct{}

func NewAlternatingBytes(uint64) *AlternatingBytes { return &AlternatingBytes{} }
func (*AlternatingBytes) Name() string             { return "AlternatingBytes" }
func (*AlternatingBytes) Next() uint64             { return 0xff00ff00ff00ff00 }
func (*AlternatingBytes) NextU32() uint32          { return 0xff00ff00 }
func (*AlternatingBytes) Advance(uint64)           {}
func (*AlternatingBytes) Reseed(uint64)            {}

// AlternatingBits always returns the 0xAAAA... bit pattern.
type AlternatingBits struct{}

func NewAlternatingBits(uint64) *AlternatingBits { return &AlternatingBits{} }
func (*AlternatingBits) Name() string            { return "AlternatingBits" }
func (*AlternatingBits) Next() uint64            { return 0xAAAAAAAAAAAAAAAA }
func (*AlternatingBits) NextU32() uint32         { return 0xAAAAAAAA }
func (*AlternatingBits) Advance(uint64)          {}
func (*AlternatingBits) Reseed(uint64)           {}
