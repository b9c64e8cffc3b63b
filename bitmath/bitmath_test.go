// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastLog2(t *testing.T) {
	cases := []struct {
		n    uint64
		want uint
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{1 << 10, 10},
		{1<<10 + 1, 11},
		{1 << 32, 32},
		{1<<32 + 1, 33},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, FastLog2(c.n), "FastLog2(%d)", c.n)
	}
}

func TestFormatByteCount(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1023, "1023.00 B"},
		{1024, "1.00 KiB"},
		{1048576, "1.00 MiB"},
		{1073741824, "1.00 GiB"},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, FormatByteCount(c.n), "FormatByteCount(%d)", c.n)
	}
}
