// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pearlacid/pearlacid/rng"
)

// TestOnlineMatchesSlice feeds the same words to each test's online form
// and its slice form and requires bit-identical p-values, including at
// lengths that leave partial blocks behind.
func TestOnlineMatchesSlice(t *testing.T) {
	lengths := []int{1, 15, 16, 17, 127, 128, 129, 1000, 4096}
	g := rng.NewReference(0xbeef)
	for _, n := range lengths {
		buf := make([]uint64, n)
		for i := range buf {
			buf[i] = g.Next()
		}
		online := NewBattery(n)
		require.Len(t, online, len(Battery))
		for _, w := range buf {
			for _, o := range online {
				o.Feed(w)
			}
		}
		for i, test := range Battery {
			want := test.Fn(buf)
			got := online[i].Finish()
			assert.Equalf(t, want, got, "n=%d: %s online vs slice", n, test.ID)
		}
	}
}

func TestOnlineFinishWithoutFeedIsZero(t *testing.T) {
	for i, o := range NewBattery(0) {
		assert.Equalf(t, 0.0, o.Finish(), "%s", Battery[i].ID)
	}
}
