// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build amd64

package stats

// rdtsc reads the host's time-stamp counter. Implemented in cycles_amd64.s.
func rdtsc() uint64

// cyclesSupported reports whether AcquireWithCycles can report a real
// cycle count on this platform.
const cyclesSupported = true
