// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !amd64

package stats

// rdtsc has no portable equivalent off x86; cyclesSupported gates callers
// away from treating its return value as meaningful.
func rdtsc() uint64 { return 0 }

const cyclesSupported = false
