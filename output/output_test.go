// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkTeesToFile(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir, "TestGen", "2026-01-02T03:04:05")
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.WriteAndPrint("hello suite"))
	sink.Starting("TestGen", 1024)
	sink.Finished("TestGen", "PASSED", 0)

	wantPath := filepath.Join(dir, "pearlacid-2026-01-02T03:04:05-TestGen.txt")
	content, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello suite")
}
