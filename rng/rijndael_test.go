// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import "testing"

func TestRijndaelStreamDeterministic(t *testing.T) {
	if !hasAESAcceleration() {
		t.Skip("no AES hardware acceleration on this platform")
	}
	a, err := NewRijndaelStream(42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRijndaelStream(42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("step %d: %#x != %#x", i, x, y)
		}
	}
}

func TestRijndaelStreamSeek(t *testing.T) {
	if !hasAESAcceleration() {
		t.Skip("no AES hardware acceleration on this platform")
	}
	const counter = 17
	fresh, err := NewRijndaelStream(7)
	if err != nil {
		t.Fatal(err)
	}
	fresh.Advance(counter)
	want := fresh.Next()

	seeked, err := NewRijndaelStream(7)
	if err != nil {
		t.Fatal(err)
	}
	seeked.Seek(counter)
	got := seeked.Next()

	if got != want {
		t.Fatalf("Seek(%d) then Next() = %#x, want %#x", counter, got, want)
	}
}
