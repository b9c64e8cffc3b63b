// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pearlacid/pearlacid/rng"
	"github.com/pearlacid/pearlacid/score"
)

// memSink is an in-memory output.Sink for tests, avoiding any file I/O.
type memSink struct {
	lines []string
}

func (m *memSink) WriteAndPrint(line string) error {
	m.lines = append(m.lines, line)
	return nil
}
func (m *memSink) Starting(string, int)                   {}
func (m *memSink) Finished(string, string, time.Duration) {}
func (m *memSink) ConfigError(error)                      {}

func TestRunProducesResultForEverySeedAndTest(t *testing.T) {
	sink := &memSink{}
	g := rng.NewReference(0)
	seeds := []uint64{0, 1, 2}

	run, err := Run(g, "Reference", 256, sink, Options{Seeds: seeds})
	require.NoError(t, err)
	require.Len(t, run.PerSeed, len(seeds))
	for _, sr := range run.PerSeed {
		assert.Lenf(t, sr.Results, 7, "seed %#x", sr.Seed)
	}
	assert.NotEmpty(t, sink.lines)
}

func TestRunOnlyZeroFails(t *testing.T) {
	sink := &memSink{}
	g, err := rng.New("OnlyZero", 0)
	require.NoError(t, err)

	run, err := Run(g, "OnlyZero", 512, sink, Options{Seeds: []uint64{0}})
	require.NoError(t, err)
	assert.Equal(t, score.Failed, run.Verdict())
}

// TestRunRANDUFails exercises the harness against a generator with a
// known structural defect: RANDU's state never flips its low bit, so
// several tests pin their p-values to an extreme for any seed.
func TestRunRANDUFails(t *testing.T) {
	sink := &memSink{}
	g, err := rng.New("RANDU", 0)
	require.NoError(t, err)

	run, err := Run(g, "RANDU", 1<<16, sink, Options{Seeds: []uint64{0x0123456789abcdef, 0xfedcba9876543210}})
	require.NoError(t, err)
	assert.Equal(t, score.Failed, run.Verdict())
}

func TestRunLehmer64Passes(t *testing.T) {
	if testing.Short() {
		t.Skip("2^22-word buffers per seed")
	}
	sink := &memSink{}
	g, err := rng.New("Lehmer64", 1)
	require.NoError(t, err)

	// Seed 0 is excluded: a pure multiplicative generator is stuck at
	// zero there, which is exactly what the weak-seed scan exists to
	// catch.
	run, err := Run(g, "Lehmer64", 1<<22, sink, Options{Seeds: []uint64{1, ^uint64(0)}})
	require.NoError(t, err)
	assert.Equal(t, score.Passed, run.Verdict())
}

// TestStreamingMatchesBuffered runs the same suite twice, once buffered
// and once through the online forms, and requires identical p-values.
func TestStreamingMatchesBuffered(t *testing.T) {
	seeds := []uint64{0, 7, ^uint64(0)}
	const n = 2048

	buffered, err := Run(rng.NewReference(0), "Reference", n, &memSink{}, Options{Seeds: seeds})
	require.NoError(t, err)
	streamed, err := Run(rng.NewReference(0), "Reference", n, &memSink{}, Options{Seeds: seeds, Streaming: true})
	require.NoError(t, err)

	require.Len(t, streamed.PerSeed, len(buffered.PerSeed))
	for i, sr := range buffered.PerSeed {
		for j, r := range sr.Results {
			assert.Equalf(t, r.PValue, streamed.PerSeed[i].Results[j].PValue,
				"seed %#x, %s", sr.Seed, r.TestID)
		}
	}
}

func TestWeakSeedScanReportsDegenerateGenerators(t *testing.T) {
	sink := &memSink{}
	g, err := rng.New("OnlyZero", 0)
	require.NoError(t, err)

	run, err := Run(g, "OnlyZero", 512, sink, Options{Seeds: []uint64{0}, WeakSeedScan: true})
	require.NoError(t, err)
	assert.NotEmpty(t, run.WeakSeeds, "expected OnlyZero to be flagged as weak")

	assert.Condition(t, func() bool {
		for _, line := range sink.lines {
			if len(line) >= len("Weak seeds found:") && line[:len("Weak seeds found:")] == "Weak seeds found:" {
				return true
			}
		}
		return false
	}, "expected a 'Weak seeds found:' line in output")
}
