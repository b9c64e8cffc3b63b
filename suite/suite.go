// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package suite implements the suite driver: it composes speed
// measurement, per-seed test execution, an optional weak-seed scan, and a
// final summary, routing every line of output through an output.Sink.
package suite

import (
	"fmt"
	"time"

	"github.com/pearlacid/pearlacid/bitmath"
	"github.com/pearlacid/pearlacid/corpus"
	"github.com/pearlacid/pearlacid/output"
	"github.com/pearlacid/pearlacid/rng"
	"github.com/pearlacid/pearlacid/score"
	"github.com/pearlacid/pearlacid/stats"
)

// Options configures a suite run. The zero value uses the default seed
// list (extremes plus corpus.DefaultSeeds) and disables the weak-seed
// scan.
type Options struct {
	Seeds        []uint64
	WeakSeedScan bool
	ReferenceBPS float64 // bytes/sec baseline for the same N; measured with a fresh Reference generator when 0

	// Streaming pipes generator output through the tests' online forms in
	// a single pass instead of materializing an 8N-byte buffer per seed.
	// p-values are identical either way; this trades a little dispatch
	// overhead for flat memory on very large N.
	Streaming bool
}

// Run executes the full battery against generator for every seed in
// opts.Seeds (or the default list), emits one line per test result
// through sink, and returns the aggregated score.SuiteRun.
func Run(generator rng.Generator, name string, n int, sink output.Sink, opts Options) (*score.SuiteRun, error) {
	start := time.Now()
	sink.Starting(name, n)

	if err := sink.WriteAndPrint(fmt.Sprintf("Testing: %s", name)); err != nil {
		return nil, err
	}

	seeds := opts.Seeds
	if seeds == nil {
		seeds = corpus.SeedsWithExtremes()
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("suite: no seeds to run")
	}

	run := &score.SuiteRun{GeneratorName: name}

	var buf []uint64
	generator.Reseed(seeds[0])
	genStart := time.Now()
	var bps float64
	var cycles uint64
	var cyclesOK bool
	if opts.Streaming {
		bps, cycles, cyclesOK = stats.Throughput(generator, n)
	} else {
		buf, bps, cycles, cyclesOK = stats.AcquireWithCycles(generator, n)
	}
	genElapsed := time.Since(genStart)
	run.Speed = score.SpeedReport{BytesPerSec: bps, Cycles: cycles, CyclesReported: cyclesOK}
	refBPS := opts.ReferenceBPS
	if refBPS == 0 {
		refBPS, _, _ = stats.Throughput(rng.NewReference(seeds[0]), n)
	}
	if refBPS > 0 {
		run.Speed.RelativeToRef = bps / refBPS * 100
	}
	if err := emitSpeedLine(sink, n, genElapsed, run.Speed); err != nil {
		return nil, err
	}

	for i, seed := range seeds {
		var err error
		switch {
		case opts.Streaming:
			generator.Reseed(seed)
			err = runBatteryStreaming(sink, run, seed, generator, n)
		case i == 0:
			// The speed measurement already produced seed 0's buffer.
			err = runBatteryOn(sink, run, seed, buf)
		default:
			generator.Reseed(seed)
			buf, _ = stats.Acquire(generator, n)
			err = runBatteryOn(sink, run, seed, buf)
		}
		if err != nil {
			return nil, err
		}
	}

	if opts.WeakSeedScan {
		weak, err := weakSeedScan(generator, n)
		if err != nil {
			return nil, err
		}
		run.WeakSeeds = weak
		if err := emitWeakSeedLine(sink, weak); err != nil {
			return nil, err
		}
	}

	verdict := run.Verdict()
	if err := emitSummary(sink, run, verdict); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	if err := sink.WriteAndPrint(fmt.Sprintf("Total time: %s", bitmath.FormatElapsed(elapsed))); err != nil {
		return nil, err
	}
	sink.Finished(name, verdict.String(), elapsed)

	return run, nil
}

// runBatteryOn runs the fixed seven-test battery against buf (already
// generated from generator reseeded with seed) and appends the results to
// run, emitting one formatted line per test.
func runBatteryOn(sink output.Sink, run *score.SuiteRun, seed uint64, buf []uint64) error {
	if err := sink.WriteAndPrint(fmt.Sprintf("Testing for seed: %#018x", seed)); err != nil {
		return err
	}
	results := make([]score.Result, 0, len(stats.Battery))
	for _, test := range stats.Battery {
		testStart := time.Now()
		p := test.Fn(buf)
		elapsed := time.Since(testStart)
		result := score.Result{TestID: test.ID, PValue: p, Elapsed: elapsed}
		results = append(results, result)
		if err := emitResultLine(sink, result); err != nil {
			return err
		}
	}
	run.PerSeed = append(run.PerSeed, score.SeedResults{Seed: seed, Results: results})
	return nil
}

// runBatteryStreaming feeds n words from generator (already reseeded with
// seed) through every test's online form in a single pass. The reported
// per-test time covers only each test's Finish step; the shared feed pass
// is not attributable to a single test.
func runBatteryStreaming(sink output.Sink, run *score.SuiteRun, seed uint64, generator rng.Generator, n int) error {
	if err := sink.WriteAndPrint(fmt.Sprintf("Testing for seed: %#018x", seed)); err != nil {
		return err
	}
	online := stats.NewBattery(n)
	for i := 0; i < n; i++ {
		w := generator.Next()
		for _, o := range online {
			o.Feed(w)
		}
	}
	results := make([]score.Result, 0, len(online))
	for i, o := range online {
		testStart := time.Now()
		p := o.Finish()
		elapsed := time.Since(testStart)
		result := score.Result{TestID: stats.Battery[i].ID, PValue: p, Elapsed: elapsed}
		results = append(results, result)
		if err := emitResultLine(sink, result); err != nil {
			return err
		}
	}
	run.PerSeed = append(run.PerSeed, score.SeedResults{Seed: seed, Results: results})
	return nil
}

// weakSeedScan runs the full battery for every seed in
// corpus.WeakSeedCandidates and reports the ones where any single test
// comes back Failed.
func weakSeedScan(generator rng.Generator, n int) ([]uint64, error) {
	var weak []uint64
	for _, seed := range corpus.WeakSeedCandidates {
		generator.Reseed(seed)
		buf, _ := stats.Acquire(generator, n)
		for _, test := range stats.Battery {
			p := test.Fn(buf)
			if score.Classify(score.LogStat(p)) == score.Failed {
				weak = append(weak, seed)
				break
			}
		}
	}
	return weak, nil
}

func emitResultLine(sink output.Sink, r score.Result) error {
	logStat := score.LogStat(r.PValue)
	class := score.Classify(logStat)
	line := fmt.Sprintf("%-10s: Time: %s     p: %.6f     pls: %.4f   - %s",
		r.TestID, bitmath.FormatElapsed(r.Elapsed), r.PValue, logStat, class)
	return sink.WriteAndPrint(line)
}

func emitSpeedLine(sink output.Sink, n int, elapsed time.Duration, s score.SpeedReport) error {
	line := fmt.Sprintf("Generated %s test data in %s. (Speed: %s/s  (%.4f%%))",
		bitmath.FormatByteCount(uint64(n)*8), bitmath.FormatElapsed(elapsed),
		bitmath.FormatByteCount(uint64(s.BytesPerSec)), s.RelativeToRef)
	if s.CyclesReported {
		line += fmt.Sprintf(" (%d cycles (%.4f cycles/byte))",
			s.Cycles, float64(s.Cycles)/(float64(n)*8))
	}
	return sink.WriteAndPrint(line)
}

func emitWeakSeedLine(sink output.Sink, weak []uint64) error {
	if len(weak) == 0 {
		return sink.WriteAndPrint("Weak seeds found: none")
	}
	return sink.WriteAndPrint(fmt.Sprintf("Weak seeds found: %v", weak))
}

func emitSummary(sink output.Sink, run *score.SuiteRun, verdict score.Class) error {
	if err := sink.WriteAndPrint(fmt.Sprintf("Summary for: %s", run.GeneratorName)); err != nil {
		return err
	}
	hist := run.Histogram()
	line := ""
	for i, count := range hist {
		suffix := ""
		if i == len(hist)-1 {
			suffix = "+"
		}
		line += fmt.Sprintf("%d%s: %d|", i, suffix, count)
	}
	if err := sink.WriteAndPrint(line); err != nil {
		return err
	}
	return sink.WriteAndPrint(fmt.Sprintf("Overall verdict: %s", verdict))
}
