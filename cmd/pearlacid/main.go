// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command pearlacid runs the PRNG statistical test battery against one
// generator from the zoo and prints a NIST-style report. The binary
// exists to make the library runnable end-to-end, not as a polished CLI,
// so flag parsing is the bare stdlib minimum.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pearlacid/pearlacid/bitmath"
	"github.com/pearlacid/pearlacid/output"
	"github.com/pearlacid/pearlacid/rng"
	"github.com/pearlacid/pearlacid/suite"
)

func main() {
	name := flag.String("rng", "Reference", "generator name to test")
	exponent := flag.Uint("exp", 22, "sample size as a power of two (words)")
	weakSeeds := flag.Bool("weak-seeds", false, "scan the static weak-seed candidate list")
	streaming := flag.Bool("stream", false, "pipe generator output through the tests in one pass instead of buffering")
	entropy := flag.String("seed-entropy", "", "test a single seed conditioned from this arbitrary string instead of the default seed list")
	outDir := flag.String("out", ".", "directory for the result file")
	flag.Parse()

	n := 1 << *exponent
	if !*streaming && *exponent >= 28 {
		logrus.WithField("buffer", bitmath.FormatByteCount(uint64(n)*8)).
			Warn("buffered run allocates the full sample per seed; consider -stream")
	}

	generator, err := rng.New(*name, 0)
	if err != nil {
		logrus.WithError(err).Fatal("constructing generator")
	}

	timestamp := time.Now().Format("2006-01-02T15:04:05")
	sink, err := output.NewFileSink(*outDir, *name, timestamp)
	if err != nil {
		logrus.WithError(err).Fatal("opening output sink")
	}
	defer sink.Close()

	opts := suite.Options{WeakSeedScan: *weakSeeds, Streaming: *streaming}
	if *entropy != "" {
		seed := rng.ConditionSeed([]byte(*entropy))
		logrus.WithField("seed", fmt.Sprintf("%#018x", seed)).Info("conditioned seed from entropy string")
		opts.Seeds = []uint64{seed}
	}
	if _, err := suite.Run(generator, *name, n, sink, opts); err != nil {
		sink.ConfigError(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Exit code 0 on normal completion, regardless of verdict.
}
