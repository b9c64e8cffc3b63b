// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package output implements the suite driver's output routing. A Sink is
// a line sink that tees to stdout and a result file, plus a small set of
// lifecycle events the driver logs through logrus, kept strictly separate
// from the per-test result lines.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Sink is what the suite driver writes its line-oriented, UTF-8 output
// through. Only cmd/pearlacid and the suite package may use it; stats and
// score stay pure functions over in-memory data.
type Sink interface {
	// WriteAndPrint writes line (with a trailing newline) to stdout and,
	// if a result file is attached, appends it there too.
	WriteAndPrint(line string) error
	// Starting logs that a suite run is beginning, as a structured field
	// set rather than a plain-text line.
	Starting(generatorName string, n int)
	// Finished logs that a suite run completed, with its overall verdict.
	Finished(generatorName string, verdict string, elapsed time.Duration)
	// ConfigError logs a fatal configuration error (e.g. missing AES
	// hardware acceleration) before the process aborts.
	ConfigError(err error)
}

// FileSink tees WriteAndPrint output to stdout and an append-opened
// result file (pearlacid-<timestamp>-<rng_name>.txt), and routes
// lifecycle events through a logrus.Logger.
type FileSink struct {
	stdout io.Writer
	file   *os.File
	log    *logrus.Logger
}

// NewFileSink opens (creating if necessary) a result file named
// "pearlacid-<timestamp>-<rngName>.txt" in dir, and returns a Sink that
// tees every WriteAndPrint line to both it and stdout.
//
// timestamp must already be formatted as YYYY-MM-DDTHH:MM:SS; callers
// supply it rather than this package calling time.Now() itself, keeping
// the sink's behavior deterministic and testable.
func NewFileSink(dir, rngName, timestamp string) (*FileSink, error) {
	path := fmt.Sprintf("%s/pearlacid-%s-%s.txt", dir, timestamp, rngName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("output: opening result file: %w", err)
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &FileSink{stdout: os.Stdout, file: f, log: logger}, nil
}

func (s *FileSink) WriteAndPrint(line string) error {
	if _, err := fmt.Fprintln(s.stdout, line); err != nil {
		return fmt.Errorf("output: writing to stdout: %w", err)
	}
	if s.file != nil {
		if _, err := fmt.Fprintln(s.file, line); err != nil {
			return fmt.Errorf("output: appending to result file: %w", err)
		}
	}
	return nil
}

func (s *FileSink) Starting(generatorName string, n int) {
	s.log.WithFields(logrus.Fields{
		"generator": generatorName,
		"n":         n,
	}).Info("suite starting")
}

func (s *FileSink) Finished(generatorName, verdict string, elapsed time.Duration) {
	s.log.WithFields(logrus.Fields{
		"generator": generatorName,
		"verdict":   verdict,
		"elapsed":   elapsed.String(),
	}).Info("suite finished")
}

func (s *FileSink) ConfigError(err error) {
	s.log.WithError(err).Error("configuration error")
}

// Close releases the underlying result file.
func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
