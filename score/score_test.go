// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStatBounds(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0.5, 0.4},
		{0, 9.9999},
		{1, 9.9999},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, LogStat(c.p), 1e-9, "LogStat(%v)", c.p)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		logStat float64
		want    Class
	}{
		{0, Passed},
		{1.999, Passed},
		{2.0, Marginal},
		{4.0, Marginal},
		{4.001, Failed},
		{9.9999, Failed},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.logStat), "Classify(%v)", c.logStat)
	}
}

func TestVerdictNoFailuresLowMarginal(t *testing.T) {
	run := &SuiteRun{
		PerSeed: []SeedResults{
			{Seed: 0, Results: []Result{
				{TestID: "a", PValue: 0.5},
				{TestID: "b", PValue: 0.5},
			}},
		},
	}
	require.Equal(t, Passed, run.Verdict())
}

func TestVerdictAnyFailureFails(t *testing.T) {
	run := &SuiteRun{
		PerSeed: []SeedResults{
			{Seed: 0, Results: []Result{
				{TestID: "a", PValue: 0.0},
				{TestID: "b", PValue: 0.5},
			}},
		},
	}
	require.Equal(t, Failed, run.Verdict())
}

func TestVerdictTooManyMarginalsFails(t *testing.T) {
	// log_stat in [2,4] at p where -0.2*(log2(p)-1) is in that band;
	// p = 0.1 gives log2(0.1) = -3.32, log_stat = -0.2*(-4.32) = 0.86 (passed).
	// Use a deliberately marginal p: log_stat(p)=3 => log2(min(p,1-p))=1-3/0.2=-14;
	// m=2^-14 ~ 6.1e-5.
	marginalP := 6.1e-5
	results := make([]Result, 0, 100)
	for i := 0; i < 94; i++ {
		results = append(results, Result{TestID: "ok", PValue: 0.5})
	}
	for i := 0; i < 6; i++ {
		results = append(results, Result{TestID: "marginal", PValue: marginalP})
	}
	run := &SuiteRun{PerSeed: []SeedResults{{Seed: 0, Results: results}}}
	require.Equal(t, Failed, run.Verdict(), "6%% marginal should fail the suite")
}

func TestHistogramBinning(t *testing.T) {
	run := &SuiteRun{
		PerSeed: []SeedResults{
			{Seed: 0, Results: []Result{
				{TestID: "a", PValue: 0.5}, // log_stat ~0.4 -> bin 0
				{TestID: "b", PValue: 0.0}, // log_stat 9.9999 -> bin 9
			}},
		},
	}
	hist := run.Histogram()
	assert.Equal(t, 1, hist[0])
	assert.Equal(t, 1, hist[9])
}
