// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/entropy"

// TestResult is the outcome of one NIST SP 800-22 subtest.
type TestResult struct {
	Name   string
	PValue float64
	Pass   bool
}

// RandomnessReport summarizes a statistical randomness battery run.
type RandomnessReport struct {
	Pass    bool
	Tests   []TestResult
	Summary string
}

func fromInternalReport(r entropy.Report) RandomnessReport {
	tests := make([]TestResult, len(r.Tests))
	for i, t := range r.Tests {
		tests[i] = TestResult{Name: t.Name, PValue: t.PValue, Pass: t.Pass}
	}
	return RandomnessReport{Pass: r.Pass, Tests: tests, Summary: r.Summary}
}

// VerifyRandomness runs the NIST SP 800-22 statistical battery subset
// (monobit, chi-squared, runs, autocorrelation at lags 1-15) across
// numSamples samples of sampleSize bytes each. If sample is long enough to
// cover sampleSize*numSamples bytes, it is used directly; otherwise fresh
// entropy is drawn from the pool to fill the gap. Passing sampleSize or
// numSamples <= 0 uses the defaults of 2048 bytes and 5 samples.
func VerifyRandomness(sample []byte, sampleSize, numSamples int) RandomnessReport {
	return fromInternalReport(entropy.VerifyRandomness(sample, sampleSize, numSamples))
}
