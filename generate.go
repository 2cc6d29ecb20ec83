// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/entropy"

// GenerateWords draws validated entropy, maps it onto wordCount-2 data
// indexes, appends the computed checksum, and returns the resulting Seed.
// wordCount must be 24 or 36. Entropy is drawn and statistically validated
// by internal/entropy.GenerateValidated; exhausting its retry budget
// returns EntropyUnavailableError and no Seed.
func GenerateWords(wordCount int) (*Seed, error) {
	if !validWordCount(wordCount) {
		return nil, &InvalidWordCountError{Got: wordCount}
	}
	dataLen := wordCount - 2

	indexes := make([]byte, 0, dataLen)
	for len(indexes) < dataLen {
		sample, err := entropy.GenerateValidated(nil)
		if err != nil {
			return nil, &EntropyUnavailableError{Attempts: entropy.MaxRetries}
		}
		indexes = append(indexes, sample[:]...)
	}
	indexes = indexes[:dataLen]

	sum := checksumCompute(indexes)
	full := make([]int, wordCount)
	for i, b := range indexes {
		full[i] = int(b)
	}
	full[dataLen] = int(sum[0])
	full[dataLen+1] = int(sum[1])

	return NewSeedFromIndexes(full)
}

// GenerateWordsWithMouseEntropy behaves like GenerateWords but additionally
// folds a caller-collected MouseEntropyPool digest in as the pool's
// caller-supplied source.
func GenerateWordsWithMouseEntropy(wordCount int, mouse *MouseEntropyPool) (*Seed, error) {
	if !validWordCount(wordCount) {
		return nil, &InvalidWordCountError{Got: wordCount}
	}
	dataLen := wordCount - 2

	var extra []byte
	if mouse != nil {
		digest := mouse.Digest()
		extra = digest[:]
	}

	indexes := make([]byte, 0, dataLen)
	for len(indexes) < dataLen {
		sample, err := entropy.GenerateValidated(extra)
		if err != nil {
			return nil, &EntropyUnavailableError{Attempts: entropy.MaxRetries}
		}
		indexes = append(indexes, sample[:]...)
	}
	indexes = indexes[:dataLen]

	sum := checksumCompute(indexes)
	full := make([]int, wordCount)
	for i, b := range indexes {
		full[i] = int(b)
	}
	full[dataLen] = int(sum[0])
	full[dataLen+1] = int(sum[1])

	return NewSeedFromIndexes(full)
}
