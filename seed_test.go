// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % 256
	}
	sum := checksumCompute(func() []byte {
		b := make([]byte, n-2)
		for i := range b {
			b[i] = byte(i % 256)
		}
		return b
	}())
	out[n-2] = int(sum[0])
	out[n-1] = int(sum[1])
	return out
}

func TestNewSeedFromIndexesRejectsBadWordCount(t *testing.T) {
	_, err := NewSeedFromIndexes(make([]int, 10))
	require.Error(t, err)
	var wcErr *InvalidWordCountError
	require.ErrorAs(t, err, &wcErr)
}

func TestNewSeedFromIndexesRejectsOutOfRangeIndex(t *testing.T) {
	indexes := validIndexes(24)
	indexes[0] = 300
	_, err := NewSeedFromIndexes(indexes)
	require.Error(t, err)
	var idxErr *InvalidIndexError
	require.ErrorAs(t, err, &idxErr)
}

func TestNewSeedFromIndexesAccepts24And36(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	require.Equal(t, 24, s.Len())

	s, err = NewSeedFromIndexes(validIndexes(36))
	require.NoError(t, err)
	require.Equal(t, 36, s.Len())
}

func TestVerifyChecksumAcceptsValidSeed(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	require.True(t, VerifyChecksum(s))
}

func TestVerifyChecksumRejectsTamperedSeed(t *testing.T) {
	indexes := validIndexes(24)
	indexes[0] = (indexes[0] + 1) % 256
	s, err := NewSeedFromIndexes(indexes)
	require.NoError(t, err)
	require.False(t, VerifyChecksum(s))
}

func TestDataIndexesExcludesChecksum(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	require.Len(t, s.DataIndexes(), 22)
}

func TestNewSeedFromSeedWordsPreservesIndexes(t *testing.T) {
	pairs := make([]SeedWord, 24)
	for i := range pairs {
		pairs[i] = SeedWord{Index: IconIndex(i), Word: "x"}
	}
	s, err := NewSeedFromSeedWords(pairs)
	require.NoError(t, err)
	require.Equal(t, IconIndex(5), s.Indexes()[5])
}

func TestNewSeedFromWordsResolvesStrictly(t *testing.T) {
	primary, ok := Render(0, "")
	require.True(t, ok)

	words := make([]string, 24)
	for i := range words {
		w, ok := Render(IconIndex(i), "")
		require.True(t, ok)
		words[i] = w
	}
	_ = primary

	s, err := NewSeedFromWords(words)
	require.NoError(t, err)
	require.Equal(t, IconIndex(0), s.Indexes()[0])
}

func TestNewSeedFromWordsRejectsUnresolvable(t *testing.T) {
	words := make([]string, 24)
	for i := range words {
		words[i] = "definitely-not-a-word"
	}
	_, err := NewSeedFromWords(words)
	require.Error(t, err)
	var unresolvable *UnresolvableError
	require.ErrorAs(t, err, &unresolvable)
}
