// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrictLowercasesAndStripsZeroWidth(t *testing.T) {
	require.Equal(t, "cat", Strict("CAT"))
	require.Equal(t, "cat", Strict("ca‍t"))
	require.Equal(t, "cafe", Strict("cafe\uFEFF"))
}

func TestStrictIsIdempotent(t *testing.T) {
	s := Strict("Montaña")
	require.Equal(t, s, Strict(s))
}

func TestFuzzyLatinFoldsDiacritics(t *testing.T) {
	candidates := Fuzzy(Strict("montaña"))
	require.Contains(t, candidates, "montana")
}

func TestFuzzyLatinSpecials(t *testing.T) {
	candidates := Fuzzy(Strict("straße"))
	require.Contains(t, candidates, "strasse")
}

func TestFuzzyCyrillicFoldsYo(t *testing.T) {
	candidates := Fuzzy(Strict("ёлка"))
	require.Contains(t, candidates, "елка")
}

func TestFuzzyArabicStripsTashkeelAndPrefix(t *testing.T) {
	candidates := Fuzzy(Strict("القمر"))
	require.NotEmpty(t, candidates)
	require.Contains(t, candidates, "قمر")

	withTashkeel := Fuzzy(Strict("قَمَر"))
	require.Contains(t, withTashkeel, "قمر")
}

func TestFuzzyHebrewStripsPrefix(t *testing.T) {
	candidates := Fuzzy(Strict("השמש"))
	require.Contains(t, candidates, "שמש")
}

func TestFuzzyFrenchContraction(t *testing.T) {
	candidates := Fuzzy(Strict("l'arbre"))
	require.Contains(t, candidates, "arbre")
}

func TestFuzzyPreservesIndicScripts(t *testing.T) {
	candidates := Fuzzy(Strict("सूरज"))
	require.Nil(t, candidates)
}

func TestFuzzyNoCandidatesForPlainWord(t *testing.T) {
	candidates := Fuzzy(Strict("xyz"))
	require.Empty(t, candidates)
}
