// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package normalize implements the two-mode normalization pipeline the word
// resolver needs: a strict path used before key derivation (NFKC + zero-width
// strip + case fold, nothing else) and a fuzzy path that additionally tries a
// small set of script-specific diacritic and affix fallbacks. The strict path
// must never silently change the meaning of a word; the fuzzy path is only
// ever used to propose candidates that still have to pass the checksum.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// These constants name the code points isZeroWidth strips from every lookup
// key and query string: ZWJ, ZWNJ, soft hyphen, BOM, and the variation
// selector block.
const (
	zwjRune        = '‍' // zero width joiner
	zwnjRune       = '‌' // zero width non-joiner
	softHyphenRune = '­'
	bomRune        = '\uFEFF'
	varSelStart    = '︀'
	varSelEnd      = '️'
)

func isZeroWidth(r rune) bool {
	switch r {
	case zwjRune, zwnjRune, softHyphenRune, bomRune:
		return true
	}
	return r >= varSelStart && r <= varSelEnd
}

var lowerCaser = cases.Lower(language.Und)

func stripZeroWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isZeroWidth(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Strict applies NFKC normalization, zero-width stripping, and Unicode-aware
// lowercasing. It performs no diacritic or affix manipulation: the result is
// suitable as a KDF input or an exact lookup-table key, never a guess.
func Strict(s string) string {
	s = norm.NFKC.String(s)
	s = stripZeroWidth(s)
	s = lowerCaser.String(s)
	return s
}

// script identifies the Unicode script family a fuzzy fallback rule applies
// to. Keeping this as data (rather than per-language branches) follows the
// spec's instruction to key script-specific normalization off Unicode script
// properties instead of hard-coded per-language logic.
type script int

const (
	scriptOther script = iota
	scriptLatin
	scriptGreek
	scriptArabic
	scriptHebrew
	scriptCyrillic
	scriptPreserve // Devanagari, Bengali, Gurmukhi, Tamil, Telugu, Thai: diacritics preserved
)

func dominantScript(s string) script {
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Devanagari, r), unicode.Is(unicode.Bengali, r),
			unicode.Is(unicode.Gurmukhi, r), unicode.Is(unicode.Tamil, r),
			unicode.Is(unicode.Telugu, r), unicode.Is(unicode.Thai, r):
			return scriptPreserve
		case unicode.Is(unicode.Arabic, r):
			return scriptArabic
		case unicode.Is(unicode.Hebrew, r):
			return scriptHebrew
		case unicode.Is(unicode.Greek, r):
			return scriptGreek
		case unicode.Is(unicode.Cyrillic, r):
			return scriptCyrillic
		case unicode.Is(unicode.Latin, r):
			return scriptLatin
		}
	}
	return scriptOther
}

// latinSpecials maps single runes with no combining-mark decomposition onto
// their folded Latin form: ß -> ss, ø -> o, æ -> ae, œ -> oe. Only the
// lowercase forms are listed, since Strict has already lowercased by the
// time Fuzzy runs on a query.
var latinSpecials = map[rune]string{
	'ß': "ss",
	'ø': "o",
	'æ': "ae",
	'œ': "oe",
}

func foldLatinDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := latinSpecials[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()
	// NFKD decomposes accented Latin letters into base + combining marks;
	// drop the combining marks (category Mn) to fold the accent away.
	decomposed := norm.NFKD.String(s)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return norm.NFC.String(out.String())
}

func stripCombiningMarks(s string) string {
	decomposed := norm.NFKD.String(s)
	var out strings.Builder
	out.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out.WriteRune(r)
	}
	return norm.NFC.String(out.String())
}

// Hebrew niqqud and cantillation marks (U+0591-U+05C7) are combining marks
// in category Mn, so stripCombiningMarks already removes them; the Hebrew
// fallback exists as a named step so the candidate order matches the spec's
// enumerated fallback list even though the implementation is shared.
func stripNiqqud(s string) string {
	return stripCombiningMarks(s)
}

// Arabic tashkeel (U+064B-U+065F, U+0670, U+06D6-U+06ED) is also category
// Mn, covered by stripCombiningMarks.
func stripTashkeel(s string) string {
	return stripCombiningMarks(s)
}

func foldCyrillicYo(s string) string {
	return strings.ReplaceAll(s, "ё", "е")
}

func stripArabicPrefix(s string) (string, bool) {
	const prefix = "ال"
	if strings.HasPrefix(s, prefix) && len([]rune(s)) > len([]rune(prefix)) {
		return strings.TrimPrefix(s, prefix), true
	}
	return s, false
}

func stripHebrewPrefix(s string) (string, bool) {
	const prefix = "ה"
	if strings.HasPrefix(s, prefix) && len([]rune(s)) > 1 {
		return strings.TrimPrefix(s, prefix), true
	}
	return s, false
}

func stripFrenchContraction(s string) (string, bool) {
	for _, apost := range []string{"l'", "l’"} {
		if strings.HasPrefix(s, apost) {
			return strings.TrimPrefix(s, apost), true
		}
	}
	return s, false
}

// scandinavianSuffixes covers common Scandinavian/Romanian/Icelandic
// definite-article and noun suffixes. Stripping is a best-effort fallback:
// the checksum remains the backstop for any resulting misresolution.
var scandinavianSuffixes = []string{
	"inn", "in", "ið", // Icelandic definite suffixes
	"en", "et", // Scandinavian definite suffixes
	"ul", "ului", // Romanian definite suffixes
}

func stripNounSuffix(s string) (string, bool) {
	for _, suf := range scandinavianSuffixes {
		if len(s) > len(suf)+1 && strings.HasSuffix(s, suf) {
			return strings.TrimSuffix(s, suf), true
		}
	}
	return s, false
}

// Fuzzy returns ordered fallback candidates for a strict-mode miss, per the
// spec's enumerated fallback list. Only the fallbacks relevant to the
// query's dominant script are attempted; Indic and Thai scripts return no
// candidates since their diacritics are meaning-bearing and must be
// preserved.
func Fuzzy(s string) []string {
	sc := dominantScript(s)
	if sc == scriptPreserve {
		return nil
	}

	var out []string
	seen := map[string]bool{s: true}
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	switch sc {
	case scriptLatin:
		add(foldLatinDiacritics(s))
		if stripped, ok := stripFrenchContraction(s); ok {
			add(stripped)
			add(foldLatinDiacritics(stripped))
		}
		if stripped, ok := stripNounSuffix(s); ok {
			add(stripped)
		}
	case scriptGreek:
		add(stripCombiningMarks(s))
	case scriptArabic:
		add(stripTashkeel(s))
		if stripped, ok := stripArabicPrefix(s); ok {
			add(stripped)
			add(stripTashkeel(stripped))
		}
	case scriptHebrew:
		add(stripNiqqud(s))
		if stripped, ok := stripHebrewPrefix(s); ok {
			add(stripped)
			add(stripNiqqud(stripped))
		}
	case scriptCyrillic:
		add(foldCyrillicYo(s))
	}

	return out
}
