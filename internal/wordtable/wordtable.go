// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package wordtable loads the frozen lookup-table artifact (languages plus
// a flat normalized-key->index map) and exposes the primitives the resolver
// and seed renderer need: strict lookup, fuzzy fallback lookup, prefix
// search, and primary-word rendering.
//
// The full 42-language, ~38,730-entry production artifact is emitted by a
// word-list curation compiler that is out of scope for this module (see
// spec.md Non-goals). This package ships a smaller demonstration artifact
// covering 9 languages across every script family the fuzzy resolver needs
// to exercise; callers with the production artifact load it with LoadFile
// or LoadReader without any code change, since both consume the same
// documented JSON shape.
package wordtable

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/complex-gh/universalseed/internal/normalize"
)

//go:embed data/words.json
var embeddedFS embed.FS

const NumIndexes = 256

// Language is a loaded wordlist for one language: 256 accepted-word lists,
// first entry of each being the primary display word.
type Language struct {
	Code  string
	Label string
	Words [NumIndexes][]string
}

// Table is the frozen, process-wide lookup table. Safe for concurrent
// readers once Load* returns; it is never mutated afterward.
type Table struct {
	keys       map[string]uint8
	languages  []Language
	byCode     map[string]*Language
	sortedKeys []string
}

// SearchResult is one autocomplete hit.
type SearchResult struct {
	Word  string
	Index uint8
}

// LanguageInfo is the ordered (code, label) pair exposed by Languages().
type LanguageInfo struct {
	Code  string
	Label string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded demonstration artifact, loading it exactly
// once. A load failure here indicates the embedded asset itself is
// corrupt -- a build-time invariant, not a runtime condition callers can
// recover from -- so Default panics rather than returning an error, the
// same convention wordlist-embedding libraries in the ecosystem use for
// their bundled assets.
func Default() *Table {
	defaultOnce.Do(func() {
		f, err := embeddedFS.Open("data/words.json")
		if err != nil {
			defaultErr = err
			return
		}
		defer f.Close()
		defaultTable, defaultErr = LoadReader(f)
	})
	if defaultErr != nil {
		panic(fmt.Errorf("wordtable: embedded artifact is malformed: %w", defaultErr))
	}
	return defaultTable
}

// LoadFile loads a lookup-table artifact from disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordtable: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader loads and validates a lookup-table artifact.
func LoadReader(r io.Reader) (*Table, error) {
	var a artifact
	dec := json.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("wordtable: decode artifact: %w", err)
	}
	return build(&a)
}

func build(a *artifact) (*Table, error) {
	if len(a.Languages) == 0 {
		return nil, fmt.Errorf("wordtable: artifact has no languages")
	}

	t := &Table{
		keys:   make(map[string]uint8, len(a.Keys)),
		byCode: make(map[string]*Language, len(a.Languages)),
	}

	t.languages = make([]Language, len(a.Languages))
	for i, le := range a.Languages {
		lang := Language{Code: le.Code, Label: le.Label, Words: le.Words}
		for idx, variants := range lang.Words {
			if len(variants) == 0 {
				return nil, fmt.Errorf("wordtable: language %q index %d has no accepted words", le.Code, idx)
			}
		}
		t.languages[i] = lang
		t.byCode[lang.Code] = &t.languages[i]
	}

	for key, idx := range a.Keys {
		if idx < 0 || idx > 255 {
			return nil, fmt.Errorf("wordtable: key %q maps to out-of-range index %d", key, idx)
		}
		if existing, ok := t.keys[key]; ok && existing != uint8(idx) {
			return nil, fmt.Errorf("wordtable: duplicate key %q maps to both %d and %d", key, existing, idx)
		}
		t.keys[key] = uint8(idx)
	}

	// Every canonical word in every language's list must have a
	// corresponding entry in the flat key map (spec.md 4.1 invariant).
	for _, lang := range t.languages {
		for _, variants := range lang.Words {
			for _, w := range variants {
				norm := normalize.Strict(w)
				if _, ok := t.keys[norm]; !ok {
					return nil, fmt.Errorf("wordtable: word %q (language %s) missing from keys map", w, lang.Code)
				}
			}
		}
	}

	t.sortedKeys = make([]string, 0, len(t.keys))
	for k := range t.keys {
		t.sortedKeys = append(t.sortedKeys, k)
	}
	sort.Strings(t.sortedKeys)

	return t, nil
}

// ResolveStrict performs steps 1-3 of normalization and an exact lookup.
// No diacritic or affix manipulation: a miss returns false rather than a
// guess.
func (t *Table) ResolveStrict(word string) (uint8, bool) {
	idx, ok := t.keys[normalize.Strict(word)]
	return idx, ok
}

// ResolveFuzzy tries a strict lookup first, then the script-appropriate
// fallback candidates in order, returning the first hit. Returns the index,
// whether any candidate matched, and which candidate string matched for
// callers that want to surface what got substituted.
func (t *Table) ResolveFuzzy(word string) (idx uint8, matched string, ok bool) {
	norm := normalize.Strict(word)
	if idx, ok := t.keys[norm]; ok {
		return idx, word, true
	}
	for _, candidate := range normalize.Fuzzy(norm) {
		if idx, ok := t.keys[candidate]; ok {
			return idx, candidate, true
		}
	}
	return 0, "", false
}

// Search performs a binary-search prefix scan over the sorted key list,
// deduplicates by icon index, and returns up to limit results ordered by
// word.
func (t *Table) Search(prefix string, limit int) []SearchResult {
	if limit <= 0 {
		return nil
	}
	norm := normalize.Strict(prefix)
	start := sort.SearchStrings(t.sortedKeys, norm)

	seen := make(map[uint8]bool)
	var results []SearchResult
	for i := start; i < len(t.sortedKeys); i++ {
		key := t.sortedKeys[i]
		if len(key) < len(norm) || key[:len(norm)] != norm {
			break
		}
		idx := t.keys[key]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		results = append(results, SearchResult{Word: key, Index: idx})
		if len(results) >= limit {
			break
		}
	}
	return results
}

// PrimaryWord returns the primary display word for an icon index in the
// given language code.
func (t *Table) PrimaryWord(idx uint8, langCode string) (string, bool) {
	lang, ok := t.byCode[langCode]
	if !ok {
		return "", false
	}
	words := lang.Words[idx]
	if len(words) == 0 {
		return "", false
	}
	return words[0], true
}

// Languages returns the ordered (code, label) list in artifact order.
func (t *Table) Languages() []LanguageInfo {
	out := make([]LanguageInfo, len(t.languages))
	for i, l := range t.languages {
		out[i] = LanguageInfo{Code: l.Code, Label: l.Label}
	}
	return out
}

// FirstLanguageCode returns the artifact's first language code, used when a
// caller omits an explicit language (spec.md's "first supported language").
func (t *Table) FirstLanguageCode() string {
	if len(t.languages) == 0 {
		return ""
	}
	return t.languages[0].Code
}
