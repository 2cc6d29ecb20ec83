// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import (
	"sync"
	"sync/atomic"

	"github.com/complex-gh/universalseed/internal/wordtable"
)

var activeTable atomic.Pointer[wordtable.Table]
var loadMu sync.Mutex

// table returns the active lookup table, lazily initializing it to the
// bundled demonstration artifact on first use.
func table() *wordtable.Table {
	if t := activeTable.Load(); t != nil {
		return t
	}
	loadMu.Lock()
	defer loadMu.Unlock()
	if t := activeTable.Load(); t != nil {
		return t
	}
	t := wordtable.Default()
	activeTable.Store(t)
	return t
}

// LoadWordTable replaces the active lookup table with one loaded from an
// external artifact file, e.g. the full production word list. It must be
// called before any resolve/search/generate call that should observe the
// new table; later calls on goroutines already holding a reference to the
// old table are unaffected, matching the package's immutable-once-loaded
// table convention.
func LoadWordTable(path string) error {
	t, err := wordtable.LoadFile(path)
	if err != nil {
		return &LookupTableMissingError{Err: err}
	}
	activeTable.Store(t)
	return nil
}

// Resolve looks up a single word against the active table, trying a
// strict match first and falling back to script-aware fuzzy folding
// (diacritic stripping, affix removal, case normalization) when the
// strict match misses. It returns UnresolvableError if neither mode
// matches.
func Resolve(word string) (IconIndex, error) {
	idx, _, ok := table().ResolveFuzzy(word)
	if !ok {
		return 0, &UnresolvableError{Word: word}
	}
	return IconIndex(idx), nil
}

// ResolveMany resolves a list of words in order, stopping at the first
// unresolvable word.
func ResolveMany(words []string) ([]IconIndex, error) {
	out := make([]IconIndex, len(words))
	for i, w := range words {
		idx, err := Resolve(w)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// Search returns up to limit autocomplete candidates for a prefix, ordered
// lexicographically and deduplicated by icon index.
func Search(prefix string, limit int) []wordtable.SearchResult {
	return table().Search(prefix, limit)
}

// Languages returns the ordered list of languages in the active table.
func Languages() []wordtable.LanguageInfo {
	return table().Languages()
}

// Render returns the display word for an icon index in the given language
// code. If langCode is empty, the table's first language is used.
func Render(idx IconIndex, langCode string) (string, bool) {
	if langCode == "" {
		langCode = table().FirstLanguageCode()
	}
	return table().PrimaryWord(uint8(idx), langCode)
}

// Words renders every index of a Seed as SeedWord pairs in the given
// language. If a given index has no entry for that language (should not
// happen for a well-formed artifact), the Word field is left empty.
func Words(s *Seed, langCode string) []SeedWord {
	indexes := s.Indexes()
	out := make([]SeedWord, len(indexes))
	for i, idx := range indexes {
		w, _ := Render(idx, langCode)
		out[i] = SeedWord{Index: idx, Word: w}
	}
	return out
}
