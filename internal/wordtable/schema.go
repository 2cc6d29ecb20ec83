// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package wordtable

// artifact mirrors the words.json document shape described in the external
// interfaces section: a flat key->index map plus per-language word lists,
// first entry of each per-index list being the primary display word.
type artifact struct {
	Languages []languageEntry  `json:"languages"`
	Keys      map[string]int   `json:"keys"`
}

type languageEntry struct {
	Code  string     `json:"code"`
	Label string     `json:"label"`
	Words [256][]string `json:"words"`
}
