// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

// IconIndex identifies one of 256 immutable visual concepts. Numbering is
// frozen: index assignment never changes once a lookup-table artifact
// ships.
type IconIndex uint8

// SeedWord pairs an icon index with its display word in the language used
// to render it. The display string is reserved for display and round-trip
// purposes only; the canonical value is always the index.
type SeedWord struct {
	Index IconIndex
	Word  string
}

// MasterKey is the 64-byte output of the key derivation pipeline. The
// first 32 bytes are conventionally an encryption key and the last 32 an
// authentication key, but callers may also use the key whole.
type MasterKey [64]byte

// ProfileKey is a 64-byte key derived from a MasterKey and a password,
// providing an independent hidden account per password.
type ProfileKey [64]byte

// Seed is an ordered, immutable sequence of 24 or 36 icon indexes. The
// last two indexes are checksum bytes; the rest are data. A Seed's shape
// (length, index range) is guaranteed valid by construction, but its
// checksum is not: VerifyChecksum must be called explicitly before trusting
// a Seed's provenance.
type Seed struct {
	indexes []IconIndex
}

// Len returns the total number of indexes (24 or 36).
func (s *Seed) Len() int {
	return len(s.indexes)
}

// Indexes returns a copy of the full index sequence, including the
// trailing checksum bytes.
func (s *Seed) Indexes() []IconIndex {
	out := make([]IconIndex, len(s.indexes))
	copy(out, s.indexes)
	return out
}

// DataIndexes returns a copy of the data portion (excludes the trailing
// two checksum indexes).
func (s *Seed) DataIndexes() []IconIndex {
	n := len(s.indexes) - 2
	out := make([]IconIndex, n)
	copy(out, s.indexes[:n])
	return out
}

// ChecksumIndexes returns a copy of the trailing two checksum indexes.
func (s *Seed) ChecksumIndexes() [2]IconIndex {
	n := len(s.indexes)
	return [2]IconIndex{s.indexes[n-2], s.indexes[n-1]}
}

func (s *Seed) dataBytes() []byte {
	n := len(s.indexes) - 2
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(s.indexes[i])
	}
	return b
}

func (s *Seed) fullBytes() []byte {
	b := make([]byte, len(s.indexes))
	for i, idx := range s.indexes {
		b[i] = byte(idx)
	}
	return b
}

func validWordCount(n int) bool {
	return n == 24 || n == 36
}

// NewSeedFromIndexes builds a Seed from raw integer indexes. It validates
// shape only (length and per-index range), not checksum.
func NewSeedFromIndexes(indexes []int) (*Seed, error) {
	if !validWordCount(len(indexes)) {
		return nil, &InvalidWordCountError{Got: len(indexes)}
	}
	out := make([]IconIndex, len(indexes))
	for i, v := range indexes {
		if v < 0 || v > 255 {
			return nil, &InvalidIndexError{Index: v}
		}
		out[i] = IconIndex(v)
	}
	return &Seed{indexes: out}, nil
}

// NewSeedFromSeedWords builds a Seed from (index, word) pairs. The Word
// field is not re-resolved or validated against any table; it is assumed
// to already be paired correctly by the caller (e.g. the output of
// GenerateWords or a prior Resolve call). Use NewSeedFromWords if the
// words need strict resolution against a lookup table.
func NewSeedFromSeedWords(pairs []SeedWord) (*Seed, error) {
	if !validWordCount(len(pairs)) {
		return nil, &InvalidWordCountError{Got: len(pairs)}
	}
	out := make([]IconIndex, len(pairs))
	for i, p := range pairs {
		out[i] = p.Index
	}
	return &Seed{indexes: out}, nil
}

// NewSeedFromWords builds a Seed by strictly resolving each word against
// the active lookup table. Returns UnresolvableError on the first word
// that fails strict resolution.
func NewSeedFromWords(words []string) (*Seed, error) {
	if !validWordCount(len(words)) {
		return nil, &InvalidWordCountError{Got: len(words)}
	}
	out := make([]IconIndex, len(words))
	t := table()
	for i, w := range words {
		idx, ok := t.ResolveStrict(w)
		if !ok {
			return nil, &UnresolvableError{Word: w}
		}
		out[i] = IconIndex(idx)
	}
	return &Seed{indexes: out}, nil
}

// VerifyChecksum recomputes the checksum over a Seed's data indexes and
// compares it against the Seed's trailing two checksum indexes. It never
// fails: a malformed Seed cannot exist (construction already rejected bad
// shape), so this is a pure boolean predicate.
func VerifyChecksum(s *Seed) bool {
	return checksumVerify(s.fullBytes())
}
