// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/entropybits"

// EntropyBits estimates the total security level in bits of a seed plus an
// optional passphrase: the seed's fixed contribution (176 for 24 words, 272
// for 36) plus the passphrase's estimated per-character contribution.
func EntropyBits(s *Seed, passphrase string) float64 {
	seedBits, _ := entropybits.SeedBits(s.Len())
	return seedBits + entropybits.PassphraseBits(passphrase)
}
