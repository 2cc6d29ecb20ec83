// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package universalseed implements a visual-plus-multilingual seed-phrase
// and key-derivation library for cryptographic wallets. A seed is a
// sequence of 24 or 36 icon indexes (0-255), recorded as words in any
// supported language, as emoji, or as raw icon selections. The package
// verifies the seed's built-in checksum, then deterministically derives a
// 64-byte master key from the seed and an optional passphrase.
// Independent profile keys can be derived from the master key to provide
// multiple hidden accounts per seed.
//
// The package does not implement a wallet protocol, perform network I/O,
// curate word lists, or persist keys: callers own storage decisions and
// supply the lookup-table artifact (or use the bundled demonstration
// artifact) that the resolver and seed renderer consume.
package universalseed
