// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package checksum implements the frozen 16-bit HMAC-SHA-256 checksum that
// binds a seed's data indexes and detects transcription errors.
package checksum

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Domain is the frozen checksum domain separator. It is part of the v2
// compatibility contract: changing it changes every checksum this module
// has ever produced, and requires a new protocol version.
const Domain = "universal-seed-v2-checksum"

// Size is the number of checksum bytes appended to a seed's data indexes.
const Size = 2

// Compute returns the 2-byte checksum for a seed's data indexes.
func Compute(data []byte) [Size]byte {
	mac := hmac.New(sha256.New, []byte(Domain))
	mac.Write(data)
	digest := mac.Sum(nil)
	var out [Size]byte
	copy(out[:], digest[:Size])
	return out
}

// Verify checks a full seed (data indexes followed by the 2 checksum
// bytes). The seed length must be 24 or 36; any other length is rejected
// without a panic.
func Verify(fullSeed []byte) bool {
	n := len(fullSeed)
	if n != 24 && n != 36 {
		return false
	}
	data := fullSeed[:n-Size]
	want := fullSeed[n-Size:]
	got := Compute(data)
	return hmac.Equal(got[:], want)
}
