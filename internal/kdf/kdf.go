// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package kdf implements the six-layer key derivation pipeline: positional
// binding, HKDF-Extract, PBKDF2 stretch, Argon2id stretch, HKDF-Expand. Every
// intermediate buffer is wiped on every exit path via internal/secret.
package kdf

import (
	"crypto/sha512"

	"github.com/complex-gh/universalseed/internal/secret"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// PositionalPayload builds the positional-binding payload: for each data
// index i, the byte pair (pos_i, index_i) with pos_i = i (0-based),
// followed by the passphrase's raw UTF-8 bytes if non-empty. No
// normalization is applied to the passphrase: not NFKC, not case folding,
// not trimming. An empty passphrase produces the same payload as omitting
// it entirely.
func PositionalPayload(dataIndexes []byte, passphrase string) *secret.Buffer {
	n := len(dataIndexes)
	buf := secret.New(n*2 + len(passphrase))
	b := buf.Bytes()
	for i, idx := range dataIndexes {
		b[i*2] = byte(i)
		b[i*2+1] = idx
	}
	if passphrase != "" {
		copy(b[n*2:], passphrase)
	}
	return buf
}

// Extract runs HKDF-Extract over SHA-512 with the frozen extract salt,
// returning the 64-byte pseudorandom key.
func Extract(payload []byte) *secret.Buffer {
	prk := hkdf.Extract(sha512.New, payload, []byte(ExtractSalt))
	return secret.FromBytes(prk)
}

// Stretch runs the two chained stretch stages (PBKDF2-SHA512, then
// Argon2id) over the extracted PRK, wiping the PBKDF2 intermediate before
// returning.
func Stretch(prk []byte) *secret.Buffer {
	s1 := pbkdf2.Key(prk, []byte(PBKDF2Salt), PBKDF2Iterations, PBKDF2DKLen, sha512.New)
	s1Buf := secret.FromBytes(s1)
	defer s1Buf.Wipe()

	s2 := argon2.IDKey(s1, []byte(Argon2Salt), Argon2Time, Argon2Memory, Argon2Threads, Argon2HashLen)
	return secret.FromBytes(s2)
}

// Expand runs HKDF-Expand over SHA-512 with the frozen expand info string,
// returning the 64-byte master key. Since the requested length equals the
// hash's output size, this is exactly the RFC 5869 first block T(1).
func Expand(prk []byte) [ExpandLength]byte {
	r := hkdf.Expand(sha512.New, prk, []byte(ExpandInfo))
	var out [ExpandLength]byte
	_, _ = r.Read(out[:])
	return out
}

// DeriveMasterKey runs the full six-layer pipeline over a seed's data
// indexes and an optional passphrase, returning the 64-byte master key.
// All intermediates are wiped before returning.
func DeriveMasterKey(dataIndexes []byte, passphrase string) [ExpandLength]byte {
	payload := PositionalPayload(dataIndexes, passphrase)
	defer payload.Wipe()

	prk := Extract(payload.Bytes())
	defer prk.Wipe()

	s2 := Stretch(prk.Bytes())
	defer s2.Wipe()

	return Expand(s2.Bytes())
}

// FastFingerprintPRK runs only the positional-binding + HKDF-Extract layers,
// used by the fingerprint fast path when the passphrase is empty.
func FastFingerprintPRK(dataIndexes []byte) *secret.Buffer {
	payload := PositionalPayload(dataIndexes, "")
	defer payload.Wipe()
	return Extract(payload.Bytes())
}
