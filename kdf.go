// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/complex-gh/universalseed/internal/kdf"
)

// DeriveMasterKey runs the full six-layer key derivation pipeline over a
// seed's data indexes and an optional passphrase. The seed's checksum is
// verified first; a mismatch aborts derivation with ChecksumMismatchError
// rather than deriving a key from an unverified seed.
func DeriveMasterKey(s *Seed, passphrase string) (MasterKey, error) {
	if !checksumVerify(s.fullBytes()) {
		return MasterKey{}, &ChecksumMismatchError{}
	}
	return MasterKey(kdf.DeriveMasterKey(s.dataBytes(), passphrase)), nil
}

// Fingerprint returns a short, stable, 8-character upper-hex identifier for
// a seed. With an empty passphrase it uses the fast path (positional
// binding + HKDF-Extract only, skipping the PBKDF2/Argon2id stretch
// stages); with a non-empty passphrase it runs the full derivation
// pipeline so the fingerprint changes with the passphrase, matching
// DeriveMasterKey. It is meant for display and duplicate-detection, never
// as key material. The seed's checksum is verified first, same as
// DeriveMasterKey.
func Fingerprint(s *Seed, passphrase string) (string, error) {
	if !checksumVerify(s.fullBytes()) {
		return "", &ChecksumMismatchError{}
	}

	data := s.dataBytes()
	var prkBytes []byte
	if passphrase == "" {
		prk := kdf.FastFingerprintPRK(data)
		defer prk.Wipe()
		prkBytes = prk.Bytes()
	} else {
		master := kdf.DeriveMasterKey(data, passphrase)
		prkBytes = master[:]
	}

	return strings.ToUpper(hex.EncodeToString(prkBytes[:4])), nil
}

// DeriveProfile derives an independent profile key from a master key and a
// profile password, using HMAC-SHA-512 keyed by the master key over the
// frozen profile domain separator concatenated with the password.
func DeriveProfile(master MasterKey, password string) ProfileKey {
	mac := hmac.New(sha512.New, master[:])
	mac.Write([]byte(kdf.ProfileDomain))
	mac.Write([]byte(password))
	sum := mac.Sum(nil)
	var out ProfileKey
	copy(out[:], sum)
	return out
}
