// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexUpper8 = regexp.MustCompile(`^[0-9A-F]{8}$`)

func TestDeriveMasterKeyDeterministic(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	a, err := DeriveMasterKey(s, "pw")
	require.NoError(t, err)
	b, err := DeriveMasterKey(s, "pw")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDeriveMasterKeyChangesWithPassphrase(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	a, err := DeriveMasterKey(s, "pw1")
	require.NoError(t, err)
	b, err := DeriveMasterKey(s, "pw2")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDeriveMasterKeyRejectsBadChecksum(t *testing.T) {
	indexes := validIndexes(24)
	indexes[0] = (indexes[0] + 1) % 256
	s, err := NewSeedFromIndexes(indexes)
	require.NoError(t, err)

	_, err = DeriveMasterKey(s, "")
	require.Error(t, err)
	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestFingerprintIsUpperHex8Chars(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	fp, err := Fingerprint(s, "")
	require.NoError(t, err)
	require.Regexp(t, hexUpper8, fp)
}

func TestFingerprintDeterministic(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	a, err := Fingerprint(s, "")
	require.NoError(t, err)
	b, err := Fingerprint(s, "")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestFingerprintChangesWithPassphrase(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	withoutPass, err := Fingerprint(s, "")
	require.NoError(t, err)
	withPass, err := Fingerprint(s, "hunter2")
	require.NoError(t, err)
	require.NotEqual(t, withoutPass, withPass)
}

func TestFingerprintRejectsBadChecksum(t *testing.T) {
	indexes := validIndexes(24)
	indexes[0] = (indexes[0] + 1) % 256
	s, err := NewSeedFromIndexes(indexes)
	require.NoError(t, err)

	_, err = Fingerprint(s, "")
	require.Error(t, err)
	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestDeriveProfileIsIndependentPerPassword(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	master, err := DeriveMasterKey(s, "")
	require.NoError(t, err)
	p1 := DeriveProfile(master, "alice")
	p2 := DeriveProfile(master, "bob")
	require.NotEqual(t, p1, p2)
}

func TestDeriveProfileDeterministic(t *testing.T) {
	s, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	master, err := DeriveMasterKey(s, "")
	require.NoError(t, err)
	require.Equal(t, DeriveProfile(master, "alice"), DeriveProfile(master, "alice"))
}

func TestDeriveProfileDependsOnMasterKey(t *testing.T) {
	a, err := NewSeedFromIndexes(validIndexes(24))
	require.NoError(t, err)
	b, err := NewSeedFromIndexes(validIndexes(36))
	require.NoError(t, err)
	m1, err := DeriveMasterKey(a, "")
	require.NoError(t, err)
	m2, err := DeriveMasterKey(b, "")
	require.NoError(t, err)
	require.NotEqual(t, DeriveProfile(m1, "alice"), DeriveProfile(m2, "alice"))
}
