// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package kdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func data(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i * 7)
	}
	return b
}

func TestPositionalPayloadBindsPositionToIndex(t *testing.T) {
	buf := PositionalPayload(data(4), "")
	defer buf.Wipe()
	b := buf.Bytes()
	require.Len(t, b, 8)
	for i := 0; i < 4; i++ {
		require.Equal(t, byte(i), b[i*2])
	}
}

func TestPositionalPayloadEmptyPassphraseMatchesOmitted(t *testing.T) {
	a := PositionalPayload(data(4), "")
	defer a.Wipe()
	b := PositionalPayload(data(4), "")
	defer b.Wipe()
	require.Equal(t, a.Bytes(), b.Bytes())
	require.Len(t, a.Bytes(), 8)
}

func TestPositionalPayloadAppendsRawPassphrase(t *testing.T) {
	buf := PositionalPayload(data(2), "hunter2")
	defer buf.Wipe()
	require.Equal(t, "hunter2", string(buf.Bytes()[4:]))
}

func TestDeriveMasterKeyIsDeterministic(t *testing.T) {
	a := DeriveMasterKey(data(22), "pw")
	b := DeriveMasterKey(data(22), "pw")
	require.Equal(t, a, b)
}

func TestDeriveMasterKeyDependsOnPassphrase(t *testing.T) {
	a := DeriveMasterKey(data(22), "pw1")
	b := DeriveMasterKey(data(22), "pw2")
	require.NotEqual(t, a, b)
}

func TestDeriveMasterKeyDependsOnData(t *testing.T) {
	a := DeriveMasterKey(data(22), "pw")
	other := data(22)
	other[0] ^= 0xff
	b := DeriveMasterKey(other, "pw")
	require.NotEqual(t, a, b)
}

func TestFastFingerprintPRKIsCheaperPathAndDeterministic(t *testing.T) {
	a := FastFingerprintPRK(data(22))
	defer a.Wipe()
	b := FastFingerprintPRK(data(22))
	defer b.Wipe()
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestExtractProducesFullWidthPRK(t *testing.T) {
	prk := Extract([]byte("payload"))
	defer prk.Wipe()
	require.Len(t, prk.Bytes(), 64)
}

func TestStretchOutputLength(t *testing.T) {
	prk := Extract([]byte("payload"))
	defer prk.Wipe()
	s := Stretch(prk.Bytes())
	defer s.Wipe()
	require.Len(t, s.Bytes(), Argon2HashLen)
}
