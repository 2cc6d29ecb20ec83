// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/kdf"

// KDFParams describes the frozen key-derivation parameters in force. It is
// informational only: callers cannot tune these values, and a parameter
// change requires a new protocol version.
type KDFParams struct {
	Domain           string
	PBKDF2Iterations int
	Argon2Time       int
	Argon2MemoryKiB  int
	Argon2Threads    int
	MasterKeyLength  int
}

// KDFInfo returns the active KDF parameter set.
func KDFInfo() KDFParams {
	return KDFParams{
		Domain:           kdf.Domain,
		PBKDF2Iterations: kdf.PBKDF2Iterations,
		Argon2Time:       kdf.Argon2Time,
		Argon2MemoryKiB:  kdf.Argon2Memory,
		Argon2Threads:    kdf.Argon2Threads,
		MasterKeyLength:  kdf.ExpandLength,
	}
}
