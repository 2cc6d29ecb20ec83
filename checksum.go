// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/checksum"

func checksumCompute(data []byte) [checksum.Size]byte {
	return checksum.Compute(data)
}

func checksumVerify(fullSeed []byte) bool {
	return checksum.Verify(fullSeed)
}
