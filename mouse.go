// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package universalseed

import "github.com/complex-gh/universalseed/internal/entropy"

// MouseEntropyPool accumulates unique cursor positions for callers whose
// generation UI wants to fold user-supplied randomness into seed
// generation. It is not internally locked; callers must serialize access.
type MouseEntropyPool struct {
	p *entropy.MousePool
}

// NewMouseEntropyPool returns an empty pool.
func NewMouseEntropyPool() *MouseEntropyPool {
	return &MouseEntropyPool{p: entropy.NewMousePool()}
}

// AddSample records a cursor position if it hasn't been seen before,
// returning false for a repeat.
func (m *MouseEntropyPool) AddSample(x, y int32) bool {
	return m.p.AddSample(x, y)
}

// Digest returns a snapshot of the pool's rolling hash.
func (m *MouseEntropyPool) Digest() [64]byte {
	return m.p.Digest()
}

// BitsCollected reports the display-only entropy counter (2 bits per
// unique sample). It is never consulted by entropy validation.
func (m *MouseEntropyPool) BitsCollected() int {
	return m.p.BitsCollected()
}

// SampleCount reports the number of unique samples absorbed.
func (m *MouseEntropyPool) SampleCount() int {
	return m.p.SampleCount()
}
