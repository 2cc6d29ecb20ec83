// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package entropy

import (
	"crypto/sha512"
	"encoding/binary"
	"hash"
	"time"
)

// MousePool accumulates unique cursor positions into a rolling SHA-512
// state. It is not internally locked: callers must serialize AddSample and
// Digest themselves, same as the spec requires.
type MousePool struct {
	h             hash.Hash
	seen          map[[8]byte]struct{}
	sampleCount   int
	bitsCollected int
}

// NewMousePool returns an empty pool.
func NewMousePool() *MousePool {
	return &MousePool{
		h:    sha512.New(),
		seen: make(map[[8]byte]struct{}),
	}
}

func posKey(x, y int32) [8]byte {
	var k [8]byte
	binary.LittleEndian.PutUint32(k[0:], uint32(x))
	binary.LittleEndian.PutUint32(k[4:], uint32(y))
	return k
}

// AddSample absorbs a cursor position plus a high-resolution timestamp into
// the rolling hash if the position hasn't been seen before, and reports 2
// bits to the running bits-collected counter. Returns false, with no state
// change, if the position is a repeat.
//
// The 2-bits-per-sample figure is a display convention for recovery UIs,
// not a cryptographic claim: the actual extracted entropy is bounded by
// SHA-512 mixing and is not gated on this counter anywhere in the pipeline.
func (p *MousePool) AddSample(x, y int32) bool {
	key := posKey(x, y)
	if _, dup := p.seen[key]; dup {
		return false
	}
	p.seen[key] = struct{}{}

	var rec [16]byte
	copy(rec[0:8], key[:])
	binary.LittleEndian.PutUint64(rec[8:], uint64(time.Now().UnixNano()))
	p.h.Write(rec[:])

	p.sampleCount++
	p.bitsCollected += 2
	return true
}

// Digest snapshots the current rolling hash state without consuming it.
func (p *MousePool) Digest() [64]byte {
	sum := p.h.Sum(nil)
	var out [64]byte
	copy(out[:], sum)
	return out
}

// BitsCollected reports the display-only entropy counter.
func (p *MousePool) BitsCollected() int {
	return p.bitsCollected
}

// SampleCount reports the number of unique samples absorbed.
func (p *MousePool) SampleCount() int {
	return p.sampleCount
}
