// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package entropy implements the eight-source entropy pool, its NIST
// SP 800-22 statistical validator, and the mouse-cursor entropy
// accumulator. The pool's mixing strategy follows the streaming-hash-then-
// fold pattern used by hardware entropy gateways in the wild: absorb every
// source into one running hash, then fold in a final OS CSPRNG draw so the
// output is provably never weaker than the OS CSPRNG alone.
package entropy

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"os"
	"runtime"
	"time"
	"unsafe"
)

// SampleSize is the size in bytes of one pool extraction (512 bits).
const SampleSize = 64

// jitterIterations is the number of busy-loop timing samples folded in by
// the CPU-jitter source.
const jitterIterations = 64

// schedulingBatches is the number of short-lived goroutine batches used by
// the thread-scheduling-noise source.
const schedulingBatches = 8

// Pool draws from eight independent sources and mixes them into a single
// 64-byte sample. It holds no state between calls: every Extract is an
// independent draw.
type Pool struct{}

func lengthPrefixed(h interface{ Write([]byte) (int, error) }, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	h.Write(lenBuf[:])
	h.Write(b)
}

// Extract draws from all eight sources and returns a 64-byte sample. extra
// is the optional caller-supplied source 8 (e.g. a mouse pool digest); pass
// nil when there is none.
//
// Sources 1 and 2 are both independent crypto/rand.Read calls. On most
// platforms these ultimately read from the same OS entropy pool, so this is
// defense in depth against a single weak RNG path, not two independently
// strong sources -- the spec this pool implements is explicit that the
// behavior should be preserved without overstating the entropy gained.
func (Pool) Extract(extra []byte) [SampleSize]byte {
	h := sha512.New()

	lengthPrefixed(h, collectOS())       // source 1: OS CSPRNG A
	lengthPrefixed(h, collectOS())       // source 2: OS CSPRNG B, distinct call
	lengthPrefixed(h, collectClock())    // source 3: monotonic clock LSBs
	lengthPrefixed(h, collectPID())      // source 4: process identifier
	lengthPrefixed(h, collectJitter())   // source 5: CPU jitter
	lengthPrefixed(h, collectScheduling()) // source 6: thread-scheduling noise
	lengthPrefixed(h, collectHardware()) // source 7: hardware RNG / ASLR fold
	lengthPrefixed(h, extra)             // source 8: caller-supplied

	mixed := h.Sum(nil)

	// Mandatory final OS CSPRNG fold: the output is never weaker than the
	// system CSPRNG alone, regardless of how weak the other seven sources
	// turn out to be on a given platform.
	var final [SampleSize]byte
	_, _ = rand.Read(final[:])
	for i := range mixed {
		mixed[i] ^= final[i]
	}

	var out [SampleSize]byte
	copy(out[:], mixed)
	return out
}

func collectOS() []byte {
	b := make([]byte, SampleSize)
	_, _ = rand.Read(b)
	return b
}

func collectClock() []byte {
	const samples = 8
	b := make([]byte, samples*8)
	for i := 0; i < samples; i++ {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(time.Now().UnixNano()))
	}
	return b
}

func collectPID() []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(os.Getpid()))
	return b[:]
}

// collectJitter times jitterIterations passes of a small busy loop and
// folds in the inter-iteration deltas. On a real system, scheduler
// preemption, cache effects, and thermal throttling make these deltas
// unpredictable at the low bits.
func collectJitter() []byte {
	b := make([]byte, jitterIterations*8)
	prev := time.Now()
	acc := uint64(0)
	for i := 0; i < jitterIterations; i++ {
		for j := 0; j < 1000; j++ {
			acc = acc*2654435761 + uint64(j)
		}
		now := time.Now()
		delta := now.Sub(prev)
		binary.LittleEndian.PutUint64(b[i*8:], uint64(delta)^acc)
		prev = now
	}
	return b
}

// collectScheduling spawns schedulingBatches short-lived goroutines per
// batch and records the order and timestamps at which the Go scheduler
// actually ran them -- the closest portable analog to the spec's
// short-lived-thread scheduling noise source.
func collectScheduling() []byte {
	type arrival struct {
		id int
		ts int64
	}
	const perBatch = 16
	out := make([]byte, 0, schedulingBatches*perBatch*8)
	for batch := 0; batch < schedulingBatches; batch++ {
		ch := make(chan arrival, perBatch)
		for i := 0; i < perBatch; i++ {
			go func(id int) {
				runtime.Gosched()
				ch <- arrival{id: id, ts: time.Now().UnixNano()}
			}(i)
		}
		for i := 0; i < perBatch; i++ {
			a := <-ch
			var tmp [8]byte
			binary.LittleEndian.PutUint64(tmp[:], uint64(a.id)<<56^uint64(a.ts))
			out = append(out, tmp[:]...)
		}
	}
	return out
}

// collectHardware stands in for a dedicated hardware RNG syscall (most
// platforms multiplex one through the same CSPRNG crypto/rand already
// reads) folded with pointer addresses of a stack-local and heap-allocated
// buffer as an ASLR fold. Go has no portable primitive to read raw ASLR
// offsets, so pointer capture is the closest analog available to a
// standard-library implementation.
func collectHardware() []byte {
	hw := make([]byte, SampleSize)
	_, _ = rand.Read(hw)

	var stackVar [8]byte
	heapVar := make([]byte, 8)

	var ptrBuf [16]byte
	binary.LittleEndian.PutUint64(ptrBuf[0:], uint64(uintptr(unsafe.Pointer(&stackVar[0]))))
	binary.LittleEndian.PutUint64(ptrBuf[8:], uint64(uintptr(unsafe.Pointer(&heapVar[0]))))

	return append(hw, ptrBuf[:]...)
}
