package tjpeg

import "unsafe"

// Pool tier minimums. The exact byte counts come from the reference
// implementation this decoder was ported from (its RECOMMENDED_POOL_SIZE
// and per-tier minimums); ConvenientPoolSize is large enough for any tier.
const (
	MinimumPoolSizeTierMinimum = 3100
	MinimumPoolSizeTierRegister = 3500
	MinimumPoolSizeTierLUT      = 9644

	// ConvenientPoolSize covers TierLUT for a three-component image with
	// two quantization tables and the four standard Huffman tables (2 KiB
	// LUT each), which Prepare lays out in 9,776 bytes. Prepare allocates
	// afresh for every DQT and DHT table in the stream, so images with more
	// or larger tables can need more than this.
	ConvenientPoolSize = 10240
)

// RecommendedPoolSize returns the per-tier workspace pool size, in bytes,
// for the given Huffman decode tier. What Prepare actually allocates
// depends on the number and size of the image's tables, so this is not an
// exact bound: a three-component image with the standard Huffman tables
// takes 9,776 bytes under TierLUT, more than MinimumPoolSizeTierLUT.
func RecommendedPoolSize(tier Tier) int {
	switch tier {
	case TierMinimum:
		return MinimumPoolSizeTierMinimum
	case TierLUT:
		return MinimumPoolSizeTierLUT
	default:
		return MinimumPoolSizeTierRegister
	}
}

// Pool is a monotonic bump allocator over a caller-owned byte buffer.
//
// It never frees individual allocations; the whole pool is reclaimed by
// calling Reset or by letting the buffer go out of scope. This mirrors the
// C tjpgd alloc_pool() allocator this decoder is descended from: O(1)
// allocation, no fragmentation, no heap or OS call, trivially bounded by a
// size the caller computes ahead of time.
type Pool struct {
	buf    []byte
	offset int
}

// NewPool wraps buf as a workspace pool. The pool borrows buf for as long
// as any handle returned by Alloc (or a decoder built from it) is in use.
func NewPool(buf []byte) *Pool {
	return &Pool{buf: buf}
}

func align8(n int) int { return (n + 7) &^ 7 }

// Alloc returns a fresh, unzeroed byte region of length n, or
// ErrInsufficientMemory if the pool does not have n bytes (rounded up to an
// 8-byte boundary) remaining.
func (p *Pool) Alloc(n int) ([]byte, error) {
	start := align8(p.offset)
	size := align8(n)
	if len(p.buf)-start < size {
		return nil, ErrInsufficientMemory
	}
	p.offset = start + size
	return p.buf[start : start+n : start+size], nil
}

// AllocZeroed is like Alloc but zero-initializes the returned region.
func (p *Pool) AllocZeroed(n int) ([]byte, error) {
	b, err := p.Alloc(n)
	if err != nil {
		return nil, err
	}
	for i := range b {
		b[i] = 0
	}
	return b, nil
}

// AllocU16 allocates n uint16 values from the pool, zero-initialized. The
// pool's 8-byte alignment guarantees the returned slice is naturally
// aligned for uint16 access.
func (p *Pool) AllocU16(n int) ([]uint16, error) {
	if n == 0 {
		return nil, nil
	}
	b, err := p.AllocZeroed(n * 2)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), n), nil
}

// AllocI32 allocates n int32 values from the pool, zero-initialized.
func (p *Pool) AllocI32(n int) ([]int32, error) {
	if n == 0 {
		return nil, nil
	}
	b, err := p.AllocZeroed(n * 4)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&b[0])), n), nil
}

// Reset sets the allocation offset back to zero, invalidating every handle
// previously returned by Alloc. The caller is responsible for not reusing
// stale handles after a reset.
func (p *Pool) Reset() { p.offset = 0 }

// Capacity returns the total size of the underlying buffer.
func (p *Pool) Capacity() int { return len(p.buf) }

// Used returns the number of bytes allocated so far (including alignment
// padding).
func (p *Pool) Used() int { return p.offset }

// Remaining returns the number of bytes still available for allocation.
func (p *Pool) Remaining() int { return len(p.buf) - align8(p.offset) }
