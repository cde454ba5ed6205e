// Package arena implements the bump allocator backing variable-width string
// columns: a chain of fixed-capacity blocks that are filled front to back
// and never resized, so byte ranges handed out stay valid until the arena
// is reset or swapped.
package arena

import (
	"math"
	"unsafe"
)

// MaxBlockSize is the largest capacity a single block may hold. Refs
// address offsets and lengths with 32 bits, so larger blocks could not be
// addressed; on 32-bit platforms the slice length limit binds first.
const MaxBlockSize = min(math.MaxUint32, math.MaxInt)

// block is a fixed-capacity buffer with a write cursor. The data slice is
// allocated once at full capacity and never reallocated.
type block struct {
	data []byte
	used int
}

func (b *block) available() int {
	return len(b.data) - b.used
}

// Ref addresses a byte range inside an arena by block index, offset and
// length. Index-based addressing keeps refs valid when the block index
// grows and makes them cheap to store per row.
type Ref struct {
	Block uint32
	Off   uint32
	Len   uint32
}

// Arena is a chain of bump-allocated blocks. The zero value is an empty
// arena ready for use.
//
// Arena is not safe for concurrent use.
type Arena struct {
	blocks []*block
}

const blockSlotSize = int(unsafe.Sizeof((*block)(nil))) + int(unsafe.Sizeof(block{}))

// Blocks returns the number of allocated blocks.
func (a *Arena) Blocks() int {
	return len(a.blocks)
}

// Available returns the free byte count of the active (last) block, or 0
// when no block has been allocated yet.
func (a *Arena) Available() int {
	if len(a.blocks) == 0 {
		return 0
	}

	return a.blocks[len(a.blocks)-1].available()
}

// Grow appends a fresh block of the given capacity, clamped to
// MaxBlockSize. The previous active block keeps its unused tail;
// allocation never spans blocks.
func (a *Arena) Grow(capacity int) {
	if capacity > MaxBlockSize {
		capacity = MaxBlockSize
	}

	a.blocks = append(a.blocks, &block{data: make([]byte, capacity)})
}

// Alloc carves n bytes out of the active block and returns the ref plus
// the writable byte range.
//
// The caller must ensure capacity beforehand via Available/Grow; Alloc
// panics when the active block cannot hold n bytes. This is the unchecked
// fast path used by bulk appends that pre-size a single block.
func (a *Arena) Alloc(n int) (Ref, []byte) {
	if n == 0 {
		return Ref{}, nil
	}

	if len(a.blocks) == 0 {
		panic("arena: alloc without a block")
	}

	idx := len(a.blocks) - 1
	b := a.blocks[idx]
	if b.available() < n {
		panic("arena: alloc exceeds block capacity")
	}

	off := b.used
	b.used += n
	buf := b.data[off : off+n : off+n]

	// Blocks never exceed MaxBlockSize, so off and n always fit in 32 bits.
	return Ref{Block: uint32(idx), Off: uint32(off), Len: uint32(n)}, buf //nolint:gosec
}

// Bytes resolves a ref to its byte range. Refs are only valid for the
// arena that issued them.
func (a *Arena) Bytes(ref Ref) []byte {
	if ref.Len == 0 {
		return nil
	}

	b := a.blocks[ref.Block]

	return b.data[ref.Off : ref.Off+ref.Len : ref.Off+ref.Len]
}

// Reset drops every block, releasing their data for collection while
// keeping the block index's slot capacity for reuse.
func (a *Arena) Reset() {
	clear(a.blocks)
	a.blocks = a.blocks[:0]
}

// MemoryUsage returns the resident cost in bytes: the full capacity of
// every block's data plus the slot cost of the block index at its
// allocated capacity.
func (a *Arena) MemoryUsage() int {
	total := cap(a.blocks) * blockSlotSize
	for _, b := range a.blocks {
		total += cap(b.data)
	}

	return total
}

// TotalUsed returns the number of payload bytes written across all blocks.
func (a *Arena) TotalUsed() int {
	total := 0
	for _, b := range a.blocks {
		total += b.used
	}

	return total
}

// Swap exchanges the block chains of two arenas in O(1). Refs issued by
// either arena afterwards resolve against the other's former blocks.
func (a *Arena) Swap(other *Arena) {
	a.blocks, other.blocks = other.blocks, a.blocks
}
