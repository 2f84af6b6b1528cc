// Package memory implements the engine's deterministic, arena-backed
// allocators: a fixed-block bitmap allocator and a LIFO stack allocator,
// each layered over a single contiguous byte arena obtained from the
// platform heap, plus the process-wide usage counters every allocation and
// free call updates.
package memory

import (
	"encoding/binary"
	"unsafe"
)

// headerSize is the footprint of the hidden pointer header written
// immediately before every aligned allocation's returned slice: one
// machine word, matching the original `((void**)result)[-1] = memory`
// convention used to recover an allocation's true start from an aligned
// pointer a caller hands back to Free.
const headerSize = 8

// alignForward rounds offset up to the next multiple of alignment, which
// must be a power of two.
func alignForward(offset, alignment uintptr) uintptr {
	return (offset + alignment - 1) &^ (alignment - 1)
}

// arenaOffset returns the offset of data's first byte within arena's
// backing array. Both slices must share the same backing array; this is
// the Go-safe analogue of the original's raw pointer subtraction, confined
// to this one call site.
func arenaOffset(arena, data []byte) uintptr {
	if len(arena) == 0 || len(data) == 0 {
		return uintptr(unsafe.Pointer(&data))
	}
	base := uintptr(unsafe.Pointer(&arena[0]))
	ptr := uintptr(unsafe.Pointer(&data[0]))
	return ptr - base
}

// writeAlignedHeader records unalignedOffset in the headerSize bytes
// immediately preceding alignedOffset within arena.
func writeAlignedHeader(arena []byte, unalignedOffset, alignedOffset uintptr) {
	binary.LittleEndian.PutUint64(arena[alignedOffset-headerSize:alignedOffset], uint64(unalignedOffset))
}

// readAlignedHeader recovers the unaligned offset written by
// writeAlignedHeader.
func readAlignedHeader(arena []byte, alignedOffset uintptr) uintptr {
	return uintptr(binary.LittleEndian.Uint64(arena[alignedOffset-headerSize : alignedOffset]))
}

// blocksForSize returns the number of fixed-size blocks needed to satisfy
// a request of size bytes, ceiling-dividing as the original
// ___memory_size_to_blocks did.
func blocksForSize(size, blockSize int) int {
	if size <= 0 {
		return 0
	}
	return (size + blockSize - 1) / blockSize
}
