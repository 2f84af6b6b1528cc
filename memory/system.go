package memory

import (
	"sync"
	"unsafe"

	"github.com/liquidengine/corert/pal"
)

// systemAlignedHeader records, for each aligned system allocation, the raw
// buffer that must be freed, keyed by the address of the aligned slice's
// first byte (the aligned slice returned to the caller is a sub-slice of
// the raw buffer).
var systemAlignedHeader = struct {
	mu sync.Mutex
	m  map[uintptr][]byte
}{m: make(map[uintptr][]byte)}

// SystemAllocate allocates size bytes from the platform heap and adds size
// to the heap usage counter, the untraced-by-default path the original
// system allocator used for small, short-lived engine allocations.
func SystemAllocate(size int) []byte {
	buf := pal.HeapAlloc(size)
	heapUsageBytes.Add(int64(len(buf)))
	return buf
}

// SystemFree releases a buffer obtained from SystemAllocate and subtracts
// its length from the heap usage counter.
func SystemFree(buf []byte) {
	heapUsageBytes.Add(-int64(len(buf)))
	pal.HeapFree(buf)
}

// SystemAllocateTraced behaves like SystemAllocate but additionally emits a
// structured log line naming tag, matching the original tracing allocator
// variant used to diagnose leaks in debug builds (LOG_MEMORY_SUCCESS /
// LOG_MEMORY_ERROR).
func SystemAllocateTraced(size int, tag string) []byte {
	buf := SystemAllocate(size)
	if buf == nil && size > 0 {
		pal.LogWarn("memory", "allocation failed", "tag", tag, "size", size)
		return buf
	}
	pal.LogDebug("memory", "allocation succeeded", "tag", tag, "size", size)
	return buf
}

// SystemFreeTraced behaves like SystemFree but additionally logs the free.
func SystemFreeTraced(buf []byte, tag string) {
	pal.LogDebug("memory", "free", "tag", tag, "size", len(buf))
	SystemFree(buf)
}

// SystemAllocAligned allocates size bytes aligned to alignment (a power of
// two of at least pointer size), using the same hidden-header convention
// the block and stack allocators use, over a raw heap buffer sized to fit
// both the header and the requested alignment slack.
func SystemAllocAligned(size int, alignment uintptr) []byte {
	if alignment < unsafe.Sizeof(uintptr(0)) {
		alignment = unsafe.Sizeof(uintptr(0))
	}
	raw := SystemAllocate(size + int(alignment) - 1 + headerSize)
	if raw == nil {
		return nil
	}
	// raw's base address, not just its offset within itself, determines
	// where alignment lands: make's returned buffer is only guaranteed
	// pointer-size aligned, so the aligned offset must be computed against
	// the real address and then translated back into a slice offset.
	base := uintptr(unsafe.Pointer(&raw[0]))
	unalignedOffset := uintptr(0)
	alignedOffset := alignForward(base+headerSize, alignment) - base
	writeAlignedHeader(raw, unalignedOffset, alignedOffset)
	aligned := raw[alignedOffset : alignedOffset+uintptr(size)]

	systemAlignedHeader.mu.Lock()
	systemAlignedHeader.m[uintptr(unsafe.Pointer(&aligned[0]))] = raw
	systemAlignedHeader.mu.Unlock()
	return aligned
}

// SystemFreeAligned releases a buffer obtained from SystemAllocAligned.
func SystemFreeAligned(buf []byte) {
	if len(buf) == 0 {
		return
	}
	key := uintptr(unsafe.Pointer(&buf[0]))
	systemAlignedHeader.mu.Lock()
	raw := systemAlignedHeader.m[key]
	delete(systemAlignedHeader.m, key)
	systemAlignedHeader.mu.Unlock()
	SystemFree(raw)
}

// SystemRealloc grows or shrinks a SystemAllocate buffer, copying the
// overlapping prefix into a freshly allocated buffer of newSize.
func SystemRealloc(p []byte, oldSize, newSize int) []byte {
	fresh := SystemAllocate(newSize)
	if fresh == nil {
		return nil
	}
	n := oldSize
	if newSize < n {
		n = newSize
	}
	copy(fresh, p[:n])
	SystemFree(p)
	return fresh
}

// PageAllocPages allocates count OS pages and returns the backing slice.
// Usage is counted in bytes, like every PageAllocate arena, and reported in
// page units by PageUsagePages.
func PageAllocPages(count int) []byte {
	buf := PageAllocate(count * pal.PageSize())
	return buf
}

// PageFreePages releases a buffer obtained from PageAllocPages.
func PageFreePages(buf []byte) {
	PageFree(buf)
}

// PageUsagePages returns the page usage counter in page units.
func PageUsagePages() int64 {
	return pageUsageBytes.Load() / int64(pal.PageSize())
}

// PageAllocate allocates size bytes rounded up to the platform page size
// and adds the rounded size to the page usage counter. It backs every
// BlockAllocator and StackAllocator arena in this package.
func PageAllocate(size int) []byte {
	pageSize := pal.PageSize()
	rounded := ((size + pageSize - 1) / pageSize) * pageSize
	buf := pal.HeapAlloc(rounded)
	pageUsageBytes.Add(int64(len(buf)))
	return buf
}

// PageFree releases a buffer obtained from PageAllocate and subtracts its
// length from the page usage counter.
func PageFree(buf []byte) {
	pageUsageBytes.Add(-int64(len(buf)))
	pal.HeapFree(buf)
}
