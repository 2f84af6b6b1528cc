package pal

import (
	"os"
	"runtime"

	"github.com/pbnjay/memory"
)

// HeapAlloc allocates an untracked, zeroed byte slice of the given size.
// It backs the system allocator the memory subsystem wraps with its own
// usage counters; callers wanting tracked heap usage should go through
// memory.SystemAllocate instead of calling this directly.
func HeapAlloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// HeapFree exists for interface parity with the platform heap handle.
// The Go garbage collector reclaims mem once it is no longer referenced;
// there is no explicit free step, so this only zeroes mem's contents, so
// that a use-after-free in caller code reads zeros rather than the stale
// data it held.
func HeapFree(mem []byte) {
	for i := range mem {
		mem[i] = 0
	}
}

// PageSize returns the OS's memory page size, used by the page allocator to
// round requests up the same way the original VirtualAlloc/mmap-backed page
// allocator did.
func PageSize() int {
	return os.Getpagesize()
}

// QueryInfo gathers host information: CPU feature bits, total physical
// memory (via pbnjay/memory, which reads /proc/meminfo, sysctl or the
// Windows GlobalMemoryStatusEx equivalent depending on platform), the OS
// page size and the logical processor count.
func QueryInfo() Info {
	return Info{
		CPUName:               runtime.GOARCH,
		TotalMemoryBytes:      memory.TotalMemory(),
		PageSizeBytes:         PageSize(),
		LogicalProcessorCount: runtime.NumCPU(),
		Features:              queryFeatures(),
	}
}
