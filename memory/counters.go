package memory

import "sync/atomic"

// usage counters replace the original's plain, non-atomic global counters
// (HEAP_MEMORY_USAGE / PAGE_MEMORY_USAGE) with atomics, since allocators in
// this codebase are used concurrently from job system workers.
var (
	heapUsageBytes atomic.Int64
	pageUsageBytes atomic.Int64
)

// HeapUsageBytes returns the number of bytes currently tracked as
// allocated by SystemAllocate/tracing allocator wrappers.
func HeapUsageBytes() int64 {
	return heapUsageBytes.Load()
}

// PageUsageBytes returns the number of bytes currently tracked as
// allocated by page-granular allocations (arenas backing a BlockAllocator
// or StackAllocator).
func PageUsageBytes() int64 {
	return pageUsageBytes.Load()
}

// TotalUsageBytes returns heap usage plus page usage, both in bytes. Reads
// of the two counters are independent atomics, so a caller can observe a
// total that never existed at any single instant under concurrent
// allocation; the original design accepts the same staleness.
func TotalUsageBytes() int64 {
	return HeapUsageBytes() + PageUsageBytes()
}

// ResetUsageCountersForTesting zeroes both counters. Tests that construct
// and discard many allocators in isolation call this between cases so
// counter assertions don't leak across them.
func ResetUsageCountersForTesting() {
	heapUsageBytes.Store(0)
	pageUsageBytes.Store(0)
}
