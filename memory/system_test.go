package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemAllocateFreeBalancesUsage(t *testing.T) {
	ResetUsageCountersForTesting()
	before := HeapUsageBytes()

	a := SystemAllocate(128)
	b := SystemAllocate(256)
	assert.Equal(t, before+384, HeapUsageBytes())

	SystemFree(a)
	SystemFree(b)
	assert.Equal(t, before, HeapUsageBytes())
}

func TestSystemAllocAlignedRoundTrip(t *testing.T) {
	buf := SystemAllocAligned(37, 32)
	require.NotNil(t, buf)
	assert.Len(t, buf, 37)
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%32, "returned address must be 32-byte aligned")
	SystemFreeAligned(buf)
}

func TestSystemReallocCopiesPrefix(t *testing.T) {
	buf := SystemAllocate(8)
	copy(buf, []byte("12345678"))

	grown := SystemRealloc(buf, 8, 32)
	require.Len(t, grown, 32)
	assert.Equal(t, []byte("12345678"), grown[:8])
	SystemFree(grown)
}

func TestPageAllocPagesTracksPageUsage(t *testing.T) {
	ResetUsageCountersForTesting()
	buf := PageAllocPages(4)
	assert.EqualValues(t, 4, PageUsagePages())
	PageFreePages(buf)
	assert.EqualValues(t, 0, PageUsagePages())
}

func TestTotalUsageBytesSumsBoth(t *testing.T) {
	ResetUsageCountersForTesting()
	h := SystemAllocate(100)
	p := PageAllocPages(1)
	assert.Equal(t, HeapUsageBytes()+PageUsageBytes(), TotalUsageBytes())
	SystemFree(h)
	PageFreePages(p)
}
