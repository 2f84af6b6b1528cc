package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockAllocatorAllocFree(t *testing.T) {
	ResetUsageCountersForTesting()
	a, err := NewBlockAllocator(64, 8)
	require.NoError(t, err)
	defer a.Destroy()

	buf := a.Alloc(100)
	require.NotNil(t, buf)
	assert.Len(t, buf, 128) // ceil(100/64) * 64

	a.Free(buf, 100)

	// The freed run must be fully reusable afterward.
	buf2 := a.Alloc(64 * 8)
	assert.NotNil(t, buf2)
}

func TestBlockAllocatorExhaustion(t *testing.T) {
	a, err := NewBlockAllocator(16, 2)
	require.NoError(t, err)
	defer a.Destroy()

	require.NotNil(t, a.Alloc(32))
	assert.Nil(t, a.Alloc(1), "allocator has no free blocks left")
}

func TestBlockAllocatorAlignedRoundTrip(t *testing.T) {
	a, err := NewBlockAllocator(32, 64)
	require.NoError(t, err)
	defer a.Destroy()

	buf := a.AllocAligned(100, 64)
	require.NotNil(t, buf)
	assert.Len(t, buf, 100)
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%64, "returned address must be 64-byte aligned")

	a.FreeAligned(buf, 100, 64)

	// Everything should be reclaimable after freeing the aligned run.
	full := a.Alloc(32 * 64)
	assert.NotNil(t, full)
}

func TestBlockAllocatorClear(t *testing.T) {
	a, err := NewBlockAllocator(16, 4)
	require.NoError(t, err)
	defer a.Destroy()

	require.NotNil(t, a.Alloc(64))
	assert.Nil(t, a.Alloc(16))

	a.Clear()
	assert.NotNil(t, a.Alloc(64))
}
