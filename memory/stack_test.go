package memory

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackAllocatorPushPop(t *testing.T) {
	s, err := NewStackAllocator(1024)
	require.NoError(t, err)
	defer s.Destroy()

	a := s.Push(256)
	require.NotNil(t, a)
	b := s.Push(256)
	require.NotNil(t, b)

	s.Pop(256) // pop b
	s.Pop(256) // pop a

	// The whole arena should be reusable now.
	c := s.Push(1024)
	assert.NotNil(t, c)
}

func TestStackAllocatorOverflow(t *testing.T) {
	s, err := NewStackAllocator(64)
	require.NoError(t, err)
	defer s.Destroy()

	require.NotNil(t, s.Push(64))
	assert.Nil(t, s.Push(1))
}

func TestStackAllocatorMarkReset(t *testing.T) {
	s, err := NewStackAllocator(1024)
	require.NoError(t, err)
	defer s.Destroy()

	mark := s.Mark()
	s.Push(512)
	s.Push(256)
	s.Reset(mark)

	assert.Equal(t, uintptr(0), s.Mark())
	full := s.Push(1024)
	assert.NotNil(t, full)
}

func TestStackAllocatorAlignedRoundTrip(t *testing.T) {
	s, err := NewStackAllocator(4096)
	require.NoError(t, err)
	defer s.Destroy()

	buf := s.PushAligned(128, 64)
	require.NotNil(t, buf)
	assert.Len(t, buf, 128)
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%64, "returned address must be 64-byte aligned")

	s.PopAligned(buf)
	assert.Equal(t, uintptr(0), s.Mark())
}

func TestStackAllocatorClear(t *testing.T) {
	s, err := NewStackAllocator(128)
	require.NoError(t, err)
	defer s.Destroy()

	s.Push(64)
	s.Clear()
	assert.Equal(t, uintptr(0), s.Mark())
}
