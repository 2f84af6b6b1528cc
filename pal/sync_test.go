package pal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemaphoreSignalThenWait(t *testing.T) {
	s := NewSemaphore(0)
	s.Signal()
	require.True(t, s.WaitTimeout(time.Second))
}

func TestSemaphoreWaitTimesOut(t *testing.T) {
	s := NewSemaphore(0)
	assert.False(t, s.WaitTimeout(10*time.Millisecond))
}

func TestSemaphoreInitialCount(t *testing.T) {
	s := NewSemaphore(3)
	for i := 0; i < 3; i++ {
		require.True(t, s.WaitTimeout(time.Second), "acquire %d", i)
	}
	assert.False(t, s.WaitTimeout(10*time.Millisecond))
}

func TestMutexMutualExclusion(t *testing.T) {
	m := NewMutex()
	m.Lock()
	assert.False(t, m.LockTimeout(10*time.Millisecond))
	m.Unlock()
	assert.True(t, m.LockTimeout(10*time.Millisecond))
	m.Unlock()
}

func TestMutexInfiniteLock(t *testing.T) {
	m := NewMutex()
	done := make(chan struct{})
	go func() {
		m.Lock()
		close(done)
		m.Unlock()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock never acquired")
	}
}
