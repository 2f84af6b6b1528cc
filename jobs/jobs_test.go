package jobs

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobSystemRunsPushedJobs(t *testing.T) {
	js, err := New(4)
	require.NoError(t, err)
	defer js.Shutdown()

	var sum atomic.Int64
	const n = 200
	for i := 0; i < n; i++ {
		i := i
		for !js.Push(func(_ int, params any) {
			sum.Add(int64(params.(int)))
		}, i) {
			time.Sleep(time.Millisecond)
		}
	}
	js.Wait()

	want := int64(n * (n - 1) / 2)
	assert.Equal(t, want, sum.Load())
}

func TestJobSystemPushFailsWhenFull(t *testing.T) {
	js, err := New(1)
	require.NoError(t, err)
	defer js.Shutdown()

	block := make(chan struct{})
	js.Push(func(_ int, _ any) { <-block }, nil)

	ok := true
	for i := 0; i < MaxEntryCount+1 && ok; i++ {
		ok = js.Push(func(_ int, _ any) {}, nil)
	}
	assert.False(t, ok, "push must fail once the ring is at capacity")
	close(block)
}

func TestJobSystemWaitTimeout(t *testing.T) {
	js, err := New(1)
	require.NoError(t, err)
	defer js.Shutdown()

	block := make(chan struct{})
	js.Push(func(_ int, _ any) { <-block }, nil)

	assert.False(t, js.WaitTimeout(10*time.Millisecond))
	close(block)
	assert.True(t, js.WaitTimeout(time.Second))
}

func TestJobSystemShutdownJoinsWorkers(t *testing.T) {
	js, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, js.ThreadCount())
	js.Shutdown()
	assert.Equal(t, int64(0), js.Pending())
}
