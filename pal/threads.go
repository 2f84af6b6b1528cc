package pal

import (
	"runtime"
	"sync/atomic"
)

// ThreadFunc is the trampoline body a thread runs exactly once before
// exiting. The worker index / user pointer convention mirrors the job
// system's per-thread scratch pattern.
type ThreadFunc func(user any) int

// ThreadHandle references a running or terminated worker. Its lifetime in
// this engine is the process lifetime: workers are spawned once at job
// system init and parked until shutdown, never individually recycled.
type ThreadHandle struct {
	proc   ThreadFunc
	user   any
	done   chan struct{}
	result atomic.Int64
}

// CreateThread starts a new goroutine-backed worker running proc(user) to
// completion, then exiting.
//
// stackSize is accepted for interface parity with the platform-thread
// contract this is grounded on; Go goroutine stacks grow on demand and are
// not caller-sized, so the value is otherwise unused.
//
// Ordering: the Go memory model guarantees that "the go statement that
// starts a new goroutine happens before the goroutine's execution begins."
// That single guarantee supplies both the release fence the spec requires
// before a thread starts (writes to proc/user are visible) and the acquire
// fence the trampoline needs (it observes those writes) — no manual fence
// is required the way the original interlocked/read-write-fence pair was.
func CreateThread(proc ThreadFunc, user any, stackSize int) *ThreadHandle {
	_ = stackSize
	h := &ThreadHandle{
		proc: proc,
		user: user,
		done: make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		h.result.Store(int64(proc(user)))
	}()
	return h
}

// Join blocks until the thread has run its proc to completion and returns
// the proc's return code.
func (h *ThreadHandle) Join() int {
	<-h.done
	return int(h.result.Load())
}

// ProcessorCount returns the number of logical processors available to the
// process.
func ProcessorCount() int {
	return runtime.NumCPU()
}
