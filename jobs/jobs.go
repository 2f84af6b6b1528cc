// Package jobs implements the fixed-capacity job system: a bounded
// multi-producer/multi-consumer ring buffer of pending work, drained by a
// fixed pool of worker threads parked on a counting semaphore.
package jobs

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/liquidengine/corert/pal"
)

// MaxEntryCount is the ring buffer's fixed capacity, matching
// JOB_STACK_MAX_ENTRY_COUNT. It is a compile-time constant in the original
// layer because the ring lives inline in a single allocation sized at
// startup; this codebase keeps the same bound for parity even though Go's
// slices could grow.
const MaxEntryCount = 64

// Proc is the body a queued job runs to completion. workerIndex identifies
// the worker thread running it (1..ThreadCount; the main thread is
// implicitly 0), so callers can index per-thread scratch structures
// without any locking.
type Proc func(workerIndex int, params any)

type jobEntry struct {
	proc   Proc
	params any
}

// System is a fixed pool of worker threads draining a bounded job ring.
// Push never blocks; it fails once MaxEntryCount jobs are outstanding.
type System struct {
	entries [MaxEntryCount]jobEntry

	writeIndex       atomic.Uint64
	readIndex        atomic.Uint64
	remainingEntries atomic.Int64

	endSignal atomic.Bool
	endCount  atomic.Int32

	threadCount int
	threads     []*pal.ThreadHandle

	wake      *pal.Semaphore
	completed *pal.Semaphore
}

// New creates a job system with threadCount workers, each started
// immediately and parked waiting for work.
func New(threadCount int) (*System, error) {
	if threadCount <= 0 {
		return nil, fmt.Errorf("jobs: invalid thread count %d", threadCount)
	}
	js := &System{
		threadCount: threadCount,
		wake:        pal.NewSemaphore(0),
		completed:   pal.NewSemaphore(0),
	}
	js.threads = make([]*pal.ThreadHandle, threadCount)
	for i := 0; i < threadCount; i++ {
		js.threads[i] = pal.CreateThread(js.workerProc, i+1, 0)
	}
	pal.LogInfo("jobs", "job system started", "thread_count", threadCount)
	return js, nil
}

// Push enqueues proc(params) for execution by the next available worker.
// It returns false without blocking if the ring is already at capacity —
// callers should retry after doing other work, or call Wait first.
func (js *System) Push(proc Proc, params any) bool {
	if js.remainingEntries.Load() >= int64(MaxEntryCount) {
		return false
	}
	index := js.writeIndex.Add(1) - 1
	js.entries[index%MaxEntryCount] = jobEntry{proc: proc, params: params}
	js.remainingEntries.Add(1)
	js.wake.Signal()
	return true
}

// pop claims the next entry for a worker to run. It mirrors the original
// ___internal_job_system_pop: read_index always advances, even on the path
// where no entry is actually available, because the original never
// special-cased a concurrent empty-ring race — pop itself checks
// remainingEntries before claiming a slot, so the wasted slot advance is
// harmless modulo the ring's size. See the design ledger for the decision
// to preserve rather than "fix" this.
func (js *System) pop() (jobEntry, bool) {
	if js.remainingEntries.Load() <= 0 {
		js.readIndex.Add(1)
		return jobEntry{}, false
	}
	index := js.readIndex.Add(1) - 1
	entry := js.entries[index%MaxEntryCount]
	return entry, true
}

func (js *System) workerProc(user any) int {
	workerIndex := user.(int)
	for {
		js.wake.Wait()

		if entry, ok := js.pop(); ok {
			entry.proc(workerIndex, entry.params)
			// remainingEntries counts pushed-but-not-yet-completed jobs, so
			// it must stay above zero while this job's body is still
			// running — decrement only after proc returns, not at claim
			// time, or Wait/WaitTimeout can observe a drained ring while a
			// job is still in flight.
			js.remainingEntries.Add(-1)
			js.completed.Signal()
			continue
		}

		if js.endSignal.Load() {
			js.endCount.Add(1)
			return 0
		}
	}
}

// Wait blocks until every currently-pushed job has completed. Jobs pushed
// concurrently with a Wait call are not guaranteed to be observed.
func (js *System) Wait() {
	for js.remainingEntries.Load() > 0 {
		js.completed.Wait()
	}
}

// WaitTimeout behaves like Wait but gives up after timeout, returning
// false iff the ring was not drained in time.
func (js *System) WaitTimeout(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for js.remainingEntries.Load() > 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		if !js.completed.WaitTimeout(remaining) {
			return false
		}
	}
	return true
}

// Shutdown signals every worker to exit once the ring is drained, then
// joins all worker threads. It blocks until every worker has exited.
func (js *System) Shutdown() {
	js.Wait()
	js.endSignal.Store(true)
	for i := 0; i < js.threadCount; i++ {
		js.wake.Signal()
	}
	for _, t := range js.threads {
		t.Join()
	}
	pal.LogInfo("jobs", "job system shut down", "thread_count", js.threadCount)
}

// ThreadCount returns the number of worker threads this system started
// with.
func (js *System) ThreadCount() int { return js.threadCount }

// Pending returns the number of jobs currently queued or in flight.
func (js *System) Pending() int64 { return js.remainingEntries.Load() }
