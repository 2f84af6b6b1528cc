package pal

import "time"

// Infinite is passed to WaitTimeout / LockTimeout to block without a
// deadline, matching the PLATFORM_INFINITE_TIMEOUT sentinel of the original
// surface.
const Infinite time.Duration = -1

// semaphoreCapacity bounds the number of outstanding, un-acquired signals a
// Semaphore can hold before Signal reports resource exhaustion. 1<<16 is far
// above the job system's 64-entry ring capacity, so completion signals that
// no waiter consumes can pile up without hitting it; it is generous for
// ad-hoc PAL clients too.
//
// A golang.org/x/sync/semaphore.Weighted was evaluated for this role, since
// it is already part of the dependency graph this codebase draws from, but
// its Release panics if more weight is released than was ever acquired —
// it models bounding concurrent access to a resource, not a classic
// counting semaphore where Signal may run ahead of any Wait (the exact
// pattern semaphore_create(initial_count) with initial_count == 0 requires).
// A buffered channel of tokens is the idiomatic Go substitute for that
// shape and is what's used here.
const semaphoreCapacity = 1 << 16

// Semaphore is a counting semaphore with an initial count, matching the
// platform semaphore handle: Signal increments, Wait decrements when
// positive and otherwise blocks.
type Semaphore struct {
	tokens chan struct{}
}

// NewSemaphore creates a semaphore with the given initial count, which may
// be zero.
func NewSemaphore(initialCount uint32) *Semaphore {
	s := &Semaphore{tokens: make(chan struct{}, semaphoreCapacity)}
	for i := uint32(0); i < initialCount; i++ {
		s.tokens <- struct{}{}
	}
	return s
}

// Signal increments the semaphore by one.
func (s *Semaphore) Signal() {
	select {
	case s.tokens <- struct{}{}:
	default:
		setLastError(KindResourceExhausted, "semaphore: signal capacity (%d) exhausted", semaphoreCapacity)
	}
}

// Wait blocks until the semaphore count is positive, then decrements it.
func (s *Semaphore) Wait() {
	<-s.tokens
}

// WaitTimeout waits up to timeout (or forever, if timeout is Infinite).
// It returns false iff the call timed out.
func (s *Semaphore) WaitTimeout(timeout time.Duration) bool {
	if timeout == Infinite {
		s.Wait()
		return true
	}
	select {
	case <-s.tokens:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Destroy releases the semaphore's resources. The Go runtime reclaims the
// backing channel once unreferenced, so this is a no-op kept for parity
// with the platform handle lifecycle (create once, destroy once).
func (s *Semaphore) Destroy() {}

// Mutex is a binary semaphore: at most one holder at a time.
type Mutex struct {
	sem *Semaphore
}

// NewMutex creates an unlocked mutex.
func NewMutex() *Mutex {
	return &Mutex{sem: NewSemaphore(1)}
}

// Lock blocks until the mutex is acquired.
func (m *Mutex) Lock() {
	m.sem.Wait()
}

// LockTimeout attempts to acquire the mutex within timeout (or forever, if
// timeout is Infinite), returning false iff it timed out.
func (m *Mutex) LockTimeout(timeout time.Duration) bool {
	return m.sem.WaitTimeout(timeout)
}

// Unlock releases the mutex. Unlocking a mutex the caller does not hold is
// a caller error, exactly as with the underlying OS primitive.
func (m *Mutex) Unlock() {
	m.sem.Signal()
}

// Destroy releases the mutex's resources; see Semaphore.Destroy.
func (m *Mutex) Destroy() {}
