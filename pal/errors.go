package pal

import (
	"fmt"
	"sync/atomic"
)

// Kind classifies a PAL-level failure, independent of the originating
// backend. Callers branch on Kind rather than parsing error text.
type Kind int

const (
	// KindNone indicates no error is recorded.
	KindNone Kind = iota
	// KindResourceExhausted covers OS handle refusal and allocator
	// capacity exhaustion.
	KindResourceExhausted
	// KindNotFound covers missing files and missing shared-object symbols.
	KindNotFound
	// KindPermissionDenied covers file share/access conflicts.
	KindPermissionDenied
	// KindInvalidArgument covers bad flag combinations and oversized reads.
	KindInvalidArgument
	// KindTimeout covers a bounded wait that expired; never fatal.
	KindTimeout
	// KindFatalBootstrap covers missing instructions, a missing core
	// library, or a required OS function that could not be resolved.
	KindFatalBootstrap
)

func (k Kind) String() string {
	switch k {
	case KindResourceExhausted:
		return "resource-exhausted"
	case KindNotFound:
		return "not-found"
	case KindPermissionDenied:
		return "permission-denied"
	case KindInvalidArgument:
		return "invalid-argument"
	case KindTimeout:
		return "timeout"
	case KindFatalBootstrap:
		return "fatal-bootstrap"
	default:
		return "none"
	}
}

// Error is the concrete error type returned across the PAL boundary. It
// carries a Kind so callers can branch on failure category without string
// matching, per the taxonomy in the error-handling design.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("pal: %s: %s", e.Kind, e.Message)
}

// lastErrorScratch is the process-wide last-error text the platform layer
// keeps for callers that want more context than a null/false return. It is
// overwritten by the next failing call, matching the single scratch buffer
// described for the original platform layer.
var lastErrorScratch atomic.Pointer[Error]

// setLastError records err as the current last-error and returns it, so call
// sites can `return nil, setLastError(...)` in one line.
func setLastError(kind Kind, format string, args ...any) *Error {
	err := &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
	lastErrorScratch.Store(err)
	logEvent(levelForKind(kind), "pal", err.Message, "kind", kind.String())
	return err
}

// LastError returns the most recently recorded PAL failure, if any.
func LastError() (*Error, bool) {
	err := lastErrorScratch.Load()
	return err, err != nil
}

// ClearLastError resets the scratch buffer. Mainly useful in tests.
func ClearLastError() {
	lastErrorScratch.Store(nil)
}

func levelForKind(k Kind) string {
	if k == KindFatalBootstrap {
		return "fatal"
	}
	return "warn"
}
