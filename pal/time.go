package pal

import "time"

// Record is a decomposed wall-clock timestamp, local time, matching the
// fields the platform layer hands to the logging and save-game subsystems.
type Record struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// clockStart is the monotonic baseline captured by TimeInitialize. Go's
// time.Time already carries a monotonic reading alongside the wall-clock
// one (see the "Monotonic Clocks" section of the time package docs), so
// ElapsedSeconds needs no separately-tracked frequency the way the original
// QueryPerformanceCounter/clock_gettime backends did.
var clockStart time.Time

// TimeInitialize captures the monotonic baseline used by ElapsedSeconds.
// Calling it more than once rebases the clock; callers should invoke it
// exactly once, during Bootstrap.
func TimeInitialize() {
	clockStart = time.Now()
}

// ElapsedSeconds returns the number of seconds since TimeInitialize was
// called.
func ElapsedSeconds() float64 {
	if clockStart.IsZero() {
		return 0
	}
	return time.Since(clockStart).Seconds()
}

// TimeRecord returns the current wall-clock time, decomposed, local.
func TimeRecord() Record {
	now := time.Now().Local()
	return Record{
		Year:   now.Year(),
		Month:  int(now.Month()),
		Day:    now.Day(),
		Hour:   now.Hour(),
		Minute: now.Minute(),
		Second: now.Second(),
	}
}

// Sleep yields the calling thread for at least the given duration, in
// milliseconds. No accuracy guarantee beyond what the Go runtime's timer
// wheel offers, matching the coarse-sleep contract of the original surface.
func Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
