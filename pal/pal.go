// Package pal implements the platform abstraction layer: the single
// boundary between engine code and OS services (time, threads,
// synchronization, files, heap allocation, shared objects, windowing,
// input and audio). Every OS-facing call in the rest of this module goes
// through this package so that swapping a backend — or running headless —
// never touches caller code.
package pal

import (
	"fmt"
	"runtime"
	"sync"
)

// State is the process-wide platform handle returned by Bootstrap. It holds
// the gathered host Info and (when not running headless) the Surface and
// Audio backends; the clock baseline Bootstrap starts is package state.
type State struct {
	Info    Info
	Surface Surface
	Audio   Audio
}

var (
	bootstrapOnce sync.Once
	bootstrapErr  error
	bootstrapState *State
)

// BootstrapOptions configures Bootstrap. A zero value is not headless: it
// constructs the Surface and Audio backends with the default 1280x720
// dimensions and name.
type BootstrapOptions struct {
	// Headless skips Surface and Audio backend construction, matching the
	// original engine's LD_HEADLESS build configuration.
	Headless bool
	// SurfaceWidth/SurfaceHeight/SurfaceName seed the initial surface
	// state when not running headless.
	SurfaceWidth  int
	SurfaceHeight int
	SurfaceName   string
}

// Bootstrap performs one-time platform initialization: starts the
// monotonic clock, gathers host Info, and checks that the host meets the
// engine's baseline CPU requirement. It is safe to call more than once;
// only the first call does any work, and its result is cached.
//
// Bootstrap failure is always fatal: callers that get a non-nil error
// should log it and exit, matching the original engine's
// platform_fatal_message_box-then-abort behavior on a failed core_init.
func Bootstrap(opts BootstrapOptions) (*State, error) {
	bootstrapOnce.Do(func() {
		TimeInitialize()
		info := QueryInfo()

		if err := checkBaselineFeatures(info.Features); err != nil {
			bootstrapErr = err
			return
		}

		state := &State{Info: info}
		if !opts.Headless {
			width, height := opts.SurfaceWidth, opts.SurfaceHeight
			if width <= 0 {
				width = 1280
			}
			if height <= 0 {
				height = 720
			}
			name := opts.SurfaceName
			if name == "" {
				name = "liquid engine"
			}
			state.Surface = NewHeadlessSurface(width, height, name)
			state.Audio = NewHeadlessAudio()
		}
		bootstrapState = state

		logEvent("info", "pal", "bootstrap complete",
			"headless", opts.Headless,
			"logical_processor_count", info.LogicalProcessorCount,
			"total_memory_bytes", info.TotalMemoryBytes,
		)
	})
	return bootstrapState, bootstrapErr
}

// checkBaselineFeatures fails bootstrap if the host cannot run the
// engine's SIMD-accelerated paths. The SSE4.1 requirement only applies on
// the x86 architectures queryFeatures actually probes (amd64 and 386,
// which already guarantee SSE2 beneath it); on every other architecture
// Features is all-false by construction, so requiring SSE41 there would
// reject every non-x86 host outright instead of degrading gracefully.
func checkBaselineFeatures(f Features) error {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		return nil
	}
	if !f.SSE41 {
		return setLastError(KindFatalBootstrap, "host CPU lacks required SSE4.1 support")
	}
	return nil
}

// ResetForTesting discards cached bootstrap state so a test can call
// Bootstrap again with different options. It must not be called from
// non-test code.
func ResetForTesting() {
	bootstrapOnce = sync.Once{}
	bootstrapErr = nil
	bootstrapState = nil
}

// MustBootstrap is a convenience wrapper that panics on bootstrap failure,
// for use in example programs and tests where there is no sensible
// recovery path.
func MustBootstrap(opts BootstrapOptions) *State {
	state, err := Bootstrap(opts)
	if err != nil {
		panic(fmt.Sprintf("pal: bootstrap failed: %v", err))
	}
	return state
}
