package pal

import "sync"

// SurfaceMode selects how a Surface presents itself on screen.
type SurfaceMode int

const (
	// ModeWindowed is a resizable, decorated window.
	ModeWindowed SurfaceMode = iota
	// ModeBorderless is an undecorated window, usually sized to the
	// monitor.
	ModeBorderless
	// ModeFullscreen is an exclusive fullscreen surface.
	ModeFullscreen
)

// Key is a platform-independent keyboard scancode, matching the
// engine-level key enumeration the original surface callbacks reported.
type Key int

// MouseButton identifies a mouse button in a button-state callback.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// GamepadButton is a bitmask of held gamepad buttons, matching the single
// b32 buttons field the original PlatformGamepad packed every digital
// button into.
type GamepadButton uint32

const (
	GamepadButtonDPadUp GamepadButton = 1 << iota
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	GamepadButtonStart
	GamepadButtonBack
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
)

// GamepadState is a single poll of a connected gamepad: digital buttons,
// analog triggers and the two analog sticks, each axis normalized to
// [-1, 1] (triggers to [0, 1]).
type GamepadState struct {
	Buttons      GamepadButton
	LeftTrigger  float32
	RightTrigger float32
	LeftStick    [2]float32
	RightStick   [2]float32
}

// SurfaceCallbacks is the set of input and lifecycle callbacks a Surface
// dispatches during PumpEvents, one field per original platform surface
// callback.
type SurfaceCallbacks struct {
	OnResolutionChange  func(width, height int)
	OnClose             func()
	OnActivate          func(active bool)
	OnKey               func(key Key, down bool)
	OnMouseButton       func(button MouseButton, down bool)
	OnMouseMove         func(x, y int)
	OnMouseMoveRelative func(dx, dy int)
	OnMouseWheel        func(delta int)
}

// Surface is the windowing contract every platform backend must satisfy.
// The only backend shipped here is headlessSurface; a real backend (GLFW,
// SDL, a native Win32/X11/Cocoa binding) plugs in behind the same
// interface without the engine loop changing.
type Surface interface {
	SetCallbacks(SurfaceCallbacks)
	ClearCallbacks()
	SetVisible(visible bool)
	Visible() bool
	SetDimensions(width, height int)
	Dimensions() (width, height int)
	SetMode(mode SurfaceMode)
	Mode() SurfaceMode
	SetName(name string)
	Name() string
	Center()
	CenterCursor()
	// PumpEvents drains and dispatches pending input/lifecycle events. It
	// returns false once the surface has been asked to close.
	PumpEvents() bool
	Close() error
}

// headlessSurface is an engine-driveable Surface with no backing OS window,
// suitable for dedicated-server and test builds where LD_HEADLESS would
// have been set on the original platform layer.
type headlessSurface struct {
	mu         sync.Mutex
	callbacks  SurfaceCallbacks
	visible    bool
	width      int
	height     int
	mode       SurfaceMode
	name       string
	closed     bool
}

// NewHeadlessSurface creates a Surface backend that tracks state but
// performs no real windowing.
func NewHeadlessSurface(width, height int, name string) Surface {
	return &headlessSurface{width: width, height: height, name: name}
}

func (s *headlessSurface) SetCallbacks(cb SurfaceCallbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = cb
}

func (s *headlessSurface) ClearCallbacks() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = SurfaceCallbacks{}
}

func (s *headlessSurface) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
}

func (s *headlessSurface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *headlessSurface) SetDimensions(width, height int) {
	s.mu.Lock()
	cb := s.callbacks.OnResolutionChange
	s.width, s.height = width, height
	s.mu.Unlock()
	if cb != nil {
		cb(width, height)
	}
}

func (s *headlessSurface) Dimensions() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *headlessSurface) SetMode(mode SurfaceMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *headlessSurface) Mode() SurfaceMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *headlessSurface) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *headlessSurface) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *headlessSurface) Center()       {}
func (s *headlessSurface) CenterCursor() {}

func (s *headlessSurface) PumpEvents() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *headlessSurface) Close() error {
	s.mu.Lock()
	cb := s.callbacks.OnClose
	s.closed = true
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
	return nil
}

// AudioFormat describes the PCM layout an Audio backend was configured
// with, matching platform_audio_query_buffer_format.
type AudioFormat struct {
	SampleRateHz  int
	Channels      int
	BitsPerSample int
}

// Audio is the audio-output contract every platform backend must satisfy.
type Audio interface {
	Initialize(format AudioFormat) error
	Shutdown()
	QueryBufferFormat() AudioFormat
	LockBuffer() ([]byte, error)
	UnlockBuffer(buf []byte) error
	Start() error
	Stop() error
}

// headlessAudio discards everything written to its buffer. Its lock/unlock
// cycle still enforces the same single-writer contract a real backend
// would, so code exercising the Audio interface behaves the same in tests
// as it would against a real mixer.
type headlessAudio struct {
	mu      sync.Mutex
	format  AudioFormat
	buf     []byte
	locked  bool
	running bool
}

// NewHeadlessAudio creates an Audio backend with no real output device.
func NewHeadlessAudio() Audio {
	return &headlessAudio{}
}

func (a *headlessAudio) Initialize(format AudioFormat) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.format = format
	a.buf = make([]byte, format.Channels*(format.BitsPerSample/8)*format.SampleRateHz/10)
	return nil
}

func (a *headlessAudio) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf = nil
	a.running = false
}

func (a *headlessAudio) QueryBufferFormat() AudioFormat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.format
}

func (a *headlessAudio) LockBuffer() ([]byte, error) {
	a.mu.Lock()
	if a.locked {
		a.mu.Unlock()
		return nil, setLastError(KindInvalidArgument, "audio: buffer already locked")
	}
	a.locked = true
	buf := a.buf
	a.mu.Unlock()
	return buf, nil
}

func (a *headlessAudio) UnlockBuffer(buf []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.locked = false
	return nil
}

func (a *headlessAudio) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = true
	return nil
}

func (a *headlessAudio) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	return nil
}
