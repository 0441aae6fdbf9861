// Package native defines the surface consumed from the underlying
// windowing/input layer. The layer hands out opaque handles for windows and
// monitors and accepts at most one raw callback per event kind per resource.
// Nothing in this package dereferences a handle; handles are identity only.
package native

import "errors"

var (
	// ErrWindowCreate is returned when the layer cannot create a window
	ErrWindowCreate = errors.New("native window creation failed")
	// ErrUnknownWindow is returned for operations on a handle the layer does not know
	ErrUnknownWindow = errors.New("unknown window handle")
	// ErrUnknownMonitor is returned for operations on a handle the layer does not know
	ErrUnknownMonitor = errors.New("unknown monitor handle")
)

// WindowID is the opaque identity of a native window. The zero value is
// never a valid window.
type WindowID uintptr

// MonitorID is the opaque identity of a native monitor. The zero value is
// never a valid monitor.
type MonitorID uintptr

// JoystickSlot is a fixed native joystick slot index (0..MaxJoysticks-1).
type JoystickSlot int

// MaxJoysticks is the number of joystick slots the layer exposes.
const MaxJoysticks = 16

// Raw callback signatures, one per event kind. These mirror the C callback
// shapes of the layer: flat integers and floats, no typed events. Installing
// nil uninstalls the slot.
type (
	// KeyFunc receives key, scancode, action, modifier bits
	KeyFunc func(w WindowID, key, scancode, action, mods int32)
	// CharFunc receives a unicode codepoint
	CharFunc func(w WindowID, codepoint rune)
	// CursorPosFunc receives the cursor position in screen coordinates
	CursorPosFunc func(w WindowID, x, y float64)
	// CursorEnterFunc receives whether the cursor entered or left
	CursorEnterFunc func(w WindowID, entered bool)
	// MouseButtonFunc receives button, action, modifier bits
	MouseButtonFunc func(w WindowID, button, action, mods int32)
	// ScrollFunc receives the scroll offsets
	ScrollFunc func(w WindowID, xoff, yoff float64)
	// DropFunc receives the dropped file paths
	DropFunc func(w WindowID, paths []string)

	// WindowPosFunc receives the new window position
	WindowPosFunc func(w WindowID, x, y int32)
	// WindowSizeFunc receives the new window size
	WindowSizeFunc func(w WindowID, width, height int32)
	// FramebufferSizeFunc receives the new framebuffer size
	FramebufferSizeFunc func(w WindowID, width, height int32)
	// ContentScaleFunc receives the new content scale
	ContentScaleFunc func(w WindowID, xscale, yscale float32)
	// WindowFocusFunc receives whether the window gained focus
	WindowFocusFunc func(w WindowID, focused bool)
	// WindowMinimizeFunc receives whether the window was minimized or restored
	WindowMinimizeFunc func(w WindowID, minimized bool)
	// WindowMaximizeFunc receives whether the window was maximized or restored
	WindowMaximizeFunc func(w WindowID, maximized bool)
	// WindowRefreshFunc signals the window contents need redrawing
	WindowRefreshFunc func(w WindowID)
	// WindowCloseFunc signals the user requested the window to close
	WindowCloseFunc func(w WindowID)

	// MonitorFunc receives monitor connect/disconnect, a global slot
	MonitorFunc func(m MonitorID, connected bool)
	// JoystickFunc receives joystick connect/disconnect, a global slot
	JoystickFunc func(slot JoystickSlot, connected bool)
	// ErrorFunc receives layer errors, a global slot
	ErrorFunc func(code int32, description string)
)

// CallbackInstaller is the single-slot callback surface of the layer. Each
// method replaces the current callback for that kind; nil uninstalls it.
// Per-window slots are keyed by the window handle, the monitor, joystick and
// error slots are layer-global.
type CallbackInstaller interface {
	SetKeyCallback(w WindowID, fn KeyFunc)
	SetCharCallback(w WindowID, fn CharFunc)
	SetCursorPosCallback(w WindowID, fn CursorPosFunc)
	SetCursorEnterCallback(w WindowID, fn CursorEnterFunc)
	SetMouseButtonCallback(w WindowID, fn MouseButtonFunc)
	SetScrollCallback(w WindowID, fn ScrollFunc)
	SetDropCallback(w WindowID, fn DropFunc)

	SetWindowPosCallback(w WindowID, fn WindowPosFunc)
	SetWindowSizeCallback(w WindowID, fn WindowSizeFunc)
	SetFramebufferSizeCallback(w WindowID, fn FramebufferSizeFunc)
	SetContentScaleCallback(w WindowID, fn ContentScaleFunc)
	SetWindowFocusCallback(w WindowID, fn WindowFocusFunc)
	SetWindowMinimizeCallback(w WindowID, fn WindowMinimizeFunc)
	SetWindowMaximizeCallback(w WindowID, fn WindowMaximizeFunc)
	SetWindowRefreshCallback(w WindowID, fn WindowRefreshFunc)
	SetWindowCloseCallback(w WindowID, fn WindowCloseFunc)

	SetMonitorCallback(fn MonitorFunc)
	SetJoystickCallback(fn JoystickFunc)
	SetErrorCallback(fn ErrorFunc)
}

// WindowConfig carries the creation-time options for a window. Fields map
// one to one onto the layer's window hints.
type WindowConfig struct {
	Width  int32
	Height int32
	Title  string

	Resizable   bool
	Visible     bool
	Decorated   bool
	Focused     bool
	Floating    bool
	Maximized   bool
	FocusOnShow bool

	// Fullscreen places the window on this monitor; zero means windowed
	Fullscreen MonitorID
}

// WindowOps is the window lifecycle and attribute surface of the layer.
type WindowOps interface {
	CreateWindow(cfg WindowConfig) (WindowID, error)
	DestroyWindow(w WindowID)

	ShowWindow(w WindowID)
	HideWindow(w WindowID)
	FocusWindow(w WindowID)
	RequestWindowAttention(w WindowID)
	MinimizeWindow(w WindowID)
	MaximizeWindow(w WindowID)
	RestoreWindow(w WindowID)

	GetWindowAttrib(w WindowID, attrib WindowAttrib) bool
	SetWindowAttrib(w WindowID, attrib WindowAttrib, value bool)

	GetWindowPos(w WindowID) (x, y int32)
	SetWindowPos(w WindowID, x, y int32)
	GetWindowSize(w WindowID) (width, height int32)
	SetWindowSize(w WindowID, width, height int32)
	GetFramebufferSize(w WindowID) (width, height int32)
	GetWindowContentScale(w WindowID) (xscale, yscale float32)
	GetWindowOpacity(w WindowID) float32
	SetWindowOpacity(w WindowID, opacity float32)
	SetWindowTitle(w WindowID, title string)
	SetWindowSizeLimits(w WindowID, minW, minH, maxW, maxH int32)
	SetWindowAspectRatio(w WindowID, numer, denom int32)

	WindowShouldClose(w WindowID) bool
	SetWindowShouldClose(w WindowID, value bool)

	// SetWindowMonitor moves the window onto a monitor for fullscreen, or
	// back to windowed mode when m is zero.
	SetWindowMonitor(w WindowID, m MonitorID, x, y, width, height, refreshRate int32)
	GetWindowMonitor(w WindowID) MonitorID
}

// WindowAttrib selects a boolean window attribute for Get/SetWindowAttrib.
type WindowAttrib int

const (
	AttribResizable WindowAttrib = iota
	AttribVisible
	AttribDecorated
	AttribFocused
	AttribFloating
	AttribMinimized
	AttribMaximized
	AttribHovered
	AttribFocusOnShow
	AttribAutoMinimize
)

// VideoMode describes one display mode of a monitor.
type VideoMode struct {
	Width       int32
	Height      int32
	RefreshRate int32
	RedBits     int32
	GreenBits   int32
	BlueBits    int32
}

// MonitorOps is the monitor enumeration and query surface of the layer.
type MonitorOps interface {
	Monitors() []MonitorID
	PrimaryMonitor() MonitorID

	MonitorName(m MonitorID) string
	MonitorPos(m MonitorID) (x, y int32)
	MonitorPhysicalSize(m MonitorID) (widthMM, heightMM int32)
	MonitorContentScale(m MonitorID) (xscale, yscale float32)
	MonitorWorkArea(m MonitorID) (x, y, width, height int32)
	VideoMode(m MonitorID) VideoMode
	VideoModes(m MonitorID) []VideoMode
	SetGamma(m MonitorID, gamma float32)
}

// JoystickState is a point-in-time snapshot of one joystick slot.
type JoystickState struct {
	Axes    []float32
	Buttons []bool
	Hats    []uint8
}

// InputOps is the polled input surface of the layer.
type InputOps interface {
	GetKey(w WindowID, key int32) int32
	GetMouseButton(w WindowID, button int32) int32
	GetCursorPos(w WindowID) (x, y float64)
	SetCursorMode(w WindowID, mode CursorMode)
	SetRawMouseMotion(w WindowID, enabled bool)
	KeyName(key, scancode int32) string
	KeyScancode(key int32) int32

	JoystickPresent(slot JoystickSlot) bool
	JoystickName(slot JoystickSlot) string
	JoystickState(slot JoystickSlot) JoystickState
}

// CursorMode controls cursor visibility and confinement for a window.
type CursorMode int

const (
	CursorNormal CursorMode = iota
	CursorHidden
	CursorDisabled
)

// Pump is the event delivery surface. All installed callbacks fire
// synchronously inside these calls, on the calling goroutine.
type Pump interface {
	PollEvents()
	WaitEvents()
	WaitEventsTimeout(seconds float64)
	PostEmptyEvent()
}

// Layer is the full capability surface of a native windowing layer.
type Layer interface {
	CallbackInstaller
	WindowOps
	MonitorOps
	InputOps
	Pump

	GetClipboardString() string
	SetClipboardString(s string)
	GetTime() float64
	SetTime(seconds float64)

	// Terminate releases everything the layer holds. No calls are valid
	// afterwards.
	Terminate()
}
