// Package event defines the typed event values delivered to registered
// handlers, together with the window event mask used to subscribe to a
// subset of the window state-change family.
package event

import (
	"strings"

	"github.com/kethru/glazier/native"
)

// WindowEventKind identifies one sub-kind of the window state-change family.
// The kinds are bit values so they double as mask entries.
type WindowEventKind uint16

const (
	PositionChanged WindowEventKind = 1 << iota
	SizeChanged
	FramebufferSizeChanged
	ContentScaleChanged
	FocusChanged
	MinimizeStateChanged
	MaximizeStateChanged
	ContentNeedsRefresh
	CloseRequested
)

// AllWindowEvents selects every sub-kind of the window family.
const AllWindowEvents WindowEventMask = WindowEventMask(CloseRequested<<1 - 1)

var windowEventNames = map[WindowEventKind]string{
	PositionChanged:        "position-changed",
	SizeChanged:            "size-changed",
	FramebufferSizeChanged: "framebuffer-size-changed",
	ContentScaleChanged:    "content-scale-changed",
	FocusChanged:           "focus-changed",
	MinimizeStateChanged:   "minimize-state-changed",
	MaximizeStateChanged:   "maximize-state-changed",
	ContentNeedsRefresh:    "content-needs-refresh",
	CloseRequested:         "close-requested",
}

func (k WindowEventKind) String() string {
	if name, ok := windowEventNames[k]; ok {
		return name
	}
	return "unknown"
}

// WindowEventMask selects which window sub-kinds a shared handler observes.
type WindowEventMask uint16

// Has reports whether the mask includes the given sub-kind.
func (m WindowEventMask) Has(k WindowEventKind) bool {
	return m&WindowEventMask(k) != 0
}

// With returns the mask with the given sub-kinds added.
func (m WindowEventMask) With(kinds ...WindowEventKind) WindowEventMask {
	for _, k := range kinds {
		m |= WindowEventMask(k)
	}
	return m
}

// Without returns the mask with the given sub-kinds removed.
func (m WindowEventMask) Without(kinds ...WindowEventKind) WindowEventMask {
	for _, k := range kinds {
		m &^= WindowEventMask(k)
	}
	return m
}

// Mask builds a WindowEventMask from sub-kinds.
func Mask(kinds ...WindowEventKind) WindowEventMask {
	var m WindowEventMask
	return m.With(kinds...)
}

func (m WindowEventMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for k := PositionChanged; k <= CloseRequested; k <<= 1 {
		if m.Has(k) {
			parts = append(parts, k.String())
		}
	}
	return strings.Join(parts, "|")
}

// WindowEvent is delivered to a window-family handler. Kind names which
// sub-kind fired; the payload fields are filled for the kinds that carry one.
type WindowEvent struct {
	Window native.WindowID
	Kind   WindowEventKind

	// X, Y carry the new position for PositionChanged
	X, Y int32
	// Width, Height carry the new size for SizeChanged and FramebufferSizeChanged
	Width, Height int32
	// ScaleX, ScaleY carry the new scale for ContentScaleChanged
	ScaleX, ScaleY float32
	// State carries the flag for FocusChanged, MinimizeStateChanged, MaximizeStateChanged
	State bool
}

// KeyEvent is delivered on key press, repeat and release.
type KeyEvent struct {
	Window   native.WindowID
	Key      Key
	Scancode int32
	Action   Action
	Mods     ModifierKey
}

// CharEvent is delivered on unicode character input.
type CharEvent struct {
	Window native.WindowID
	Char   rune
}

// CursorEvent is delivered on cursor motion.
type CursorEvent struct {
	Window native.WindowID
	X, Y   float64
}

// CursorEnterEvent is delivered when the cursor crosses the window boundary.
type CursorEnterEvent struct {
	Window  native.WindowID
	Entered bool
}

// MouseButtonEvent is delivered on mouse button press and release.
type MouseButtonEvent struct {
	Window native.WindowID
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// ScrollEvent is delivered on scroll wheel or touchpad scroll input.
type ScrollEvent struct {
	Window native.WindowID
	X, Y   float64
}

// DropEvent is delivered when files are dropped onto a window.
type DropEvent struct {
	Window native.WindowID
	Paths  []string
}

// MonitorEvent is delivered when a monitor is connected or disconnected.
type MonitorEvent struct {
	Monitor   native.MonitorID
	Connected bool
}

// JoystickEvent is delivered when a joystick is connected or disconnected.
type JoystickEvent struct {
	Slot      native.JoystickSlot
	Connected bool
}

// Error is delivered to the error handler when the native layer reports a
// fault outside a specific call.
type Error struct {
	Code        int32
	Description string
}
