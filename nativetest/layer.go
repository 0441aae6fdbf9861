// Package nativetest provides a scripted in-memory implementation of
// native.Layer. Tests and the diagnostic CLI drive it by queueing synthetic
// events with the Emit methods; PollEvents then delivers them through
// whatever raw callbacks are currently installed, exactly like a real
// layer's event pump.
package nativetest

import (
	"fmt"

	"github.com/kethru/glazier/native"
)

// windowState is the fake layer's book-keeping for one live window.
type windowState struct {
	title       string
	x, y        int32
	width       int32
	height      int32
	scaleX      float32
	scaleY      float32
	opacity     float32
	attribs     map[native.WindowAttrib]bool
	shouldClose bool
	monitor     native.MonitorID

	keys    map[int32]int32
	buttons map[int32]int32
	cursorX float64
	cursorY float64

	// raw callback slots, one per event kind
	keyCB         native.KeyFunc
	charCB        native.CharFunc
	cursorPosCB   native.CursorPosFunc
	cursorEnterCB native.CursorEnterFunc
	mouseButtonCB native.MouseButtonFunc
	scrollCB      native.ScrollFunc
	dropCB        native.DropFunc

	windowPosCB       native.WindowPosFunc
	windowSizeCB      native.WindowSizeFunc
	framebufferSizeCB native.FramebufferSizeFunc
	contentScaleCB    native.ContentScaleFunc
	windowFocusCB     native.WindowFocusFunc
	windowMinimizeCB  native.WindowMinimizeFunc
	windowMaximizeCB  native.WindowMaximizeFunc
	windowRefreshCB   native.WindowRefreshFunc
	windowCloseCB     native.WindowCloseFunc
}

// monitorState describes one fake monitor.
type monitorState struct {
	name      string
	x, y      int32
	width     int32
	height    int32
	physW     int32
	physH     int32
	scaleX    float32
	scaleY    float32
	refresh   int32
	connected bool
}

type joystickState struct {
	name    string
	present bool
	state   native.JoystickState
}

// Layer is a scripted native layer. The zero value is not usable; create
// one with NewLayer. Like a real layer it is single-threaded: all calls
// belong on the goroutine that pumps events.
type Layer struct {
	nextWindow  native.WindowID
	nextMonitor native.MonitorID
	windows     map[native.WindowID]*windowState
	monitors    []native.MonitorID
	monitorByID map[native.MonitorID]*monitorState
	joysticks   [native.MaxJoysticks]joystickState

	monitorCB  native.MonitorFunc
	joystickCB native.JoystickFunc
	errorCB    native.ErrorFunc

	pending   []func()
	clipboard string
	now       float64
}

var _ native.Layer = (*Layer)(nil)

// NewLayer creates an empty fake layer with a single primary monitor.
func NewLayer() *Layer {
	l := &Layer{
		nextWindow:  1,
		nextMonitor: 1,
		windows:     make(map[native.WindowID]*windowState),
		monitorByID: make(map[native.MonitorID]*monitorState),
	}
	l.AddMonitor("Fake Display 0", 0, 0, 1920, 1080)
	return l
}

func (l *Layer) win(w native.WindowID) *windowState {
	return l.windows[w]
}

// AddMonitor plugs a monitor into the fake layer and returns its handle.
// The connect event is queued for the next pump.
func (l *Layer) AddMonitor(name string, x, y, width, height int32) native.MonitorID {
	id := l.nextMonitor
	l.nextMonitor++
	l.monitorByID[id] = &monitorState{
		name:      name,
		x:         x,
		y:         y,
		width:     width,
		height:    height,
		physW:     width / 4,
		physH:     height / 4,
		scaleX:    1,
		scaleY:    1,
		refresh:   60,
		connected: true,
	}
	l.monitors = append(l.monitors, id)
	l.pending = append(l.pending, func() {
		if l.monitorCB != nil {
			l.monitorCB(id, true)
		}
	})
	return id
}

// RemoveMonitor unplugs a monitor and queues the disconnect event.
func (l *Layer) RemoveMonitor(m native.MonitorID) {
	ms := l.monitorByID[m]
	if ms == nil || !ms.connected {
		return
	}
	ms.connected = false
	for i, id := range l.monitors {
		if id == m {
			l.monitors = append(l.monitors[:i], l.monitors[i+1:]...)
			break
		}
	}
	l.pending = append(l.pending, func() {
		if l.monitorCB != nil {
			l.monitorCB(m, false)
		}
	})
}

// ConnectJoystick plugs a joystick into a slot and queues the connect
// event.
func (l *Layer) ConnectJoystick(slot native.JoystickSlot, name string) {
	l.joysticks[slot] = joystickState{
		name:    name,
		present: true,
		state: native.JoystickState{
			Axes:    make([]float32, 6),
			Buttons: make([]bool, 15),
			Hats:    make([]uint8, 1),
		},
	}
	l.pending = append(l.pending, func() {
		if l.joystickCB != nil {
			l.joystickCB(slot, true)
		}
	})
}

// DisconnectJoystick unplugs a slot and queues the disconnect event.
func (l *Layer) DisconnectJoystick(slot native.JoystickSlot) {
	if !l.joysticks[slot].present {
		return
	}
	l.joysticks[slot].present = false
	l.pending = append(l.pending, func() {
		if l.joystickCB != nil {
			l.joystickCB(slot, false)
		}
	})
}

// EmitError queues a layer error for the global error slot.
func (l *Layer) EmitError(code int32, description string) {
	l.pending = append(l.pending, func() {
		if l.errorCB != nil {
			l.errorCB(code, description)
		}
	})
}

/* Pump */

// PollEvents delivers every queued event through the currently installed
// slots. Events queued by a callback during delivery are delivered in the
// same call, matching a real pump's synchronous fan-out.
func (l *Layer) PollEvents() {
	for len(l.pending) > 0 {
		next := l.pending[0]
		l.pending = l.pending[1:]
		next()
	}
}

// WaitEvents delivers queued events; with nothing queued it returns
// immediately rather than blocking, which keeps tests deterministic.
func (l *Layer) WaitEvents() { l.PollEvents() }

// WaitEventsTimeout advances the fake clock and delivers queued events.
func (l *Layer) WaitEventsTimeout(seconds float64) {
	l.now += seconds
	l.PollEvents()
}

// PostEmptyEvent is a no-op wake-up, as the fake pump never blocks.
func (l *Layer) PostEmptyEvent() {}

/* Windows */

// CreateWindow allocates a new window handle.
func (l *Layer) CreateWindow(cfg native.WindowConfig) (native.WindowID, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("%w: size %dx%d", native.ErrWindowCreate, cfg.Width, cfg.Height)
	}
	id := l.nextWindow
	l.nextWindow++
	l.windows[id] = &windowState{
		title:   cfg.Title,
		width:   cfg.Width,
		height:  cfg.Height,
		scaleX:  1,
		scaleY:  1,
		opacity: 1,
		attribs: map[native.WindowAttrib]bool{
			native.AttribResizable:   cfg.Resizable,
			native.AttribVisible:     cfg.Visible,
			native.AttribDecorated:   cfg.Decorated,
			native.AttribFocused:     cfg.Focused,
			native.AttribFloating:    cfg.Floating,
			native.AttribMaximized:   cfg.Maximized,
			native.AttribFocusOnShow: cfg.FocusOnShow,
		},
		monitor: cfg.Fullscreen,
		keys:    make(map[int32]int32),
		buttons: make(map[int32]int32),
	}
	return id, nil
}

// DestroyWindow drops the window and all of its callback slots. The handle
// value may be reused by a later CreateWindow.
func (l *Layer) DestroyWindow(w native.WindowID) {
	delete(l.windows, w)
}

func (l *Layer) ShowWindow(w native.WindowID) {
	if s := l.win(w); s != nil {
		s.attribs[native.AttribVisible] = true
	}
}

func (l *Layer) HideWindow(w native.WindowID) {
	if s := l.win(w); s != nil {
		s.attribs[native.AttribVisible] = false
	}
}

// FocusWindow focuses the window and queues the focus event, as a real
// layer does when focus actually moves.
func (l *Layer) FocusWindow(w native.WindowID) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.attribs[native.AttribFocused] = true
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.windowFocusCB != nil {
			t.windowFocusCB(w, true)
		}
	})
}

func (l *Layer) RequestWindowAttention(w native.WindowID) {}

// MinimizeWindow minimizes and queues the state-change event.
func (l *Layer) MinimizeWindow(w native.WindowID) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.attribs[native.AttribMinimized] = true
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.windowMinimizeCB != nil {
			t.windowMinimizeCB(w, true)
		}
	})
}

// MaximizeWindow maximizes and queues the state-change event.
func (l *Layer) MaximizeWindow(w native.WindowID) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.attribs[native.AttribMaximized] = true
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.windowMaximizeCB != nil {
			t.windowMaximizeCB(w, true)
		}
	})
}

// RestoreWindow restores and queues state-change events for whichever of
// minimized/maximized was set.
func (l *Layer) RestoreWindow(w native.WindowID) {
	s := l.win(w)
	if s == nil {
		return
	}
	if s.attribs[native.AttribMinimized] {
		s.attribs[native.AttribMinimized] = false
		l.pending = append(l.pending, func() {
			if t := l.win(w); t != nil && t.windowMinimizeCB != nil {
				t.windowMinimizeCB(w, false)
			}
		})
	}
	if s.attribs[native.AttribMaximized] {
		s.attribs[native.AttribMaximized] = false
		l.pending = append(l.pending, func() {
			if t := l.win(w); t != nil && t.windowMaximizeCB != nil {
				t.windowMaximizeCB(w, false)
			}
		})
	}
}

func (l *Layer) GetWindowAttrib(w native.WindowID, attrib native.WindowAttrib) bool {
	if s := l.win(w); s != nil {
		return s.attribs[attrib]
	}
	return false
}

func (l *Layer) SetWindowAttrib(w native.WindowID, attrib native.WindowAttrib, value bool) {
	if s := l.win(w); s != nil {
		s.attribs[attrib] = value
	}
}

func (l *Layer) GetWindowPos(w native.WindowID) (int32, int32) {
	if s := l.win(w); s != nil {
		return s.x, s.y
	}
	return 0, 0
}

// SetWindowPos moves the window and queues the position event.
func (l *Layer) SetWindowPos(w native.WindowID, x, y int32) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.x, s.y = x, y
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.windowPosCB != nil {
			t.windowPosCB(w, x, y)
		}
	})
}

func (l *Layer) GetWindowSize(w native.WindowID) (int32, int32) {
	if s := l.win(w); s != nil {
		return s.width, s.height
	}
	return 0, 0
}

// SetWindowSize resizes the window and queues both the size and the
// framebuffer size events, matching real layer behavior.
func (l *Layer) SetWindowSize(w native.WindowID, width, height int32) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.width, s.height = width, height
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.windowSizeCB != nil {
			t.windowSizeCB(w, width, height)
		}
	})
	l.pending = append(l.pending, func() {
		if t := l.win(w); t != nil && t.framebufferSizeCB != nil {
			t.framebufferSizeCB(w, width, height)
		}
	})
}

func (l *Layer) GetFramebufferSize(w native.WindowID) (int32, int32) {
	if s := l.win(w); s != nil {
		return s.width, s.height
	}
	return 0, 0
}

func (l *Layer) GetWindowContentScale(w native.WindowID) (float32, float32) {
	if s := l.win(w); s != nil {
		return s.scaleX, s.scaleY
	}
	return 0, 0
}

func (l *Layer) GetWindowOpacity(w native.WindowID) float32 {
	if s := l.win(w); s != nil {
		return s.opacity
	}
	return 0
}

func (l *Layer) SetWindowOpacity(w native.WindowID, opacity float32) {
	if s := l.win(w); s != nil {
		s.opacity = opacity
	}
}

func (l *Layer) SetWindowTitle(w native.WindowID, title string) {
	if s := l.win(w); s != nil {
		s.title = title
	}
}

// WindowTitle reports the current title, for test assertions.
func (l *Layer) WindowTitle(w native.WindowID) string {
	if s := l.win(w); s != nil {
		return s.title
	}
	return ""
}

func (l *Layer) SetWindowSizeLimits(w native.WindowID, minW, minH, maxW, maxH int32) {}

func (l *Layer) SetWindowAspectRatio(w native.WindowID, numer, denom int32) {}

func (l *Layer) WindowShouldClose(w native.WindowID) bool {
	if s := l.win(w); s != nil {
		return s.shouldClose
	}
	return false
}

func (l *Layer) SetWindowShouldClose(w native.WindowID, value bool) {
	if s := l.win(w); s != nil {
		s.shouldClose = value
	}
}

func (l *Layer) SetWindowMonitor(w native.WindowID, m native.MonitorID, x, y, width, height, refreshRate int32) {
	s := l.win(w)
	if s == nil {
		return
	}
	s.monitor = m
	if m == 0 {
		l.SetWindowPos(w, x, y)
	}
	l.SetWindowSize(w, width, height)
}

func (l *Layer) GetWindowMonitor(w native.WindowID) native.MonitorID {
	if s := l.win(w); s != nil {
		return s.monitor
	}
	return 0
}

/* Clipboard and time */

func (l *Layer) GetClipboardString() string  { return l.clipboard }
func (l *Layer) SetClipboardString(s string) { l.clipboard = s }

func (l *Layer) GetTime() float64        { return l.now }
func (l *Layer) SetTime(seconds float64) { l.now = seconds }

// AdvanceTime moves the fake clock forward without pumping.
func (l *Layer) AdvanceTime(seconds float64) { l.now += seconds }

// Terminate drops every window, monitor and global slot.
func (l *Layer) Terminate() {
	l.windows = make(map[native.WindowID]*windowState)
	l.monitors = nil
	l.monitorByID = make(map[native.MonitorID]*monitorState)
	l.pending = nil
	l.monitorCB = nil
	l.joystickCB = nil
	l.errorCB = nil
}
