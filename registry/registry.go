// Package registry routes native single-slot callbacks to user closures.
//
// The native layer can hold one raw function per event kind per window.
// The registry owns the map from window identity to the closures the user
// registered, installs its own trampolines into the native slots, and fans
// each native delivery out to the matching closure with a typed event value.
//
// All methods must be called on the goroutine that pumps native events.
// Dispatch happens synchronously inside the pump call; the registry takes
// no locks and gives no cross-goroutine guarantee.
package registry

import (
	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/internal/logger"
	"github.com/kethru/glazier/native"
)

// entry holds the handlers registered for one window. A nil handler means
// the slot is unregistered; the entry itself stays in the map until
// ClearWindow removes it.
type entry struct {
	// window is shared by every sub-kind of the window state-change
	// family and gated by mask.
	window func(event.WindowEvent)
	mask   event.WindowEventMask

	key         func(event.KeyEvent)
	char        func(event.CharEvent)
	cursorPos   func(event.CursorEvent)
	cursorEnter func(event.CursorEnterEvent)
	mouseButton func(event.MouseButtonEvent)
	scroll      func(event.ScrollEvent)
	drop        func(event.DropEvent)
}

// Registry owns the identity-to-handler mapping for one event system.
// Lookup is by exact handle value; the registry never dereferences a
// handle and does not track whether it is still alive. Callers must clear
// a window's entry before the native layer can reuse its handle.
type Registry struct {
	installer native.CallbackInstaller
	windows   map[native.WindowID]*entry

	monitor  func(event.MonitorEvent)
	joystick func(event.JoystickEvent)
	errorFn  func(event.Error)
}

// New creates a registry that installs its trampolines through installer.
func New(installer native.CallbackInstaller) *Registry {
	return &Registry{
		installer: installer,
		windows:   make(map[native.WindowID]*entry),
	}
}

func (r *Registry) ensure(w native.WindowID) *entry {
	e := r.windows[w]
	if e == nil {
		e = &entry{}
		r.windows[w] = e
	}
	return e
}

// SetWindowHandler registers fn for the window state-change family, gated
// by mask. The native sub-slot for each kind in mask gets the trampoline
// installed; every other sub-slot is uninstalled. A nil fn clears the
// handler and uninstalls all nine sub-slots.
func (r *Registry) SetWindowHandler(w native.WindowID, fn func(event.WindowEvent), mask event.WindowEventMask) {
	if fn == nil {
		mask = 0
		if e := r.windows[w]; e != nil {
			e.window = nil
			e.mask = 0
		}
	} else {
		e := r.ensure(w)
		e.window = fn
		e.mask = mask
	}
	logger.Debugf("window handler for %#x: mask=%s", uintptr(w), mask)

	r.installWindowSlots(w, mask)
}

// installWindowSlots installs or uninstalls each sub-kind's native slot
// according to mask.
func (r *Registry) installWindowSlots(w native.WindowID, mask event.WindowEventMask) {
	ins := r.installer
	if mask.Has(event.PositionChanged) {
		ins.SetWindowPosCallback(w, r.deliverWindowPos)
	} else {
		ins.SetWindowPosCallback(w, nil)
	}
	if mask.Has(event.SizeChanged) {
		ins.SetWindowSizeCallback(w, r.deliverWindowSize)
	} else {
		ins.SetWindowSizeCallback(w, nil)
	}
	if mask.Has(event.FramebufferSizeChanged) {
		ins.SetFramebufferSizeCallback(w, r.deliverFramebufferSize)
	} else {
		ins.SetFramebufferSizeCallback(w, nil)
	}
	if mask.Has(event.ContentScaleChanged) {
		ins.SetContentScaleCallback(w, r.deliverContentScale)
	} else {
		ins.SetContentScaleCallback(w, nil)
	}
	if mask.Has(event.FocusChanged) {
		ins.SetWindowFocusCallback(w, r.deliverWindowFocus)
	} else {
		ins.SetWindowFocusCallback(w, nil)
	}
	if mask.Has(event.MinimizeStateChanged) {
		ins.SetWindowMinimizeCallback(w, r.deliverWindowMinimize)
	} else {
		ins.SetWindowMinimizeCallback(w, nil)
	}
	if mask.Has(event.MaximizeStateChanged) {
		ins.SetWindowMaximizeCallback(w, r.deliverWindowMaximize)
	} else {
		ins.SetWindowMaximizeCallback(w, nil)
	}
	if mask.Has(event.ContentNeedsRefresh) {
		ins.SetWindowRefreshCallback(w, r.deliverWindowRefresh)
	} else {
		ins.SetWindowRefreshCallback(w, nil)
	}
	if mask.Has(event.CloseRequested) {
		ins.SetWindowCloseCallback(w, r.deliverWindowClose)
	} else {
		ins.SetWindowCloseCallback(w, nil)
	}
}

// SetKeyHandler registers fn for key events on w, replacing any previous
// handler. A nil fn clears the handler and uninstalls the native slot.
func (r *Registry) SetKeyHandler(w native.WindowID, fn func(event.KeyEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.key = nil
		}
		r.installer.SetKeyCallback(w, nil)
		return
	}
	r.ensure(w).key = fn
	r.installer.SetKeyCallback(w, r.deliverKey)
}

// SetCharHandler registers fn for character input on w. A nil fn clears.
func (r *Registry) SetCharHandler(w native.WindowID, fn func(event.CharEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.char = nil
		}
		r.installer.SetCharCallback(w, nil)
		return
	}
	r.ensure(w).char = fn
	r.installer.SetCharCallback(w, r.deliverChar)
}

// SetCursorPosHandler registers fn for cursor motion on w. A nil fn clears.
func (r *Registry) SetCursorPosHandler(w native.WindowID, fn func(event.CursorEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.cursorPos = nil
		}
		r.installer.SetCursorPosCallback(w, nil)
		return
	}
	r.ensure(w).cursorPos = fn
	r.installer.SetCursorPosCallback(w, r.deliverCursorPos)
}

// SetCursorEnterHandler registers fn for cursor enter/leave on w. A nil fn
// clears.
func (r *Registry) SetCursorEnterHandler(w native.WindowID, fn func(event.CursorEnterEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.cursorEnter = nil
		}
		r.installer.SetCursorEnterCallback(w, nil)
		return
	}
	r.ensure(w).cursorEnter = fn
	r.installer.SetCursorEnterCallback(w, r.deliverCursorEnter)
}

// SetMouseButtonHandler registers fn for mouse buttons on w. A nil fn
// clears.
func (r *Registry) SetMouseButtonHandler(w native.WindowID, fn func(event.MouseButtonEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.mouseButton = nil
		}
		r.installer.SetMouseButtonCallback(w, nil)
		return
	}
	r.ensure(w).mouseButton = fn
	r.installer.SetMouseButtonCallback(w, r.deliverMouseButton)
}

// SetScrollHandler registers fn for scroll input on w. A nil fn clears.
func (r *Registry) SetScrollHandler(w native.WindowID, fn func(event.ScrollEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.scroll = nil
		}
		r.installer.SetScrollCallback(w, nil)
		return
	}
	r.ensure(w).scroll = fn
	r.installer.SetScrollCallback(w, r.deliverScroll)
}

// SetDropHandler registers fn for file drops on w. A nil fn clears.
func (r *Registry) SetDropHandler(w native.WindowID, fn func(event.DropEvent)) {
	if fn == nil {
		if e := r.windows[w]; e != nil {
			e.drop = nil
		}
		r.installer.SetDropCallback(w, nil)
		return
	}
	r.ensure(w).drop = fn
	r.installer.SetDropCallback(w, r.deliverDrop)
}

// SetMonitorHandler registers fn for monitor connect/disconnect. The slot
// is layer-global. A nil fn clears.
func (r *Registry) SetMonitorHandler(fn func(event.MonitorEvent)) {
	r.monitor = fn
	if fn == nil {
		r.installer.SetMonitorCallback(nil)
		return
	}
	r.installer.SetMonitorCallback(r.deliverMonitor)
}

// SetJoystickHandler registers fn for joystick connect/disconnect. The
// slot is layer-global. A nil fn clears.
func (r *Registry) SetJoystickHandler(fn func(event.JoystickEvent)) {
	r.joystick = fn
	if fn == nil {
		r.installer.SetJoystickCallback(nil)
		return
	}
	r.installer.SetJoystickCallback(r.deliverJoystick)
}

// SetErrorHandler registers fn for native layer errors. The slot is
// layer-global. A nil fn clears.
func (r *Registry) SetErrorHandler(fn func(event.Error)) {
	r.errorFn = fn
	if fn == nil {
		r.installer.SetErrorCallback(nil)
		return
	}
	r.installer.SetErrorCallback(r.deliverError)
}

// ClearWindow removes every handler registered for w and uninstalls all of
// its native slots. Window teardown must call this before the native layer
// can recycle the handle.
func (r *Registry) ClearWindow(w native.WindowID) {
	delete(r.windows, w)

	ins := r.installer
	ins.SetKeyCallback(w, nil)
	ins.SetCharCallback(w, nil)
	ins.SetCursorPosCallback(w, nil)
	ins.SetCursorEnterCallback(w, nil)
	ins.SetMouseButtonCallback(w, nil)
	ins.SetScrollCallback(w, nil)
	ins.SetDropCallback(w, nil)
	r.installWindowSlots(w, 0)

	logger.Debugf("cleared handlers for window %#x", uintptr(w))
}

// ClearAll removes every per-window and global handler. Used on event
// system shutdown.
func (r *Registry) ClearAll() {
	for w := range r.windows {
		r.ClearWindow(w)
	}
	r.SetMonitorHandler(nil)
	r.SetJoystickHandler(nil)
	r.SetErrorHandler(nil)
}

// Windows returns the number of windows with a live entry.
func (r *Registry) Windows() int {
	return len(r.windows)
}
