package registry

import (
	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/native"
)

// The deliver* methods are the trampolines installed into the native
// slots. Each one looks up the window entry by handle, converts the raw
// native data to the typed event, and invokes the registered closure
// synchronously. A missing entry, a cleared handler or an unset mask bit
// is a silent no-op: the native layer may fire a slot the registry was
// never asked to watch. Handler panics are not recovered and propagate
// out through the event pump call.

func (r *Registry) deliverKey(w native.WindowID, key, scancode, action, mods int32) {
	if e := r.windows[w]; e != nil && e.key != nil {
		e.key(event.KeyEvent{
			Window:   w,
			Key:      event.Key(key),
			Scancode: scancode,
			Action:   event.Action(action),
			Mods:     event.ModifierKey(mods),
		})
	}
}

func (r *Registry) deliverChar(w native.WindowID, codepoint rune) {
	if e := r.windows[w]; e != nil && e.char != nil {
		e.char(event.CharEvent{Window: w, Char: codepoint})
	}
}

func (r *Registry) deliverCursorPos(w native.WindowID, x, y float64) {
	if e := r.windows[w]; e != nil && e.cursorPos != nil {
		e.cursorPos(event.CursorEvent{Window: w, X: x, Y: y})
	}
}

func (r *Registry) deliverCursorEnter(w native.WindowID, entered bool) {
	if e := r.windows[w]; e != nil && e.cursorEnter != nil {
		e.cursorEnter(event.CursorEnterEvent{Window: w, Entered: entered})
	}
}

func (r *Registry) deliverMouseButton(w native.WindowID, button, action, mods int32) {
	if e := r.windows[w]; e != nil && e.mouseButton != nil {
		e.mouseButton(event.MouseButtonEvent{
			Window: w,
			Button: event.MouseButton(button),
			Action: event.Action(action),
			Mods:   event.ModifierKey(mods),
		})
	}
}

func (r *Registry) deliverScroll(w native.WindowID, xoff, yoff float64) {
	if e := r.windows[w]; e != nil && e.scroll != nil {
		e.scroll(event.ScrollEvent{Window: w, X: xoff, Y: yoff})
	}
}

func (r *Registry) deliverDrop(w native.WindowID, paths []string) {
	if e := r.windows[w]; e != nil && e.drop != nil {
		e.drop(event.DropEvent{Window: w, Paths: paths})
	}
}

// windowFamily returns the handler for w when kind is present in the mask,
// nil otherwise.
func (r *Registry) windowFamily(w native.WindowID, kind event.WindowEventKind) func(event.WindowEvent) {
	e := r.windows[w]
	if e == nil || e.window == nil || !e.mask.Has(kind) {
		return nil
	}
	return e.window
}

func (r *Registry) deliverWindowPos(w native.WindowID, x, y int32) {
	if fn := r.windowFamily(w, event.PositionChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.PositionChanged, X: x, Y: y})
	}
}

func (r *Registry) deliverWindowSize(w native.WindowID, width, height int32) {
	if fn := r.windowFamily(w, event.SizeChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.SizeChanged, Width: width, Height: height})
	}
}

func (r *Registry) deliverFramebufferSize(w native.WindowID, width, height int32) {
	if fn := r.windowFamily(w, event.FramebufferSizeChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.FramebufferSizeChanged, Width: width, Height: height})
	}
}

func (r *Registry) deliverContentScale(w native.WindowID, xscale, yscale float32) {
	if fn := r.windowFamily(w, event.ContentScaleChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.ContentScaleChanged, ScaleX: xscale, ScaleY: yscale})
	}
}

func (r *Registry) deliverWindowFocus(w native.WindowID, focused bool) {
	if fn := r.windowFamily(w, event.FocusChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.FocusChanged, State: focused})
	}
}

func (r *Registry) deliverWindowMinimize(w native.WindowID, minimized bool) {
	if fn := r.windowFamily(w, event.MinimizeStateChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.MinimizeStateChanged, State: minimized})
	}
}

func (r *Registry) deliverWindowMaximize(w native.WindowID, maximized bool) {
	if fn := r.windowFamily(w, event.MaximizeStateChanged); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.MaximizeStateChanged, State: maximized})
	}
}

func (r *Registry) deliverWindowRefresh(w native.WindowID) {
	if fn := r.windowFamily(w, event.ContentNeedsRefresh); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.ContentNeedsRefresh})
	}
}

func (r *Registry) deliverWindowClose(w native.WindowID) {
	if fn := r.windowFamily(w, event.CloseRequested); fn != nil {
		fn(event.WindowEvent{Window: w, Kind: event.CloseRequested})
	}
}

func (r *Registry) deliverMonitor(m native.MonitorID, connected bool) {
	if r.monitor != nil {
		r.monitor(event.MonitorEvent{Monitor: m, Connected: connected})
	}
}

func (r *Registry) deliverJoystick(slot native.JoystickSlot, connected bool) {
	if r.joystick != nil {
		r.joystick(event.JoystickEvent{Slot: slot, Connected: connected})
	}
}

func (r *Registry) deliverError(code int32, description string) {
	if r.errorFn != nil {
		r.errorFn(event.Error{Code: code, Description: description})
	}
}
