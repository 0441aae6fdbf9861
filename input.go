package glazier

import (
	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/native"
)

/* Polled keyboard and mouse state */

// KeyState reports the last known action for key on the window.
func (w *Window) KeyState(key event.Key) event.Action {
	return event.Action(w.sys.layer.GetKey(w.id, int32(key)))
}

// MouseButtonState reports the last known action for button on the window.
func (w *Window) MouseButtonState(button event.MouseButton) event.Action {
	return event.Action(w.sys.layer.GetMouseButton(w.id, int32(button)))
}

// CursorPos returns the cursor position relative to the window content
// area.
func (w *Window) CursorPos() (x, y float64) {
	return w.sys.layer.GetCursorPos(w.id)
}

// SetCursorMode switches cursor visibility and confinement for the window.
func (w *Window) SetCursorMode(mode native.CursorMode) {
	w.sys.layer.SetCursorMode(w.id, mode)
}

// SetRawMouseMotion toggles unscaled, unaccelerated cursor deltas. Only
// meaningful while the cursor is disabled.
func (w *Window) SetRawMouseMotion(enabled bool) {
	w.sys.layer.SetRawMouseMotion(w.id, enabled)
}

// KeyName returns the layout-specific name of a printable key, preferring
// the key code and falling back to the scancode.
func (s *System) KeyName(key event.Key, scancode int) string {
	return s.layer.KeyName(int32(key), int32(scancode))
}

// KeyScancode returns the platform scancode for a key.
func (s *System) KeyScancode(key event.Key) int {
	return int(s.layer.KeyScancode(int32(key)))
}

/* Joysticks */

// Joystick is a fixed native joystick slot. Unlike windows, slots are
// never created or destroyed, only connected and disconnected.
type Joystick struct {
	slot native.JoystickSlot
	sys  *System
}

// Joystick returns the wrapper for a slot. Valid slots are
// 0..native.MaxJoysticks-1.
func (s *System) Joystick(slot native.JoystickSlot) *Joystick {
	return &Joystick{slot: slot, sys: s}
}

// Slot returns the native slot index.
func (j *Joystick) Slot() native.JoystickSlot { return j.slot }

// Present reports whether a device is connected in the slot.
func (j *Joystick) Present() bool {
	return j.sys.layer.JoystickPresent(j.slot)
}

// Name returns the device name, empty when disconnected.
func (j *Joystick) Name() string {
	return j.sys.layer.JoystickName(j.slot)
}

// State returns a snapshot of axes, buttons and hats. The snapshot is a
// copy and stays valid after the next pump.
func (j *Joystick) State() native.JoystickState {
	return j.sys.layer.JoystickState(j.slot)
}
