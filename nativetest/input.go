package nativetest

import (
	"fmt"

	"github.com/kethru/glazier/native"
)

// GetKey reports the last action recorded for key on w (0 = release).
func (l *Layer) GetKey(w native.WindowID, key int32) int32 {
	if s := l.win(w); s != nil {
		return s.keys[key]
	}
	return 0
}

// GetMouseButton reports the last action recorded for button on w.
func (l *Layer) GetMouseButton(w native.WindowID, button int32) int32 {
	if s := l.win(w); s != nil {
		return s.buttons[button]
	}
	return 0
}

func (l *Layer) GetCursorPos(w native.WindowID) (float64, float64) {
	if s := l.win(w); s != nil {
		return s.cursorX, s.cursorY
	}
	return 0, 0
}

func (l *Layer) SetCursorMode(w native.WindowID, mode native.CursorMode) {}

func (l *Layer) SetRawMouseMotion(w native.WindowID, enabled bool) {}

// KeyName gives a stable fake name for printable keys.
func (l *Layer) KeyName(key, scancode int32) string {
	if key >= 32 && key < 127 {
		return string(rune(key))
	}
	return fmt.Sprintf("scancode-%d", scancode)
}

// KeyScancode maps a key code onto a synthetic scancode.
func (l *Layer) KeyScancode(key int32) int32 { return key + 1000 }

func (l *Layer) JoystickPresent(slot native.JoystickSlot) bool {
	return l.joysticks[slot].present
}

func (l *Layer) JoystickName(slot native.JoystickSlot) string {
	return l.joysticks[slot].name
}

func (l *Layer) JoystickState(slot native.JoystickSlot) native.JoystickState {
	js := l.joysticks[slot]
	if !js.present {
		return native.JoystickState{}
	}
	state := native.JoystickState{
		Axes:    make([]float32, len(js.state.Axes)),
		Buttons: make([]bool, len(js.state.Buttons)),
		Hats:    make([]uint8, len(js.state.Hats)),
	}
	copy(state.Axes, js.state.Axes)
	copy(state.Buttons, js.state.Buttons)
	copy(state.Hats, js.state.Hats)
	return state
}

// SetJoystickAxis sets one axis value for a connected slot, for tests.
func (l *Layer) SetJoystickAxis(slot native.JoystickSlot, axis int, value float32) {
	if l.joysticks[slot].present && axis < len(l.joysticks[slot].state.Axes) {
		l.joysticks[slot].state.Axes[axis] = value
	}
}

// SetJoystickButton sets one button state for a connected slot, for tests.
func (l *Layer) SetJoystickButton(slot native.JoystickSlot, button int, pressed bool) {
	if l.joysticks[slot].present && button < len(l.joysticks[slot].state.Buttons) {
		l.joysticks[slot].state.Buttons[button] = pressed
	}
}
