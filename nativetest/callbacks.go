package nativetest

import "github.com/kethru/glazier/native"

// Set*Callback implement native.CallbackInstaller. Installing on an
// unknown window is ignored, as a real layer would reject the handle.

func (l *Layer) SetKeyCallback(w native.WindowID, fn native.KeyFunc) {
	if s := l.win(w); s != nil {
		s.keyCB = fn
	}
}

func (l *Layer) SetCharCallback(w native.WindowID, fn native.CharFunc) {
	if s := l.win(w); s != nil {
		s.charCB = fn
	}
}

func (l *Layer) SetCursorPosCallback(w native.WindowID, fn native.CursorPosFunc) {
	if s := l.win(w); s != nil {
		s.cursorPosCB = fn
	}
}

func (l *Layer) SetCursorEnterCallback(w native.WindowID, fn native.CursorEnterFunc) {
	if s := l.win(w); s != nil {
		s.cursorEnterCB = fn
	}
}

func (l *Layer) SetMouseButtonCallback(w native.WindowID, fn native.MouseButtonFunc) {
	if s := l.win(w); s != nil {
		s.mouseButtonCB = fn
	}
}

func (l *Layer) SetScrollCallback(w native.WindowID, fn native.ScrollFunc) {
	if s := l.win(w); s != nil {
		s.scrollCB = fn
	}
}

func (l *Layer) SetDropCallback(w native.WindowID, fn native.DropFunc) {
	if s := l.win(w); s != nil {
		s.dropCB = fn
	}
}

func (l *Layer) SetWindowPosCallback(w native.WindowID, fn native.WindowPosFunc) {
	if s := l.win(w); s != nil {
		s.windowPosCB = fn
	}
}

func (l *Layer) SetWindowSizeCallback(w native.WindowID, fn native.WindowSizeFunc) {
	if s := l.win(w); s != nil {
		s.windowSizeCB = fn
	}
}

func (l *Layer) SetFramebufferSizeCallback(w native.WindowID, fn native.FramebufferSizeFunc) {
	if s := l.win(w); s != nil {
		s.framebufferSizeCB = fn
	}
}

func (l *Layer) SetContentScaleCallback(w native.WindowID, fn native.ContentScaleFunc) {
	if s := l.win(w); s != nil {
		s.contentScaleCB = fn
	}
}

func (l *Layer) SetWindowFocusCallback(w native.WindowID, fn native.WindowFocusFunc) {
	if s := l.win(w); s != nil {
		s.windowFocusCB = fn
	}
}

func (l *Layer) SetWindowMinimizeCallback(w native.WindowID, fn native.WindowMinimizeFunc) {
	if s := l.win(w); s != nil {
		s.windowMinimizeCB = fn
	}
}

func (l *Layer) SetWindowMaximizeCallback(w native.WindowID, fn native.WindowMaximizeFunc) {
	if s := l.win(w); s != nil {
		s.windowMaximizeCB = fn
	}
}

func (l *Layer) SetWindowRefreshCallback(w native.WindowID, fn native.WindowRefreshFunc) {
	if s := l.win(w); s != nil {
		s.windowRefreshCB = fn
	}
}

func (l *Layer) SetWindowCloseCallback(w native.WindowID, fn native.WindowCloseFunc) {
	if s := l.win(w); s != nil {
		s.windowCloseCB = fn
	}
}

func (l *Layer) SetMonitorCallback(fn native.MonitorFunc)   { l.monitorCB = fn }
func (l *Layer) SetJoystickCallback(fn native.JoystickFunc) { l.joystickCB = fn }
func (l *Layer) SetErrorCallback(fn native.ErrorFunc)       { l.errorCB = fn }

/* Slot inspection, for asserting install/uninstall at the native boundary */

// SlotKind names one per-window callback slot for Installed.
type SlotKind int

const (
	SlotKey SlotKind = iota
	SlotChar
	SlotCursorPos
	SlotCursorEnter
	SlotMouseButton
	SlotScroll
	SlotDrop
	SlotWindowPos
	SlotWindowSize
	SlotFramebufferSize
	SlotContentScale
	SlotWindowFocus
	SlotWindowMinimize
	SlotWindowMaximize
	SlotWindowRefresh
	SlotWindowClose
)

// Installed reports whether the given per-window slot currently holds a
// callback.
func (l *Layer) Installed(w native.WindowID, kind SlotKind) bool {
	s := l.win(w)
	if s == nil {
		return false
	}
	switch kind {
	case SlotKey:
		return s.keyCB != nil
	case SlotChar:
		return s.charCB != nil
	case SlotCursorPos:
		return s.cursorPosCB != nil
	case SlotCursorEnter:
		return s.cursorEnterCB != nil
	case SlotMouseButton:
		return s.mouseButtonCB != nil
	case SlotScroll:
		return s.scrollCB != nil
	case SlotDrop:
		return s.dropCB != nil
	case SlotWindowPos:
		return s.windowPosCB != nil
	case SlotWindowSize:
		return s.windowSizeCB != nil
	case SlotFramebufferSize:
		return s.framebufferSizeCB != nil
	case SlotContentScale:
		return s.contentScaleCB != nil
	case SlotWindowFocus:
		return s.windowFocusCB != nil
	case SlotWindowMinimize:
		return s.windowMinimizeCB != nil
	case SlotWindowMaximize:
		return s.windowMaximizeCB != nil
	case SlotWindowRefresh:
		return s.windowRefreshCB != nil
	case SlotWindowClose:
		return s.windowCloseCB != nil
	default:
		return false
	}
}

// MonitorCallbackInstalled reports whether the global monitor slot holds a
// callback.
func (l *Layer) MonitorCallbackInstalled() bool { return l.monitorCB != nil }

// JoystickCallbackInstalled reports whether the global joystick slot holds
// a callback.
func (l *Layer) JoystickCallbackInstalled() bool { return l.joystickCB != nil }

// ErrorCallbackInstalled reports whether the global error slot holds a
// callback.
func (l *Layer) ErrorCallbackInstalled() bool { return l.errorCB != nil }

/* Synthetic input events */

// EmitKey queues a key event for w.
func (l *Layer) EmitKey(w native.WindowID, key, scancode, action, mods int32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.keys[key] = action
			if s.keyCB != nil {
				s.keyCB(w, key, scancode, action, mods)
			}
		}
	})
}

// EmitChar queues a character input event for w.
func (l *Layer) EmitChar(w native.WindowID, codepoint rune) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.charCB != nil {
			s.charCB(w, codepoint)
		}
	})
}

// EmitCursorPos queues a cursor motion event for w.
func (l *Layer) EmitCursorPos(w native.WindowID, x, y float64) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.cursorX, s.cursorY = x, y
			if s.cursorPosCB != nil {
				s.cursorPosCB(w, x, y)
			}
		}
	})
}

// EmitCursorEnter queues a cursor enter/leave event for w.
func (l *Layer) EmitCursorEnter(w native.WindowID, entered bool) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.cursorEnterCB != nil {
			s.cursorEnterCB(w, entered)
		}
	})
}

// EmitMouseButton queues a mouse button event for w.
func (l *Layer) EmitMouseButton(w native.WindowID, button, action, mods int32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.buttons[button] = action
			if s.mouseButtonCB != nil {
				s.mouseButtonCB(w, button, action, mods)
			}
		}
	})
}

// EmitScroll queues a scroll event for w.
func (l *Layer) EmitScroll(w native.WindowID, xoff, yoff float64) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.scrollCB != nil {
			s.scrollCB(w, xoff, yoff)
		}
	})
}

// EmitDrop queues a file drop event for w.
func (l *Layer) EmitDrop(w native.WindowID, paths []string) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.dropCB != nil {
			s.dropCB(w, paths)
		}
	})
}

/* Synthetic window state-change events */

// EmitWindowPos queues a position-changed event without moving the window,
// as if the user dragged it.
func (l *Layer) EmitWindowPos(w native.WindowID, x, y int32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.x, s.y = x, y
			if s.windowPosCB != nil {
				s.windowPosCB(w, x, y)
			}
		}
	})
}

// EmitWindowSize queues a size-changed event, as if the user resized the
// window frame.
func (l *Layer) EmitWindowSize(w native.WindowID, width, height int32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.width, s.height = width, height
			if s.windowSizeCB != nil {
				s.windowSizeCB(w, width, height)
			}
		}
	})
}

// EmitFramebufferSize queues a framebuffer-size-changed event.
func (l *Layer) EmitFramebufferSize(w native.WindowID, width, height int32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.framebufferSizeCB != nil {
			s.framebufferSizeCB(w, width, height)
		}
	})
}

// EmitContentScale queues a content-scale-changed event.
func (l *Layer) EmitContentScale(w native.WindowID, xscale, yscale float32) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.scaleX, s.scaleY = xscale, yscale
			if s.contentScaleCB != nil {
				s.contentScaleCB(w, xscale, yscale)
			}
		}
	})
}

// EmitWindowFocus queues a focus-changed event.
func (l *Layer) EmitWindowFocus(w native.WindowID, focused bool) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.attribs[native.AttribFocused] = focused
			if s.windowFocusCB != nil {
				s.windowFocusCB(w, focused)
			}
		}
	})
}

// EmitWindowRefresh queues a content-needs-refresh event.
func (l *Layer) EmitWindowRefresh(w native.WindowID) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil && s.windowRefreshCB != nil {
			s.windowRefreshCB(w)
		}
	})
}

// EmitWindowClose queues a close-requested event. The layer also flags the
// window, like a real layer's close button press.
func (l *Layer) EmitWindowClose(w native.WindowID) {
	l.pending = append(l.pending, func() {
		if s := l.win(w); s != nil {
			s.shouldClose = true
			if s.windowCloseCB != nil {
				s.windowCloseCB(w)
			}
		}
	})
}
