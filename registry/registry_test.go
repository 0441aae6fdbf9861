package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/native"
	"github.com/kethru/glazier/nativetest"
)

func newTestRegistry(t *testing.T) (*nativetest.Layer, *Registry, native.WindowID, native.WindowID) {
	t.Helper()
	layer := nativetest.NewLayer()
	r := New(layer)

	winA, err := layer.CreateWindow(native.WindowConfig{Width: 800, Height: 600, Title: "a"})
	require.NoError(t, err)
	winB, err := layer.CreateWindow(native.WindowConfig{Width: 800, Height: 600, Title: "b"})
	require.NoError(t, err)

	return layer, r, winA, winB
}

func TestDispatchWithoutRegistration(t *testing.T) {
	_, r, winA, _ := newTestRegistry(t)

	// Invoking a trampoline for an identity with no entry must be a
	// silent no-op, since native layers may fire slots nobody watches.
	r.deliverKey(winA, int32(event.KeyA), 30, int32(event.Press), 0)
	r.deliverWindowClose(winA)
	r.deliverCursorPos(winA, 10, 20)
	r.deliverMonitor(native.MonitorID(1), true)
	r.deliverJoystick(0, true)
	r.deliverError(1, "boom")

	if got := r.Windows(); got != 0 {
		t.Errorf("Expected no entries after bare dispatch, got %d", got)
	}
}

func TestLastWriteWins(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var first, second int
	r.SetKeyHandler(winA, func(event.KeyEvent) { first++ })
	r.SetKeyHandler(winA, func(event.KeyEvent) { second++ })

	layer.EmitKey(winA, int32(event.KeyW), 17, int32(event.Press), 0)
	layer.PollEvents()

	if first != 0 {
		t.Errorf("Expected replaced handler to never fire, got %d invocations", first)
	}
	if second != 1 {
		t.Errorf("Expected current handler to fire once, got %d", second)
	}
}

func TestClearUninstallsNativeSlot(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var calls int
	r.SetKeyHandler(winA, func(event.KeyEvent) { calls++ })
	if !layer.Installed(winA, nativetest.SlotKey) {
		t.Fatal("Expected key slot installed after registration")
	}

	r.SetKeyHandler(winA, nil)
	if layer.Installed(winA, nativetest.SlotKey) {
		t.Error("Expected key slot uninstalled after clearing")
	}

	layer.EmitKey(winA, int32(event.KeyW), 17, int32(event.Press), 0)
	layer.PollEvents()
	if calls != 0 {
		t.Errorf("Expected no invocation after clear, got %d", calls)
	}

	// The entry slot survives the clear; only the closure is dropped.
	if got := r.Windows(); got != 1 {
		t.Errorf("Expected entry to remain in map, got %d entries", got)
	}
}

func TestRegistrationIdempotence(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var calls int
	fn := func(event.KeyEvent) { calls++ }
	r.SetKeyHandler(winA, fn)
	r.SetKeyHandler(winA, fn)

	layer.EmitKey(winA, int32(event.KeySpace), 57, int32(event.Press), 0)
	layer.PollEvents()

	if calls != 1 {
		t.Errorf("Expected exactly one invocation after double registration, got %d", calls)
	}
}

func TestKeyEventConversion(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var got event.KeyEvent
	r.SetKeyHandler(winA, func(e event.KeyEvent) { got = e })

	layer.EmitKey(winA, int32(event.KeyF5), 63, int32(event.Repeat), int32(event.ModControl|event.ModShift))
	layer.PollEvents()

	assert.Equal(t, winA, got.Window)
	assert.Equal(t, event.KeyF5, got.Key)
	assert.Equal(t, int32(63), got.Scancode)
	assert.Equal(t, event.Repeat, got.Action)
	assert.Equal(t, event.ModControl|event.ModShift, got.Mods)
}

func TestCloseRequestedRouting(t *testing.T) {
	layer, r, winA, winB := newTestRegistry(t)

	var events []event.WindowEvent
	r.SetWindowHandler(winA, func(e event.WindowEvent) {
		events = append(events, e)
	}, event.Mask(event.CloseRequested))

	layer.EmitWindowClose(winA)
	layer.PollEvents()

	require.Len(t, events, 1)
	assert.Equal(t, winA, events[0].Window)
	assert.Equal(t, event.CloseRequested, events[0].Kind)

	// The same native event on a window that never registered must not
	// reach the handler.
	layer.EmitWindowClose(winB)
	layer.PollEvents()
	assert.Len(t, events, 1)
}

func TestWindowMaskGating(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var kinds []event.WindowEventKind
	mask := event.Mask(event.SizeChanged, event.FocusChanged)
	r.SetWindowHandler(winA, func(e event.WindowEvent) {
		kinds = append(kinds, e.Kind)
	}, mask)

	// A sub-kind outside the mask never installs its slot.
	if layer.Installed(winA, nativetest.SlotWindowPos) {
		t.Error("Expected position slot uninstalled for mask without PositionChanged")
	}
	if !layer.Installed(winA, nativetest.SlotWindowSize) {
		t.Error("Expected size slot installed")
	}
	if !layer.Installed(winA, nativetest.SlotWindowFocus) {
		t.Error("Expected focus slot installed")
	}

	layer.EmitWindowPos(winA, 50, 60)
	layer.PollEvents()
	if len(kinds) != 0 {
		t.Errorf("Expected no dispatch for unmasked position change, got %v", kinds)
	}

	layer.EmitWindowSize(winA, 1024, 768)
	layer.PollEvents()
	if len(kinds) != 1 || kinds[0] != event.SizeChanged {
		t.Errorf("Expected a single size-changed dispatch, got %v", kinds)
	}
}

func TestNarrowingMaskStopsOnlyClearedKinds(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var kinds []event.WindowEventKind
	record := func(e event.WindowEvent) { kinds = append(kinds, e.Kind) }

	r.SetWindowHandler(winA, record, event.Mask(event.SizeChanged, event.FocusChanged))
	r.SetWindowHandler(winA, record, event.Mask(event.FocusChanged))

	if layer.Installed(winA, nativetest.SlotWindowSize) {
		t.Error("Expected size slot uninstalled after narrowing the mask")
	}
	if !layer.Installed(winA, nativetest.SlotWindowFocus) {
		t.Error("Expected focus slot still installed")
	}

	layer.EmitWindowSize(winA, 640, 480)
	layer.EmitWindowFocus(winA, true)
	layer.PollEvents()

	require.Len(t, kinds, 1)
	assert.Equal(t, event.FocusChanged, kinds[0])
}

func TestWindowEventPayloads(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var events []event.WindowEvent
	r.SetWindowHandler(winA, func(e event.WindowEvent) {
		events = append(events, e)
	}, event.AllWindowEvents)

	layer.EmitWindowPos(winA, 10, 20)
	layer.EmitWindowSize(winA, 1280, 720)
	layer.EmitContentScale(winA, 1.5, 1.5)
	layer.EmitWindowFocus(winA, false)
	layer.EmitWindowRefresh(winA)
	layer.PollEvents()

	require.Len(t, events, 5)
	assert.Equal(t, event.PositionChanged, events[0].Kind)
	assert.Equal(t, int32(10), events[0].X)
	assert.Equal(t, int32(20), events[0].Y)
	assert.Equal(t, event.SizeChanged, events[1].Kind)
	assert.Equal(t, int32(1280), events[1].Width)
	assert.Equal(t, event.ContentScaleChanged, events[2].Kind)
	assert.Equal(t, float32(1.5), events[2].ScaleX)
	assert.Equal(t, event.FocusChanged, events[3].Kind)
	assert.False(t, events[3].State)
	assert.Equal(t, event.ContentNeedsRefresh, events[4].Kind)
}

func TestClearWindowHandlerUninstallsAllSlots(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	r.SetWindowHandler(winA, func(event.WindowEvent) {}, event.AllWindowEvents)
	r.SetWindowHandler(winA, nil, 0)

	for kind := nativetest.SlotWindowPos; kind <= nativetest.SlotWindowClose; kind++ {
		if layer.Installed(winA, kind) {
			t.Errorf("Expected window slot %d uninstalled after nil registration", kind)
		}
	}
}

func TestMonitorHandlerReplaceChain(t *testing.T) {
	layer, r, _, _ := newTestRegistry(t)
	layer.PollEvents() // drain the initial monitor connect

	var h1, h2 int
	r.SetMonitorHandler(func(event.MonitorEvent) { h1++ })
	r.SetMonitorHandler(nil)
	if layer.MonitorCallbackInstalled() {
		t.Fatal("Expected global monitor slot uninstalled after nil registration")
	}
	r.SetMonitorHandler(func(event.MonitorEvent) { h2++ })

	layer.AddMonitor("Fake Display 1", 1920, 0, 1920, 1080)
	layer.PollEvents()

	if h1 != 0 {
		t.Errorf("Expected cleared handler to never fire, got %d", h1)
	}
	if h2 != 1 {
		t.Errorf("Expected current handler to fire once, got %d", h2)
	}
}

func TestJoystickEvents(t *testing.T) {
	layer, r, _, _ := newTestRegistry(t)

	var events []event.JoystickEvent
	r.SetJoystickHandler(func(e event.JoystickEvent) { events = append(events, e) })

	layer.ConnectJoystick(2, "Fake Pad")
	layer.DisconnectJoystick(2)
	layer.PollEvents()

	require.Len(t, events, 2)
	assert.Equal(t, native.JoystickSlot(2), events[0].Slot)
	assert.True(t, events[0].Connected)
	assert.False(t, events[1].Connected)
}

func TestErrorHandler(t *testing.T) {
	layer, r, _, _ := newTestRegistry(t)

	var got event.Error
	r.SetErrorHandler(func(e event.Error) { got = e })

	layer.EmitError(65540, "invalid enum value")
	layer.PollEvents()

	assert.Equal(t, int32(65540), got.Code)
	assert.Equal(t, "invalid enum value", got.Description)
}

func TestInputEventConversions(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	var cursor event.CursorEvent
	var enter event.CursorEnterEvent
	var button event.MouseButtonEvent
	var scroll event.ScrollEvent
	var char event.CharEvent
	var drop event.DropEvent

	r.SetCursorPosHandler(winA, func(e event.CursorEvent) { cursor = e })
	r.SetCursorEnterHandler(winA, func(e event.CursorEnterEvent) { enter = e })
	r.SetMouseButtonHandler(winA, func(e event.MouseButtonEvent) { button = e })
	r.SetScrollHandler(winA, func(e event.ScrollEvent) { scroll = e })
	r.SetCharHandler(winA, func(e event.CharEvent) { char = e })
	r.SetDropHandler(winA, func(e event.DropEvent) { drop = e })

	layer.EmitCursorPos(winA, 101.5, 202.25)
	layer.EmitCursorEnter(winA, true)
	layer.EmitMouseButton(winA, int32(event.MouseButtonRight), int32(event.Press), int32(event.ModAlt))
	layer.EmitScroll(winA, 0, -3)
	layer.EmitChar(winA, 'ä')
	layer.EmitDrop(winA, []string{"/tmp/a.png", "/tmp/b.png"})
	layer.PollEvents()

	assert.Equal(t, 101.5, cursor.X)
	assert.Equal(t, 202.25, cursor.Y)
	assert.True(t, enter.Entered)
	assert.Equal(t, event.MouseButtonRight, button.Button)
	assert.Equal(t, event.ModAlt, button.Mods)
	assert.Equal(t, -3.0, scroll.Y)
	assert.Equal(t, 'ä', char.Char)
	assert.Equal(t, []string{"/tmp/a.png", "/tmp/b.png"}, drop.Paths)
}

func TestClearWindow(t *testing.T) {
	layer, r, winA, winB := newTestRegistry(t)

	var calls int
	r.SetKeyHandler(winA, func(event.KeyEvent) { calls++ })
	r.SetWindowHandler(winA, func(event.WindowEvent) { calls++ }, event.AllWindowEvents)
	r.SetScrollHandler(winB, func(event.ScrollEvent) { calls++ })

	r.ClearWindow(winA)

	if r.Windows() != 1 {
		t.Errorf("Expected only winB entry to remain, got %d entries", r.Windows())
	}
	for kind := nativetest.SlotKey; kind <= nativetest.SlotWindowClose; kind++ {
		if layer.Installed(winA, kind) {
			t.Errorf("Expected slot %d uninstalled after ClearWindow", kind)
		}
	}

	layer.EmitKey(winA, int32(event.KeyQ), 16, int32(event.Press), 0)
	layer.EmitWindowClose(winA)
	layer.EmitScroll(winB, 0, 1)
	layer.PollEvents()

	if calls != 1 {
		t.Errorf("Expected only winB handler to fire, got %d calls", calls)
	}
}

func TestClearAll(t *testing.T) {
	layer, r, winA, winB := newTestRegistry(t)

	r.SetKeyHandler(winA, func(event.KeyEvent) {})
	r.SetKeyHandler(winB, func(event.KeyEvent) {})
	r.SetMonitorHandler(func(event.MonitorEvent) {})
	r.SetJoystickHandler(func(event.JoystickEvent) {})
	r.SetErrorHandler(func(event.Error) {})

	r.ClearAll()

	assert.Equal(t, 0, r.Windows())
	assert.False(t, layer.Installed(winA, nativetest.SlotKey))
	assert.False(t, layer.Installed(winB, nativetest.SlotKey))
	assert.False(t, layer.MonitorCallbackInstalled())
	assert.False(t, layer.JoystickCallbackInstalled())
	assert.False(t, layer.ErrorCallbackInstalled())
}

func TestReRegistrationInsideHandler(t *testing.T) {
	layer, r, winA, _ := newTestRegistry(t)

	// A handler may re-register during dispatch; the replacement applies
	// to the next delivered event.
	var first, second int
	r.SetKeyHandler(winA, func(event.KeyEvent) {
		first++
		r.SetKeyHandler(winA, func(event.KeyEvent) { second++ })
	})

	layer.EmitKey(winA, int32(event.KeyA), 30, int32(event.Press), 0)
	layer.EmitKey(winA, int32(event.KeyA), 30, int32(event.Release), 0)
	layer.PollEvents()

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}
