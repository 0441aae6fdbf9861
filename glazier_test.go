package glazier

import (
	"testing"

	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/nativetest"
)

func newTestSystem(t *testing.T) (*nativetest.Layer, *System) {
	t.Helper()
	layer := nativetest.NewLayer()
	return layer, NewSystem(layer)
}

func TestCreateWindow(t *testing.T) {
	t.Run("creates window with config", func(t *testing.T) {
		_, sys := newTestSystem(t)

		win, err := sys.CreateWindow(Config{Width: 1280, Height: 720, Title: "editor", Resizable: true})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if win.ID() == 0 {
			t.Error("Expected non-zero window handle")
		}

		width, height := win.Size()
		if width != 1280 || height != 720 {
			t.Errorf("Expected 1280x720, got %dx%d", width, height)
		}
		if !win.IsResizable() {
			t.Error("Expected window to be resizable")
		}
	})

	t.Run("rejects invalid size", func(t *testing.T) {
		_, sys := newTestSystem(t)

		_, err := sys.CreateWindow(Config{Width: 0, Height: 0, Title: "broken"})
		if err == nil {
			t.Fatal("Expected error for zero-sized window")
		}
	})
}

func TestWindowDestroyClearsHandlers(t *testing.T) {
	layer, sys := newTestSystem(t)

	win, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var calls int
	win.OnKey(func(event.KeyEvent) { calls++ })
	win.OnWindowEvent(func(event.WindowEvent) { calls++ }, event.AllWindowEvents)

	if !layer.Installed(win.ID(), nativetest.SlotKey) {
		t.Fatal("Expected key slot installed")
	}

	id := win.ID()
	win.Destroy()

	// Recreating immediately may hand back the same identity; a stale
	// entry would misroute events to the dead window's handlers.
	win2, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	layer.EmitKey(win2.ID(), int32(event.KeyA), 30, int32(event.Press), 0)
	layer.EmitWindowClose(win2.ID())
	layer.PollEvents()

	if calls != 0 {
		t.Errorf("Expected no invocations after destroy (old id %#x, new id %#x), got %d",
			uintptr(id), uintptr(win2.ID()), calls)
	}
}

func TestWindowEventRoundTrip(t *testing.T) {
	layer, sys := newTestSystem(t)

	win, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var got []event.WindowEvent
	win.OnWindowEvent(func(e event.WindowEvent) {
		got = append(got, e)
	}, event.Mask(event.SizeChanged, event.CloseRequested))

	win.SetSize(1024, 768)
	layer.EmitWindowClose(win.ID())
	sys.PollEvents()

	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].Kind != event.SizeChanged || got[0].Width != 1024 {
		t.Errorf("Expected size-changed 1024 wide, got %+v", got[0])
	}
	if got[1].Kind != event.CloseRequested {
		t.Errorf("Expected close-requested, got %+v", got[1])
	}
	if !win.ShouldClose() {
		t.Error("Expected close flag set after close request")
	}

	// A close handler may veto, like cancelling an exit dialog.
	win.SetShouldClose(false)
	if win.ShouldClose() {
		t.Error("Expected close flag cleared")
	}
}

func TestMonitors(t *testing.T) {
	layer, sys := newTestSystem(t)

	monitors := sys.Monitors()
	if len(monitors) != 1 {
		t.Fatalf("Expected 1 monitor, got %d", len(monitors))
	}
	if monitors[0].Name() != "Fake Display 0" {
		t.Errorf("Unexpected monitor name %q", monitors[0].Name())
	}

	primary := sys.PrimaryMonitor()
	if primary == nil || primary.ID() != monitors[0].ID() {
		t.Error("Expected first monitor to be primary")
	}

	mode := primary.CurrentVideoMode()
	if mode.Width != 1920 || mode.Height != 1080 {
		t.Errorf("Expected 1920x1080 mode, got %dx%d", mode.Width, mode.Height)
	}

	var events []event.MonitorEvent
	sys.OnMonitorChange(func(e event.MonitorEvent) { events = append(events, e) })

	second := layer.AddMonitor("Fake Display 1", 1920, 0, 2560, 1440)
	sys.PollEvents()

	if len(sys.Monitors()) != 2 {
		t.Errorf("Expected 2 monitors, got %d", len(sys.Monitors()))
	}
	// The initial monitor's connect was queued before the handler
	// existed and is delivered in the same pump.
	if len(events) == 0 || !events[len(events)-1].Connected {
		t.Fatalf("Expected connect event, got %+v", events)
	}
	if events[len(events)-1].Monitor != second {
		t.Errorf("Expected event for second monitor, got %+v", events[len(events)-1])
	}

	layer.RemoveMonitor(second)
	sys.PollEvents()
	if events[len(events)-1].Connected {
		t.Error("Expected disconnect event last")
	}
}

func TestFullscreenTransitions(t *testing.T) {
	_, sys := newTestSystem(t)

	win, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if win.FullscreenMonitor() != nil {
		t.Error("Expected windowed window to report no fullscreen monitor")
	}

	primary := sys.PrimaryMonitor()
	win.MakeFullscreen(primary)

	fs := win.FullscreenMonitor()
	if fs == nil || fs.ID() != primary.ID() {
		t.Fatal("Expected window fullscreen on primary monitor")
	}
	width, height := win.Size()
	if width != 1920 || height != 1080 {
		t.Errorf("Expected fullscreen size 1920x1080, got %dx%d", width, height)
	}

	win.MakeWindowed(100, 100, 800, 600)
	if win.FullscreenMonitor() != nil {
		t.Error("Expected window back in windowed mode")
	}
}

func TestPolledInput(t *testing.T) {
	layer, sys := newTestSystem(t)

	win, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	layer.EmitKey(win.ID(), int32(event.KeySpace), 57, int32(event.Press), 0)
	layer.EmitMouseButton(win.ID(), int32(event.MouseButtonLeft), int32(event.Press), 0)
	layer.EmitCursorPos(win.ID(), 320, 240)
	sys.PollEvents()

	if win.KeyState(event.KeySpace) != event.Press {
		t.Error("Expected space key pressed")
	}
	if win.MouseButtonState(event.MouseButtonLeft) != event.Press {
		t.Error("Expected left button pressed")
	}
	x, y := win.CursorPos()
	if x != 320 || y != 240 {
		t.Errorf("Expected cursor at 320,240, got %v,%v", x, y)
	}
}

func TestJoystickWrapper(t *testing.T) {
	layer, sys := newTestSystem(t)

	pad := sys.Joystick(3)
	if pad.Present() {
		t.Error("Expected empty slot to report not present")
	}

	layer.ConnectJoystick(3, "Fake Pad")
	layer.SetJoystickAxis(3, 0, 0.5)
	layer.SetJoystickButton(3, 1, true)

	if !pad.Present() {
		t.Fatal("Expected slot present after connect")
	}
	if pad.Name() != "Fake Pad" {
		t.Errorf("Unexpected joystick name %q", pad.Name())
	}
	state := pad.State()
	if state.Axes[0] != 0.5 {
		t.Errorf("Expected axis 0 at 0.5, got %v", state.Axes[0])
	}
	if !state.Buttons[1] {
		t.Error("Expected button 1 pressed")
	}
}

func TestClipboardAndTime(t *testing.T) {
	_, sys := newTestSystem(t)

	sys.SetClipboardText("copied")
	if sys.ClipboardText() != "copied" {
		t.Errorf("Unexpected clipboard contents %q", sys.ClipboardText())
	}

	sys.SetTime(12.5)
	if sys.Time() != 12.5 {
		t.Errorf("Expected time 12.5, got %v", sys.Time())
	}
}

func TestShutdownClearsEverything(t *testing.T) {
	layer, sys := newTestSystem(t)

	win, err := sys.CreateWindow(DefaultConfig)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	win.OnKey(func(event.KeyEvent) {})
	sys.OnMonitorChange(func(event.MonitorEvent) {})

	sys.Shutdown()

	if layer.MonitorCallbackInstalled() {
		t.Error("Expected monitor slot uninstalled after shutdown")
	}
	// Shutdown twice is harmless.
	sys.Shutdown()
}
