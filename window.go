package glazier

import (
	"fmt"

	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/internal/logger"
	"github.com/kethru/glazier/native"
)

// Config carries window creation options. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	Width  int
	Height int
	Title  string

	Resizable   bool
	Visible     bool
	Decorated   bool
	Focused     bool
	Floating    bool
	Maximized   bool
	FocusOnShow bool

	// Fullscreen places the window on this monitor. Nil means windowed.
	Fullscreen *Monitor
}

// DefaultConfig mirrors the native layer's default hints: a visible,
// resizable, decorated window.
var DefaultConfig = Config{
	Width:       640,
	Height:      480,
	Title:       "glazier",
	Resizable:   true,
	Visible:     true,
	Decorated:   true,
	Focused:     true,
	FocusOnShow: true,
}

// Window wraps one native window handle. It is owned by the System that
// created it; Destroy releases it and clears its registered handlers.
type Window struct {
	id  native.WindowID
	sys *System
}

// CreateWindow creates a native window from cfg.
func (s *System) CreateWindow(cfg Config) (*Window, error) {
	ncfg := native.WindowConfig{
		Width:       int32(cfg.Width),
		Height:      int32(cfg.Height),
		Title:       cfg.Title,
		Resizable:   cfg.Resizable,
		Visible:     cfg.Visible,
		Decorated:   cfg.Decorated,
		Focused:     cfg.Focused,
		Floating:    cfg.Floating,
		Maximized:   cfg.Maximized,
		FocusOnShow: cfg.FocusOnShow,
	}
	if cfg.Fullscreen != nil {
		ncfg.Fullscreen = cfg.Fullscreen.id
	}

	id, err := s.layer.CreateWindow(ncfg)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", cfg.Title, err)
	}
	logger.Debugf("created window %#x (%dx%d %q)", uintptr(id), cfg.Width, cfg.Height, cfg.Title)
	return &Window{id: id, sys: s}, nil
}

// ID returns the native handle identity of the window.
func (w *Window) ID() native.WindowID { return w.id }

// Destroy clears every handler registered for the window, then destroys
// the native window. Clearing first keeps the registry free of stale
// entries should the layer recycle the handle.
func (w *Window) Destroy() {
	w.sys.registry.ClearWindow(w.id)
	w.sys.layer.DestroyWindow(w.id)
	logger.Debugf("destroyed window %#x", uintptr(w.id))
}

/* Event handler registration. A nil handler clears the slot. */

// OnWindowEvent registers one handler shared by the window state-change
// family, invoked only for sub-kinds present in mask. Re-registering with
// a different mask adjusts which sub-kinds are watched; nil fn clears.
func (w *Window) OnWindowEvent(fn func(event.WindowEvent), mask event.WindowEventMask) {
	w.sys.registry.SetWindowHandler(w.id, fn, mask)
}

// OnKey registers fn for key press, repeat and release events.
func (w *Window) OnKey(fn func(event.KeyEvent)) {
	w.sys.registry.SetKeyHandler(w.id, fn)
}

// OnChar registers fn for unicode character input.
func (w *Window) OnChar(fn func(event.CharEvent)) {
	w.sys.registry.SetCharHandler(w.id, fn)
}

// OnCursorMove registers fn for cursor motion.
func (w *Window) OnCursorMove(fn func(event.CursorEvent)) {
	w.sys.registry.SetCursorPosHandler(w.id, fn)
}

// OnCursorEnter registers fn for cursor enter/leave.
func (w *Window) OnCursorEnter(fn func(event.CursorEnterEvent)) {
	w.sys.registry.SetCursorEnterHandler(w.id, fn)
}

// OnMouseButton registers fn for mouse button press and release.
func (w *Window) OnMouseButton(fn func(event.MouseButtonEvent)) {
	w.sys.registry.SetMouseButtonHandler(w.id, fn)
}

// OnScroll registers fn for scroll input.
func (w *Window) OnScroll(fn func(event.ScrollEvent)) {
	w.sys.registry.SetScrollHandler(w.id, fn)
}

// OnDrop registers fn for files dropped onto the window.
func (w *Window) OnDrop(fn func(event.DropEvent)) {
	w.sys.registry.SetDropHandler(w.id, fn)
}

/* Visibility and focus */

func (w *Window) Show()             { w.sys.layer.ShowWindow(w.id) }
func (w *Window) Hide()             { w.sys.layer.HideWindow(w.id) }
func (w *Window) Focus()            { w.sys.layer.FocusWindow(w.id) }
func (w *Window) RequestAttention() { w.sys.layer.RequestWindowAttention(w.id) }

// IsVisible reports whether the window is currently visible.
func (w *Window) IsVisible() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribVisible)
}

// HasFocus reports whether the window has input focus.
func (w *Window) HasFocus() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribFocused)
}

// IsHovered reports whether the cursor is over the window content area.
func (w *Window) IsHovered() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribHovered)
}

/* Minimize, maximize, restore */

func (w *Window) Minimize() { w.sys.layer.MinimizeWindow(w.id) }
func (w *Window) Maximize() { w.sys.layer.MaximizeWindow(w.id) }
func (w *Window) Restore()  { w.sys.layer.RestoreWindow(w.id) }

func (w *Window) IsMinimized() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribMinimized)
}

func (w *Window) IsMaximized() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribMaximized)
}

/* Boolean attributes */

// SetResizable toggles whether the user can resize the window.
func (w *Window) SetResizable(resizable bool) {
	w.sys.layer.SetWindowAttrib(w.id, native.AttribResizable, resizable)
}

func (w *Window) IsResizable() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribResizable)
}

// SetDecorated toggles the window frame and title bar.
func (w *Window) SetDecorated(decorated bool) {
	w.sys.layer.SetWindowAttrib(w.id, native.AttribDecorated, decorated)
}

func (w *Window) IsDecorated() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribDecorated)
}

// SetFloating toggles always-on-top.
func (w *Window) SetFloating(floating bool) {
	w.sys.layer.SetWindowAttrib(w.id, native.AttribFloating, floating)
}

func (w *Window) IsFloating() bool {
	return w.sys.layer.GetWindowAttrib(w.id, native.AttribFloating)
}

/* Geometry */

// Pos returns the window position in screen coordinates.
func (w *Window) Pos() (x, y int) {
	px, py := w.sys.layer.GetWindowPos(w.id)
	return int(px), int(py)
}

func (w *Window) SetPos(x, y int) {
	w.sys.layer.SetWindowPos(w.id, int32(x), int32(y))
}

// Size returns the window content area size in screen coordinates.
func (w *Window) Size() (width, height int) {
	sw, sh := w.sys.layer.GetWindowSize(w.id)
	return int(sw), int(sh)
}

func (w *Window) SetSize(width, height int) {
	w.sys.layer.SetWindowSize(w.id, int32(width), int32(height))
}

// FramebufferSize returns the framebuffer size in pixels, which differs
// from Size on scaled displays.
func (w *Window) FramebufferSize() (width, height int) {
	fw, fh := w.sys.layer.GetFramebufferSize(w.id)
	return int(fw), int(fh)
}

// ContentScale returns the window's content scale factors.
func (w *Window) ContentScale() (x, y float32) {
	return w.sys.layer.GetWindowContentScale(w.id)
}

// SetSizeLimits constrains the user-resizable range. Pass -1 to leave a
// bound unconstrained.
func (w *Window) SetSizeLimits(minW, minH, maxW, maxH int) {
	w.sys.layer.SetWindowSizeLimits(w.id, int32(minW), int32(minH), int32(maxW), int32(maxH))
}

// SetAspectRatio locks the content area aspect ratio.
func (w *Window) SetAspectRatio(numer, denom int) {
	w.sys.layer.SetWindowAspectRatio(w.id, int32(numer), int32(denom))
}

func (w *Window) Opacity() float32 {
	return w.sys.layer.GetWindowOpacity(w.id)
}

func (w *Window) SetOpacity(opacity float32) {
	w.sys.layer.SetWindowOpacity(w.id, opacity)
}

func (w *Window) SetTitle(title string) {
	w.sys.layer.SetWindowTitle(w.id, title)
}

/* Close flag */

// ShouldClose reports whether a close was requested and not overridden.
func (w *Window) ShouldClose() bool {
	return w.sys.layer.WindowShouldClose(w.id)
}

// SetShouldClose overrides the close flag, e.g. to veto a close request
// from inside a CloseRequested handler.
func (w *Window) SetShouldClose(value bool) {
	w.sys.layer.SetWindowShouldClose(w.id, value)
}

/* Fullscreen */

// MakeFullscreen moves the window onto m using the monitor's current
// video mode.
func (w *Window) MakeFullscreen(m *Monitor) {
	mode := m.CurrentVideoMode()
	w.sys.layer.SetWindowMonitor(w.id, m.id, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

// MakeWindowed leaves fullscreen and places the window at the given
// position and size.
func (w *Window) MakeWindowed(x, y, width, height int) {
	w.sys.layer.SetWindowMonitor(w.id, 0, int32(x), int32(y), int32(width), int32(height), 0)
}

// FullscreenMonitor returns the monitor the window is fullscreen on, or
// nil when windowed.
func (w *Window) FullscreenMonitor() *Monitor {
	m := w.sys.layer.GetWindowMonitor(w.id)
	if m == 0 {
		return nil
	}
	return &Monitor{id: m, sys: w.sys}
}
