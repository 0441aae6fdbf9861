// Package glazier adapts a handle-based native windowing/input layer into
// typed wrappers with closure event handlers. A System owns one native
// layer and the callback registry that routes its single-slot raw
// callbacks to registered closures.
//
// The whole surface is single-threaded: create the System, register
// handlers and pump events all on one goroutine. Handlers run
// synchronously inside PollEvents/WaitEvents.
package glazier

import (
	"github.com/kethru/glazier/event"
	"github.com/kethru/glazier/internal/logger"
	"github.com/kethru/glazier/native"
	"github.com/kethru/glazier/registry"
)

// System is one event system over one native layer. Create it with
// NewSystem and release it with Shutdown.
type System struct {
	layer    native.Layer
	registry *registry.Registry
	down     bool
}

// NewSystem wraps an initialized native layer.
func NewSystem(layer native.Layer) *System {
	return &System{
		layer:    layer,
		registry: registry.New(layer),
	}
}

// Layer exposes the underlying native layer for callers that need raw
// access. Installing callbacks directly on it bypasses the registry and
// will be overwritten by the next handler registration.
func (s *System) Layer() native.Layer { return s.layer }

// PollEvents delivers pending native events, invoking registered handlers
// synchronously on the calling goroutine.
func (s *System) PollEvents() { s.layer.PollEvents() }

// WaitEvents blocks until at least one event arrives, then delivers.
func (s *System) WaitEvents() { s.layer.WaitEvents() }

// WaitEventsTimeout waits up to the given number of seconds for events.
func (s *System) WaitEventsTimeout(seconds float64) { s.layer.WaitEventsTimeout(seconds) }

// PostEmptyEvent wakes up a blocked WaitEvents from another goroutine.
// This is the only System call safe to make off the pump goroutine.
func (s *System) PostEmptyEvent() { s.layer.PostEmptyEvent() }

// OnMonitorChange registers fn for monitor connect/disconnect events.
// A nil fn clears the handler.
func (s *System) OnMonitorChange(fn func(event.MonitorEvent)) {
	s.registry.SetMonitorHandler(fn)
}

// OnJoystickChange registers fn for joystick connect/disconnect events.
// A nil fn clears the handler.
func (s *System) OnJoystickChange(fn func(event.JoystickEvent)) {
	s.registry.SetJoystickHandler(fn)
}

// OnError registers fn for errors the native layer reports asynchronously.
// A nil fn clears the handler.
func (s *System) OnError(fn func(event.Error)) {
	s.registry.SetErrorHandler(fn)
}

// ClipboardText returns the system clipboard contents.
func (s *System) ClipboardText() string { return s.layer.GetClipboardString() }

// SetClipboardText replaces the system clipboard contents.
func (s *System) SetClipboardText(text string) { s.layer.SetClipboardString(text) }

// Time returns the layer's monotonic timer in seconds.
func (s *System) Time() float64 { return s.layer.GetTime() }

// SetTime rewinds or advances the layer's timer.
func (s *System) SetTime(seconds float64) { s.layer.SetTime(seconds) }

// Shutdown clears every registered handler and terminates the native
// layer. The System and all windows created from it are unusable
// afterwards.
func (s *System) Shutdown() {
	if s.down {
		return
	}
	s.down = true
	s.registry.ClearAll()
	s.layer.Terminate()
	logger.Debug("event system shut down")
}
