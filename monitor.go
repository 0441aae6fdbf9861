package glazier

import "github.com/kethru/glazier/native"

// Monitor wraps one native monitor handle. Monitors are owned by the
// native layer; the wrapper is a value that can be copied freely.
type Monitor struct {
	id  native.MonitorID
	sys *System
}

// Monitors returns the currently connected monitors, primary first.
func (s *System) Monitors() []*Monitor {
	ids := s.layer.Monitors()
	monitors := make([]*Monitor, 0, len(ids))
	for _, id := range ids {
		monitors = append(monitors, &Monitor{id: id, sys: s})
	}
	return monitors
}

// PrimaryMonitor returns the primary monitor, or nil with none connected.
func (s *System) PrimaryMonitor() *Monitor {
	id := s.layer.PrimaryMonitor()
	if id == 0 {
		return nil
	}
	return &Monitor{id: id, sys: s}
}

// MonitorByID wraps a raw handle delivered in a MonitorEvent.
func (s *System) MonitorByID(id native.MonitorID) *Monitor {
	return &Monitor{id: id, sys: s}
}

// ID returns the native handle identity of the monitor.
func (m *Monitor) ID() native.MonitorID { return m.id }

// Name returns the human-readable monitor name.
func (m *Monitor) Name() string { return m.sys.layer.MonitorName(m.id) }

// Pos returns the monitor position in the global coordinate space.
func (m *Monitor) Pos() (x, y int) {
	px, py := m.sys.layer.MonitorPos(m.id)
	return int(px), int(py)
}

// PhysicalSize returns the monitor's physical dimensions in millimetres.
func (m *Monitor) PhysicalSize() (widthMM, heightMM int) {
	w, h := m.sys.layer.MonitorPhysicalSize(m.id)
	return int(w), int(h)
}

// ContentScale returns the monitor's content scale factors.
func (m *Monitor) ContentScale() (x, y float32) {
	return m.sys.layer.MonitorContentScale(m.id)
}

// WorkArea returns the monitor area not covered by system bars.
func (m *Monitor) WorkArea() (x, y, width, height int) {
	wx, wy, ww, wh := m.sys.layer.MonitorWorkArea(m.id)
	return int(wx), int(wy), int(ww), int(wh)
}

// CurrentVideoMode returns the monitor's active video mode.
func (m *Monitor) CurrentVideoMode() native.VideoMode {
	return m.sys.layer.VideoMode(m.id)
}

// VideoModes returns all video modes the monitor supports.
func (m *Monitor) VideoModes() []native.VideoMode {
	return m.sys.layer.VideoModes(m.id)
}

// SetGamma applies a gamma exponent to the monitor.
func (m *Monitor) SetGamma(gamma float32) {
	m.sys.layer.SetGamma(m.id, gamma)
}
