package nativetest

import "github.com/kethru/glazier/native"

// Monitors returns the connected monitor handles, first one primary.
func (l *Layer) Monitors() []native.MonitorID {
	out := make([]native.MonitorID, len(l.monitors))
	copy(out, l.monitors)
	return out
}

// PrimaryMonitor returns the first connected monitor, zero when none.
func (l *Layer) PrimaryMonitor() native.MonitorID {
	if len(l.monitors) == 0 {
		return 0
	}
	return l.monitors[0]
}

func (l *Layer) MonitorName(m native.MonitorID) string {
	if ms := l.monitorByID[m]; ms != nil {
		return ms.name
	}
	return ""
}

func (l *Layer) MonitorPos(m native.MonitorID) (int32, int32) {
	if ms := l.monitorByID[m]; ms != nil {
		return ms.x, ms.y
	}
	return 0, 0
}

func (l *Layer) MonitorPhysicalSize(m native.MonitorID) (int32, int32) {
	if ms := l.monitorByID[m]; ms != nil {
		return ms.physW, ms.physH
	}
	return 0, 0
}

func (l *Layer) MonitorContentScale(m native.MonitorID) (float32, float32) {
	if ms := l.monitorByID[m]; ms != nil {
		return ms.scaleX, ms.scaleY
	}
	return 0, 0
}

func (l *Layer) MonitorWorkArea(m native.MonitorID) (int32, int32, int32, int32) {
	if ms := l.monitorByID[m]; ms != nil {
		return ms.x, ms.y, ms.width, ms.height
	}
	return 0, 0, 0, 0
}

func (l *Layer) VideoMode(m native.MonitorID) native.VideoMode {
	ms := l.monitorByID[m]
	if ms == nil {
		return native.VideoMode{}
	}
	return native.VideoMode{
		Width:       ms.width,
		Height:      ms.height,
		RefreshRate: ms.refresh,
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
	}
}

// VideoModes reports the current mode plus a few smaller ones, enough for
// enumeration tests.
func (l *Layer) VideoModes(m native.MonitorID) []native.VideoMode {
	ms := l.monitorByID[m]
	if ms == nil {
		return nil
	}
	current := l.VideoMode(m)
	modes := []native.VideoMode{current}
	for _, div := range []int32{2, 4} {
		mode := current
		mode.Width /= div
		mode.Height /= div
		modes = append(modes, mode)
	}
	return modes
}

func (l *Layer) SetGamma(m native.MonitorID, gamma float32) {}
