// Package trace records dispatched events into a bounded buffer so the
// watch UI can show the most recent activity without holding the whole
// stream.
package trace

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/kethru/glazier"
	"github.com/kethru/glazier/event"
)

// Record is one dispatched event, flattened for display.
type Record struct {
	Seq    uint64
	Source string
	Kind   string
	Detail string
}

// Recorder keeps the last max records. Like the registry it is
// single-threaded: Attach and Records belong on the pump goroutine.
type Recorder struct {
	buf *queue.Queue
	max int
	seq uint64

	// OnRecord, when set, is invoked for every record added, inside
	// dispatch. Keep it fast.
	OnRecord func(Record)
}

// NewRecorder creates a recorder keeping up to max records.
func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = 50
	}
	return &Recorder{buf: queue.New(), max: max}
}

func (r *Recorder) add(source, kind, detail string) {
	r.seq++
	rec := Record{Seq: r.seq, Source: source, Kind: kind, Detail: detail}
	r.buf.Add(rec)
	for r.buf.Length() > r.max {
		r.buf.Remove()
	}
	if r.OnRecord != nil {
		r.OnRecord(rec)
	}
}

// Len returns the number of buffered records.
func (r *Recorder) Len() int { return r.buf.Length() }

// Seq returns the total number of records ever added.
func (r *Recorder) Seq() uint64 { return r.seq }

// Records returns the buffered records, oldest first.
func (r *Recorder) Records() []Record {
	out := make([]Record, 0, r.buf.Length())
	for i := 0; i < r.buf.Length(); i++ {
		out = append(out, r.buf.Get(i).(Record))
	}
	return out
}

// AttachSystem registers recording handlers for the system-global event
// kinds. Any previously registered handlers for those kinds are replaced.
func (r *Recorder) AttachSystem(sys *glazier.System) {
	sys.OnMonitorChange(func(e event.MonitorEvent) {
		r.add("monitor", connected(e.Connected), sys.MonitorByID(e.Monitor).Name())
	})
	sys.OnJoystickChange(func(e event.JoystickEvent) {
		r.add(fmt.Sprintf("joystick:%d", e.Slot), connected(e.Connected), sys.Joystick(e.Slot).Name())
	})
	sys.OnError(func(e event.Error) {
		r.add("layer", "error", fmt.Sprintf("%d: %s", e.Code, e.Description))
	})
}

// AttachWindow registers recording handlers for every event kind of one
// window, replacing whatever was registered before.
func (r *Recorder) AttachWindow(win *glazier.Window) {
	source := fmt.Sprintf("window:%#x", uintptr(win.ID()))

	win.OnWindowEvent(func(e event.WindowEvent) {
		r.add(source, e.Kind.String(), windowDetail(e))
	}, event.AllWindowEvents)
	win.OnKey(func(e event.KeyEvent) {
		r.add(source, "key", fmt.Sprintf("key=%d action=%s mods=%#x", e.Key, e.Action, e.Mods))
	})
	win.OnChar(func(e event.CharEvent) {
		r.add(source, "char", string(e.Char))
	})
	win.OnCursorMove(func(e event.CursorEvent) {
		r.add(source, "cursor", fmt.Sprintf("%.1f,%.1f", e.X, e.Y))
	})
	win.OnCursorEnter(func(e event.CursorEnterEvent) {
		if e.Entered {
			r.add(source, "cursor", "entered")
		} else {
			r.add(source, "cursor", "left")
		}
	})
	win.OnMouseButton(func(e event.MouseButtonEvent) {
		r.add(source, "mouse", fmt.Sprintf("button=%d action=%s", e.Button, e.Action))
	})
	win.OnScroll(func(e event.ScrollEvent) {
		r.add(source, "scroll", fmt.Sprintf("%.1f,%.1f", e.X, e.Y))
	})
	win.OnDrop(func(e event.DropEvent) {
		r.add(source, "drop", fmt.Sprintf("%d paths", len(e.Paths)))
	})
}

func connected(c bool) string {
	if c {
		return "connected"
	}
	return "disconnected"
}

func windowDetail(e event.WindowEvent) string {
	switch e.Kind {
	case event.PositionChanged:
		return fmt.Sprintf("%d,%d", e.X, e.Y)
	case event.SizeChanged, event.FramebufferSizeChanged:
		return fmt.Sprintf("%dx%d", e.Width, e.Height)
	case event.ContentScaleChanged:
		return fmt.Sprintf("%.2fx%.2f", e.ScaleX, e.ScaleY)
	case event.FocusChanged, event.MinimizeStateChanged, event.MaximizeStateChanged:
		return fmt.Sprintf("%v", e.State)
	default:
		return ""
	}
}
