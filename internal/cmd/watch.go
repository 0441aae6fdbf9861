package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"

	"github.com/kethru/glazier"
	"github.com/kethru/glazier/internal/config"
	"github.com/kethru/glazier/internal/logger"
	"github.com/kethru/glazier/internal/trace"
	"github.com/kethru/glazier/internal/ui"
	"github.com/kethru/glazier/nativetest"
)

var notifyFlag bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a scripted event stream",
	Long: `Run a scripted event stream through the callback registry and show
the delivered events live. Useful for eyeballing the full dispatch path
without a display server.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&notifyFlag, "notify", false, "Desktop notification on monitor/joystick connects")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	layer := newSimLayer()
	sys := glazier.NewSystem(layer)
	defer sys.Shutdown()

	win, err := sys.CreateWindow(glazier.DefaultConfig)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	rec := trace.NewRecorder(cfg.Watch.BufferSize)
	if notifyFlag || cfg.Watch.Notify {
		rec.OnRecord = func(r trace.Record) {
			if r.Kind != "connected" {
				return
			}
			if err := beeep.Notify("glazier", fmt.Sprintf("%s %s: %s", r.Source, r.Kind, r.Detail), ""); err != nil {
				logger.Warnf("Notification failed: %v", err)
			}
		}
	}
	rec.AttachSystem(sys)
	rec.AttachWindow(win)

	p := tea.NewProgram(ui.NewWatchModel())

	interval := time.Duration(cfg.Sim.Interval * float64(time.Second))
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		step := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}

			scriptStep(layer, win, step)
			sys.PollEvents()
			step++

			p.Send(ui.RecordsMsg{Records: rec.Records(), Total: rec.Seq()})
		}
	}()

	_, err = p.Run()
	close(done)
	<-stopped
	if err != nil {
		return fmt.Errorf("watch UI failed: %w", err)
	}
	return nil
}

// scriptStep queues one batch of synthetic events. The script loops so a
// long-running watch keeps producing every event kind.
func scriptStep(layer *nativetest.Layer, win *glazier.Window, step int) {
	id := win.ID()

	switch step % 10 {
	case 0:
		layer.EmitCursorPos(id, float64(10*step%640), float64(5*step%480))
	case 1:
		layer.EmitKey(id, 65+int32(step%26), 0, 1, 0)
		layer.EmitChar(id, rune('a'+step%26))
	case 2:
		layer.EmitKey(id, 65+int32(step%26), 0, 0, 0)
	case 3:
		layer.SetWindowSize(id, int32(640+step%4*16), int32(480+step%4*9))
	case 4:
		layer.EmitMouseButton(id, 0, 1, 0)
		layer.EmitMouseButton(id, 0, 0, 0)
	case 5:
		layer.EmitScroll(id, 0, float64(step%3)-1)
	case 6:
		layer.ConnectJoystick(0, "Scripted Pad")
	case 7:
		layer.EmitCursorEnter(id, step%20 < 10)
	case 8:
		layer.DisconnectJoystick(0)
	case 9:
		layer.EmitDrop(id, []string{fmt.Sprintf("/tmp/drop-%d.txt", step)})
	}
}
