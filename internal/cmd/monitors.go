package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kethru/glazier"
)

// MonitorList is the JSON output of the monitors command
type MonitorList struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// MonitorInfo describes a single monitor
type MonitorInfo struct {
	ID      uint64  `json:"id"`
	Name    string  `json:"name"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Refresh int     `json:"refresh"`
	Primary bool    `json:"primary"`
	Scale   float32 `json:"scale"`
}

var jsonOutput bool

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "Show monitor configuration",
	Long:  `Display the monitors of the synthetic native layer and their video modes.`,
	RunE:  runMonitors,
}

func init() {
	monitorsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.AddCommand(monitorsCmd)
}

func runMonitors(cmd *cobra.Command, args []string) error {
	sys := glazier.NewSystem(newSimLayer())
	defer sys.Shutdown()

	monitors := sys.Monitors()
	primary := sys.PrimaryMonitor()

	if jsonOutput {
		list := MonitorList{
			Monitors: make([]MonitorInfo, len(monitors)),
		}
		for i, mon := range monitors {
			x, y := mon.Pos()
			mode := mon.CurrentVideoMode()
			scaleX, _ := mon.ContentScale()
			list.Monitors[i] = MonitorInfo{
				ID:      uint64(mon.ID()),
				Name:    mon.Name(),
				X:       x,
				Y:       y,
				Width:   int(mode.Width),
				Height:  int(mode.Height),
				Refresh: int(mode.RefreshRate),
				Primary: primary != nil && mon.ID() == primary.ID(),
				Scale:   scaleX,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(list)
	}

	if len(monitors) == 0 {
		fmt.Println("No monitors connected")
		return nil
	}

	fmt.Printf("Connected %d monitor(s):\n\n", len(monitors))

	for i, mon := range monitors {
		x, y := mon.Pos()
		mode := mon.CurrentVideoMode()
		wMM, hMM := mon.PhysicalSize()
		scaleX, _ := mon.ContentScale()

		fmt.Printf("Monitor %d:\n", i+1)
		fmt.Printf("  Name:       %s\n", mon.Name())
		fmt.Printf("  Resolution: %dx%d @ %dHz\n", mode.Width, mode.Height, mode.RefreshRate)
		fmt.Printf("  Position:   (%d, %d)\n", x, y)
		fmt.Printf("  Physical:   %dx%d mm\n", wMM, hMM)

		if primary != nil && mon.ID() == primary.ID() {
			fmt.Printf("  Primary:    Yes\n")
		}
		if scaleX != 1.0 {
			fmt.Printf("  Scale:      %.1fx\n", scaleX)
		}

		modes := mon.VideoModes()
		if len(modes) > 1 {
			fmt.Printf("  Modes:      ")
			for j, m := range modes {
				if j > 0 {
					fmt.Printf(", ")
				}
				fmt.Printf("%dx%d", m.Width, m.Height)
			}
			fmt.Println()
		}

		fmt.Println()
	}

	return nil
}
