package cmd

import (
	"fmt"

	"github.com/kethru/glazier/internal/config"
	"github.com/kethru/glazier/nativetest"
)

// newSimLayer builds the synthetic native layer the diagnostic commands
// run against. The layer starts with one monitor; extra ones are laid out
// side by side.
func newSimLayer() *nativetest.Layer {
	cfg := config.Get()
	layer := nativetest.NewLayer()

	x := int32(1920)
	for i := 1; i < cfg.Sim.Monitors; i++ {
		layer.AddMonitor(fmt.Sprintf("Fake Display %d", i), x, 0, 1920, 1080)
		x += 1920
	}
	return layer
}
