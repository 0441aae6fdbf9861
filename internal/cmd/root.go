package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kethru/glazier/internal/config"
	"github.com/kethru/glazier/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "glazier",
		Short: "Glazier - typed event routing over a native windowing layer",
		Long: `Glazier is a diagnostic tool for the glazier windowing wrapper.
It drives the callback registry against a synthetic native layer so the
event pipeline can be inspected without a display server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
}
