package cli

import (
	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/daemon"
	"github.com/egorlepa/ocpanel/internal/platform"
)

func newServeCmd() *cobra.Command {
	var listen, tlsMode string

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"daemon"},
		Short:   "Serve the web dashboard and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Daemon.Listen = listen
			}
			if tlsMode != "" {
				cfg.Daemon.TLS = tlsMode
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger := platform.NewLogger(cfg.Daemon.LogLevel)
			return daemon.New(cfg, logger, version).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&tlsMode, "tls", "", "tls mode: adhoc, off or files (overrides config)")
	return cmd
}
