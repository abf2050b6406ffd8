package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/logtail"
	"github.com/egorlepa/ocpanel/internal/settings"
)

func newLogsCmd() *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent VPN client log lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if lines <= 0 {
				lines = cfg.Logs.DefaultLines
			}
			fmt.Fprintln(cmd.OutOrStdout(), logtail.New(cfg.Logs.Stdout, cfg.Logs.Stderr).Tail(lines))
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "number of lines (default from config)")
	return cmd
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the VPN settings taken from the environment as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(settings.Read())
		},
	}
}
