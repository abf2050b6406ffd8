package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/daemon"
	"github.com/egorlepa/ocpanel/internal/platform"
	"github.com/egorlepa/ocpanel/internal/service"
)

func newConnectCmd() *cobra.Command {
	return newControlCmd("connect", "Start the VPN client", service.Start)
}

func newDisconnectCmd() *cobra.Command {
	return newControlCmd("disconnect", "Stop the VPN client", service.Stop)
}

func newReconnectCmd() *cobra.Command {
	return newControlCmd("reconnect", "Restart the VPN client", service.Restart)
}

func newControlCmd(use, short string, action service.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c := daemon.NewComponents(cfg, platform.NewLogger(cfg.Daemon.LogLevel))

			out := c.Supervisor.Control(cmd.Context(), action)
			if !out.Success {
				return errors.New(out.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}
