package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/daemon"
	"github.com/egorlepa/ocpanel/internal/platform"
	"github.com/egorlepa/ocpanel/internal/probe"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show VPN connection status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c := daemon.NewComponents(cfg, platform.NewLogger("error"))
			out := cmd.OutOrStdout()

			st := c.Prober.Status(ctx)
			fmt.Fprintf(out, "Status:     %s\n", st.State)
			switch st.State {
			case probe.Connected:
				fmt.Fprintf(out, "VPN IP:     %s\n", st.IP)
			case probe.Error:
				fmt.Fprintf(out, "Error:      %s\n", st.Err)
			}

			dns := c.Prober.DNS()
			if len(dns) == 0 {
				fmt.Fprintln(out, "DNS:        (none)")
			} else {
				fmt.Fprintf(out, "DNS:        %s\n", strings.Join(dns, ", "))
			}

			line, _, err := c.Supervisor.Status(ctx)
			if err != nil {
				line = err.Error()
			}
			fmt.Fprintf(out, "Supervisor: %s\n", line)
			return nil
		},
	}
}
