package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/daemon"
	"github.com/egorlepa/ocpanel/internal/dns"
	"github.com/egorlepa/ocpanel/internal/healthcheck"
	"github.com/egorlepa/ocpanel/internal/platform"
)

func newCheckCmd() *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run health checks on the VPN setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c := daemon.NewComponents(cfg, platform.NewLogger("error"))
			out := cmd.OutOrStdout()

			allPassed := PrintResults(out, c.Checker.RunChecks(ctx))

			if domain != "" {
				fmt.Fprintf(out, "  DNS probe: %s\n", domain)
				for _, sc := range dns.CheckServers(ctx, c.Prober.DNS(), domain) {
					if sc.OK {
						printPass(out, sc.Server+": "+sc.Detail)
					} else {
						printFail(out, sc.Server+": "+sc.Detail)
						allPassed = false
					}
				}
			}

			if !allPassed {
				return errors.New("some checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "also resolve this domain through every configured nameserver")
	return cmd
}

// PrintResults prints health check results with colored output and returns true if all passed.
func PrintResults(w io.Writer, results []healthcheck.Result) bool {
	allPassed := true
	for _, r := range results {
		if r.Passed {
			printPass(w, r.Name+": "+r.Detail)
		} else {
			printFail(w, r.Name+": "+r.Detail)
			allPassed = false
		}
	}
	return allPassed
}

func printPass(w io.Writer, msg string) {
	fmt.Fprintf(w, "  \033[32m✓\033[0m %s\n", msg)
}

func printFail(w io.Writer, msg string) {
	fmt.Fprintf(w, "  \033[31m✗\033[0m %s\n", msg)
}
