package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/egorlepa/ocpanel/internal/config"
	"github.com/egorlepa/ocpanel/internal/platform"
)

// version is set at build time via ldflags.
var version = "dev"

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "ocpanel",
		Short:         "Web control panel for an OpenConnect client running under supervisord",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVarP(&configPath, "config", "c", platform.ConfigFile, "path to config file (YAML)")

	root.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConnectCmd(),
		newDisconnectCmd(),
		newReconnectCmd(),
		newLogsCmd(),
		newSettingsCmd(),
		newCheckCmd(),
	)

	return root
}

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// loadConfig loads the file named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}
