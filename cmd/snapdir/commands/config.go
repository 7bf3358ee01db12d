package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/snapdir/internal/errors"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect snapdir configuration",
	Long: `Inspect the snapdir configuration.

Without a subcommand, shows the effective configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration as YAML, after defaults, the config
file, and SNAPDIR_* environment variables have been merged.`,
	Example: `  snapdir config show

  # Validate a config file without running a backup
  snapdir config show --config backup.yaml`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return errors.NewUserError(err, "fix the reported setting and retry")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "rendering config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
