package config

import (
	"fmt"
	"text/tabwriter"

	"mwhitfielddev/zonekeeper/internal/config"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" subcommand.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show configuration values",
		Long: `Show one configuration value, or all of them when no key is given.

Examples:
  zonekeeper config get
  zonekeeper config get zone-id`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		if value == "" {
			value = "<unset>"
		}
		fmt.Fprintf(w, "%s\t%s\n", key, value)
	}
	for _, a := range cfg.Accounts {
		fmt.Fprintf(w, "account.%s\t%s\n", a.Name, a.Profile)
	}
	w.Flush()
	return nil
}
