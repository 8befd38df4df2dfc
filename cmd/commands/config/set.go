package config

import (
	"fmt"
	"strings"

	"mwhitfielddev/zonekeeper/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" subcommand.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Member accounts use the "account.<name>" key; the value is the
shared-config profile used to reach that account.

Examples:
  zonekeeper config set zone-id Z0123456789ABC
  zonekeeper config set profile org-management
  zonekeeper config set account.staging org-staging`,
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if name, ok := strings.CutPrefix(key, "account."); ok {
		if name == "" {
			return fmt.Errorf("account key must name the account: account.<name>")
		}
		setAccount(cfg, name, value)
	} else if err := cfg.Set(key, value); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s.\n", key)
	return nil
}

func setAccount(cfg *config.Config, name, profile string) {
	for i, a := range cfg.Accounts {
		if a.Name == name {
			cfg.Accounts[i].Profile = profile
			return
		}
	}
	cfg.Accounts = append(cfg.Accounts, config.AccountContext{Name: name, Profile: profile})
}
