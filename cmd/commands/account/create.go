package account

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "account create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> <email>",
		Short: "Create a member account and optionally place it in an OU",
		Long: `Request creation of a new organization member account. Creation is
asynchronous on the provider side; the request ID is printed so progress
can be checked in the organization console.

Examples:
  zonekeeper account create staging staging@example.org
  zonekeeper account create staging staging@example.org --ou ou-ab12-cdef3456`,
		Args:         cobra.ExactArgs(2),
		RunE:         runCreate,
		SilenceUsage: true,
	}

	cmd.Flags().String("ou", "", "Destination organizational unit ID")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, email := args[0], args[1]
	ou, _ := cmd.Flags().GetString("ou")

	api, err := newAccountAPI(ctx, cmd)
	if err != nil {
		return err
	}

	requestID, err := api.CreateAccount(ctx, name, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Account creation requested (request ID: %s).\n", requestID)

	if ou == "" {
		return nil
	}

	// The account ID is only assigned once creation completes, so OU
	// placement looks the account up by name.
	accounts, err := api.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("account requested but OU placement failed: %w", err)
	}
	for _, a := range accounts {
		if a.Name != name {
			continue
		}
		if err := api.MoveAccount(ctx, a.ID, ou); err != nil {
			return fmt.Errorf("account %s created but OU placement failed: %w", a.ID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Moved account %s into %s.\n", a.ID, ou)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Warning: account not visible yet; move it with the console or re-run once creation completes.\n")
	return nil
}
