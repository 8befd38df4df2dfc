package account

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ListCommand returns the "account list" subcommand.
func ListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List organization member accounts",
		RunE:         runList,
		SilenceUsage: true,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	api, err := newAccountAPI(ctx, cmd)
	if err != nil {
		return err
	}

	accounts, err := api.ListAccounts(ctx)
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No accounts found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----\t------")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Name, a.Email, a.Status)
	}
	w.Flush()
	return nil
}
