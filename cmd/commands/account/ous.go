package account

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ListOUsCommand returns the "account list-ous" subcommand.
func ListOUsCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list-ous",
		Short:        "List organizational units under the organization root",
		Long:         "List the organizational units available as --ou targets for account create.",
		RunE:         runListOUs,
		SilenceUsage: true,
	}
}

func runListOUs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	api, err := newAccountAPI(ctx, cmd)
	if err != nil {
		return err
	}

	units, err := api.ListOrganizationalUnits(ctx)
	if err != nil {
		return err
	}

	if len(units) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No organizational units found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	fmt.Fprintln(w, "--\t----")
	for _, ou := range units {
		fmt.Fprintf(w, "%s\t%s\n", ou.ID, ou.Name)
	}
	w.Flush()
	return nil
}
