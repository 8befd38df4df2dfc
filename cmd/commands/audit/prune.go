package audit

import (
	"fmt"
	"time"

	"mwhitfielddev/zonekeeper/internal/auditlog"

	"github.com/spf13/cobra"
)

// PruneCommand returns the "audit prune" subcommand.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old run entries",
		Long: `Delete run entries older than the given age.

Examples:
  zonekeeper audit prune
  zonekeeper audit prune --older-than 720h`,
		RunE:         runPrune,
		SilenceUsage: true,
	}

	cmd.Flags().Duration("older-than", 90*24*time.Hour, "Delete entries older than this")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if olderThan <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	n, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d entries.\n", n)
	return nil
}
