package audit

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"mwhitfielddev/zonekeeper/internal/auditlog"

	"github.com/spf13/cobra"
)

// ListCommand returns the "audit list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		Long: `List recent zonekeeper runs stored locally.

Examples:
  zonekeeper audit list
  zonekeeper audit list --limit 50
  zonekeeper audit list --zone Z0123456789ABC
  zonekeeper audit list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("zone", "", "Filter by hosted zone ID")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	zone, _ := cmd.Flags().GetString("zone")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}

	repo, err := auditlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []auditlog.RunEntry
	if zone != "" {
		entries, err = repo.ListByZone(zone, limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	if output != "table" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tCOMMAND\tZONE\tKEEP\tDELETE\tSKIP\tDELETED\tOUTCOME\tDURATION")
	fmt.Fprintln(w, "----\t-------\t----\t----\t------\t----\t-------\t-------\t--------")
	for _, entry := range entries {
		timeStr := entry.Timestamp.Local().Format("2006-01-02 15:04:05")
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
			timeStr,
			entry.Command,
			entry.Zone,
			entry.Keep,
			entry.Delete,
			entry.Skip,
			entry.Deleted,
			entry.Outcome,
			formatDuration(entry.DurationMs),
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
