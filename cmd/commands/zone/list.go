package zone

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"mwhitfielddev/zonekeeper/internal/config"
	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/spf13/cobra"
)

// ListCommand returns the "zone list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all records in the hosted zone",
		Long: `List the full record set of the hosted zone.

Examples:
  zonekeeper zone list
  zonekeeper zone list --type A`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	typeFilter, _ := cmd.Flags().GetString("type")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zoneID, err := resolveZoneID(cmd, cfg)
	if err != nil {
		return err
	}

	store, err := newZoneStore(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	records, err := store.ListRecords(ctx, zoneID)
	if err != nil {
		return err
	}

	if typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(string(r.Type), typeFilter) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tTTL\tVALUE")
	fmt.Fprintln(w, "----\t----\t---\t-----")

	for _, r := range records {
		value := strings.Join(r.Values, " ")
		if r.IsAlias() {
			value = "ALIAS " + domain.Normalize(r.AliasTarget)
		}

		ttl := ""
		if r.TTL > 0 {
			ttl = fmt.Sprintf("%d", r.TTL)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			domain.Normalize(r.Name),
			r.Type,
			ttl,
			value,
		)
	}

	w.Flush()
	return nil
}
