package zone

import (
	"fmt"

	"mwhitfielddev/zonekeeper/internal/config"
	"mwhitfielddev/zonekeeper/internal/zone/exporter"

	"github.com/spf13/cobra"
)

// defaultExportDir is where exports land when neither the flag nor the
// config names a directory.
const defaultExportDir = "zone-exports"

// ExportCommand returns the "zone export" subcommand.
func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Snapshot the zone to disk for audit and diffing",
		Long: `Fetch the full record set and write three artifacts: a structured JSON
snapshot, a zone-file-style text rendering, and a separate extract of the
manually-managed email/verification (MX/TXT) records.

Examples:
  zonekeeper zone export
  zonekeeper zone export --out ./snapshots`,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().String("out", "", "Export directory (overrides config)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	dir := cmd.Flag("out").Value.String()
	if dir == "" {
		dir = cfg.ExportDir
	}
	if dir == "" {
		dir = defaultExportDir
	}

	res, err := exporter.Export(ctx, store, zoneID, dir)
	if err != nil {
		return err
	}

	printExportResult(cmd, res)
	return nil
}

func printExportResult(cmd *cobra.Command, res *exporter.Result) {
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records:\n", res.Records)
	fmt.Fprintf(cmd.OutOrStdout(), "  snapshot:  %s\n", res.SnapshotPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  zone file: %s\n", res.ZoneFilePath)
	fmt.Fprintf(cmd.OutOrStdout(), "  manual:    %s (%d email/verification records)\n", res.ManualPath, res.Manual)
}
