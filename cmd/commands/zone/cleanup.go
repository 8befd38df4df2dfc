package zone

import (
	"errors"
	"fmt"
	"os"
	"time"

	"mwhitfielddev/zonekeeper/internal/auditlog"
	"mwhitfielddev/zonekeeper/internal/config"
	"mwhitfielddev/zonekeeper/internal/zone/classifier"
	"mwhitfielddev/zonekeeper/internal/zone/collector"
	"mwhitfielddev/zonekeeper/internal/zone/domain"
	"mwhitfielddev/zonekeeper/internal/zone/exporter"
	"mwhitfielddev/zonekeeper/internal/zone/mutator"
	"mwhitfielddev/zonekeeper/internal/zone/report"
	"mwhitfielddev/zonekeeper/internal/zone/ruleset"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// CleanupCommand returns the "zone cleanup" subcommand.
func CleanupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Classify every zone record and delete verified orphans",
		Long: `Cross-reference the hosted zone with the live CloudFront distributions
of every configured member account, print a KEEP/DELETE/SKIP disposition
for each record, and (in apply mode) delete the verified orphans in
batches of at most 500 with propagation waits between batches.

The default is a dry run: the full report is printed and nothing is
mutated. Apply mode asks for confirmation naming the exact record count
before any deletion; --yes skips the prompt for non-interactive use.

Examples:
  zonekeeper zone cleanup                 # Dry run
  zonekeeper zone cleanup --apply         # Delete after confirmation
  zonekeeper zone cleanup --apply --yes   # Non-interactive apply`,
		RunE:         runCleanup,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("apply", false, "Apply deletions (default is dry run)")
	cmd.Flags().Bool("yes", false, "Skip the interactive confirmation prompt")
	cmd.Flags().String("ruleset", "", "Path to the cleanup ruleset file (overrides config)")
	cmd.Flags().Duration("account-timeout", collector.DefaultAccountTimeout, "Per-account collection timeout")
	cmd.Flags().String("out", "", "Export directory for the post-cleanup snapshot (overrides config)")

	return cmd
}

func runCleanup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	start := time.Now()

	apply, _ := cmd.Flags().GetBool("apply")
	yes, _ := cmd.Flags().GetBool("yes")
	accountTimeout, _ := cmd.Flags().GetDuration("account-timeout")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zoneID, err := resolveZoneID(cmd, cfg)
	if err != nil {
		return err
	}

	rulesetPath := cmd.Flag("ruleset").Value.String()
	if rulesetPath == "" {
		rulesetPath = cfg.RulesetPath
	}
	if rulesetPath == "" {
		return fmt.Errorf("no ruleset specified: use --ruleset or set one with 'zonekeeper config set ruleset <path>'")
	}
	rs, err := ruleset.Load(rulesetPath)
	if err != nil {
		return err
	}

	store, err := newZoneStore(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	listers, err := newAccountListers(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	// The zone snapshot and the live endpoint collection are
	// independent reads; fetch them in parallel. A zone read failure
	// is fatal, a per-account failure is not.
	var (
		records []domain.Record
		live    *domain.LiveSet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = store.ListRecords(gctx, zoneID)
		return err
	})
	g.Go(func() error {
		var err error
		coll := collector.New(listers, collector.WithAccountTimeout(accountTimeout))
		live, err = coll.Collect(gctx)
		return err
	})

	fetchErr := g.Wait
	if term.IsTerminal(int(os.Stdout.Fd())) {
		var innerErr error
		spinErr := spinner.New().
			Title(fmt.Sprintf("Fetching zone %s and distributions from %d accounts...", zoneID, len(listers))).
			Output(cmd.ErrOrStderr()).
			Action(func() { innerErr = g.Wait() }).
			Run()
		if spinErr != nil {
			return spinErr
		}
		fetchErr = func() error { return innerErr }
	}
	if err := fetchErr(); err != nil {
		return err
	}

	report.WriteAccountReports(cmd.ErrOrStderr(), live.Reports)

	dispositions := classifier.Classify(records, live, rs)
	report.WriteDispositions(cmd.OutOrStdout(), dispositions)

	summary := domain.Summarize(dispositions)
	report.WriteSummary(cmd.OutOrStdout(), summary)

	deletes := domain.Deletes(dispositions)

	if !apply {
		fmt.Fprintf(cmd.OutOrStdout(), "\nDry run: %d records would be deleted. Re-run with --apply to delete them.\n", len(deletes))
		saveRunEntry(cmd, zoneID, summary, 0, auditlog.OutcomeDryRun, "", start)
		return nil
	}

	if len(deletes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\nZone is clean: nothing to delete.")
		saveRunEntry(cmd, zoneID, summary, 0, auditlog.OutcomeSuccess, "clean", start)
		return nil
	}

	if err := confirmDeletion(cmd, yes, len(deletes)); err != nil {
		if errors.Is(err, domain.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cleanup cancelled; no records were deleted.")
			saveRunEntry(cmd, zoneID, summary, 0, auditlog.OutcomeAborted, "", start)
		}
		return err
	}

	batches := mutator.Plan(deletes, rs.BatchSize)
	m := mutator.New(store, mutator.WithLog(cmd.ErrOrStderr()))
	if err := m.Apply(ctx, zoneID, batches); err != nil {
		saveRunEntry(cmd, zoneID, summary, 0, auditlog.OutcomeError, err.Error(), start)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d records in %d batches.\n", len(deletes), len(batches))

	exportDir := cmd.Flag("out").Value.String()
	if exportDir == "" {
		exportDir = cfg.ExportDir
	}
	if exportDir == "" {
		exportDir = defaultExportDir
	}
	res, err := exporter.Export(ctx, store, zoneID, exportDir)
	if err != nil {
		// The deletions are already applied; a failed export should
		// not turn the run into a failure.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: post-cleanup export failed: %v\n", err)
	} else {
		printExportResult(cmd, res)
	}

	saveRunEntry(cmd, zoneID, summary, len(deletes), auditlog.OutcomeSuccess, "", start)
	return nil
}

// confirmDeletion gates apply mode. Interactive runs get a prompt
// naming the exact record count; non-interactive runs must pass --yes.
func confirmDeletion(cmd *cobra.Command, yes bool, count int) error {
	if yes {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("refusing to delete %d records without confirmation: re-run with --yes in non-interactive mode", count)
	}

	var confirmed bool
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Delete %d DNS records? This cannot be undone.", count)).
		Affirmative("Yes, delete").
		Negative("Cancel").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.ErrAborted
		}
		return err
	}
	if !confirmed {
		return domain.ErrAborted
	}
	return nil
}

// saveRunEntry records the run in the local audit log. Failures are
// warnings; the audit trail never blocks the run itself.
func saveRunEntry(cmd *cobra.Command, zoneID string, s domain.Summary, deleted int, outcome, detail string, start time.Time) {
	repo, err := auditlog.Open()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to open audit log: %v\n", err)
		return
	}
	defer repo.Close()

	entry := &auditlog.RunEntry{
		Command:    "zone cleanup",
		Zone:       zoneID,
		Keep:       s.Keep,
		Delete:     s.Delete,
		Skip:       s.Skip,
		Deleted:    deleted,
		Outcome:    outcome,
		Detail:     detail,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err := repo.Save(entry); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to save audit entry: %v\n", err)
	}
}
