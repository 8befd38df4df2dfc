// Package report renders classifier output for operator review. The
// full disposition list is always printed before any mutation so the
// apply confirmation is made against visible evidence.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	keepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func styleVerdict(v domain.Verdict) string {
	switch v {
	case domain.VerdictKeep:
		return keepStyle.Render(string(v))
	case domain.VerdictDelete:
		return deleteStyle.Render(string(v))
	default:
		return skipStyle.Render(string(v))
	}
}

// WriteDispositions prints one line per record with its verdict and reason.
func WriteDispositions(w io.Writer, ds []domain.Disposition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("VERDICT")+"\tNAME\tTYPE\tREASON")
	fmt.Fprintln(tw, "-------\t----\t----\t------")
	for _, d := range ds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			styleVerdict(d.Verdict),
			domain.Normalize(d.Record.Name),
			d.Record.Type,
			d.Reason,
		)
	}
	tw.Flush()
}

// WriteSummary prints per-verdict counts.
func WriteSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "\n%s %s  %s %s  %s %s\n",
		keepStyle.Render("KEEP:"), fmt.Sprint(s.Keep),
		deleteStyle.Render("DELETE:"), fmt.Sprint(s.Delete),
		skipStyle.Render("SKIP:"), fmt.Sprint(s.Skip),
	)
}

// WriteAccountReports prints the per-account collection outcome,
// flagging unreachable accounts whose aliases are invisible to the
// classifier.
func WriteAccountReports(w io.Writer, reports []domain.AccountReport) {
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "Warning: %v (its live aliases are invisible this run)\n", r.Err)
			continue
		}
		fmt.Fprintf(w, "Collected %d distributions from %s\n", r.Distributions, r.Account)
	}
}
