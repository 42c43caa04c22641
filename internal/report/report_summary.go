package report

import (
	"fmt"
	"strings"

	"github.com/tmarsden/orbitledger/internal/stats"
)

// SummaryReport renders the headline numbers: dataset sizes, cumulative
// orbital time, and the reconciliation discrepancy total when available.
type SummaryReport struct{}

// Render produces the summary.
func (r *SummaryReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}

	var b strings.Builder
	b.WriteString(heading("Dataset summary"))

	b.WriteString(fmt.Sprintf("%d missions, %d trips, %d astronauts\n",
		len(d.Registry), len(d.Ledger), len(d.Directory)))

	total := stats.TotalTimeInOrbit(d.Ledger, d.Registry)
	b.WriteString(fmt.Sprintf("Total time in orbit: %s (%s)\n",
		styleTotal.Render(stats.FormatDays(total)),
		styleMuted.Render(fmt.Sprintf("%.2f days", total))))

	if n := len(d.Findings); n > 0 {
		b.WriteString(styleProblem.Render(fmt.Sprintf("%d consistency findings", n)) + "\n")
	} else {
		b.WriteString("No consistency findings\n")
	}

	if d.Reconcile != nil {
		line := fmt.Sprintf("Reconciliation: %d of %d steps disagree with the external dataset",
			d.Reconcile.Discrepancies, len(d.Reconcile.Steps))
		if d.Reconcile.Discrepancies > 0 {
			b.WriteString(styleProblem.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return b.String(), nil
}
