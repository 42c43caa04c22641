package report

import (
	"fmt"
	"strings"
)

// ReconcileReport renders the cross-check series: per sample date, the
// flown-astronaut count derived here versus the external dataset's, with
// disagreeing steps marked.
type ReconcileReport struct{}

// Render produces the step series and the discrepancy total.
func (r *ReconcileReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}
	if d.Reconcile == nil {
		return "", fmt.Errorf("no reconciliation result: external dataset not loaded")
	}

	var b strings.Builder
	b.WriteString(heading("Cross-check against external dataset"))

	for _, step := range d.Reconcile.Steps {
		marker := " "
		if step.Internal != step.External {
			marker = styleProblem.Render("✗")
		}
		b.WriteString(fmt.Sprintf("%s %s  internal %4d  external %4d\n",
			marker, step.Date.Format("02/01/2006"), step.Internal, step.External))
	}

	b.WriteString(fmt.Sprintf("\n%d of %d steps disagree\n",
		d.Reconcile.Discrepancies, len(d.Reconcile.Steps)))
	return b.String(), nil
}
