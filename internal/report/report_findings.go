package report

import (
	"fmt"
	"strings"
)

// FindingsReport renders the validator findings, one per line.
type FindingsReport struct{}

// Render produces the findings list, or a clean bill of health.
func (r *FindingsReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}

	var b strings.Builder
	b.WriteString(heading("Consistency findings"))

	if len(d.Findings) == 0 {
		b.WriteString("No findings: every reference resolves, every mission is used, all timelines are ordered.\n")
		return b.String(), nil
	}

	for _, f := range d.Findings {
		b.WriteString(styleProblem.Render("✗") + " " + f.String() + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%d findings\n", len(d.Findings)))
	return b.String(), nil
}
