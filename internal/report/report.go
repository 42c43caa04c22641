// Package report renders the derived dataset into line-oriented,
// human-readable text for stdout. Each report is a ReportFormat selected by
// name, so commands and watch mode share one rendering path.
package report

import (
	"fmt"

	"github.com/tmarsden/orbitledger/internal/dataset"
	"github.com/tmarsden/orbitledger/internal/reconcile"
	"github.com/tmarsden/orbitledger/internal/validate"
)

// Data bundles everything a renderer may need. Reconcile is nil when the
// external dataset was not loaded.
type Data struct {
	Ledger    dataset.Ledger
	Registry  dataset.Registry
	Directory dataset.Directory
	Findings  []validate.Finding
	Reconcile *reconcile.Result

	// LongestN is how many trips the longest report shows.
	LongestN int
}

// ReportFormat defines how dataset data is rendered into a human-readable
// string.
type ReportFormat interface {
	// Render produces the full report content.
	Render(d *Data) (string, error)
}

// FormatByName returns the ReportFormat implementation for the given name.
// Supported names: summary, people, longest, programmes, findings, reconcile.
func FormatByName(name string) (ReportFormat, error) {
	switch name {
	case "summary":
		return &SummaryReport{}, nil
	case "people":
		return &PeopleReport{}, nil
	case "longest":
		return &LongestReport{}, nil
	case "programmes":
		return &ProgrammesReport{}, nil
	case "findings":
		return &FindingsReport{}, nil
	case "reconcile":
		return &ReconcileReport{}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %q", name)
	}
}

// FormatNames returns the list of all supported report format names.
func FormatNames() []string {
	return []string{"summary", "people", "longest", "programmes", "findings", "reconcile"}
}
