package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmarsden/orbitledger/internal/stats"
)

// ProgrammesReport renders trip counts grouped by programme. The stats
// engine returns an unordered map; the renderer sorts by programme name so
// output is deterministic.
type ProgrammesReport struct{}

// Render produces one line per programme.
func (r *ProgrammesReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}

	counts := stats.TripsPerProgramme(d.Ledger)
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(heading("Trips per programme"))
	for _, name := range names {
		b.WriteString(fmt.Sprintf("%-20s %d\n", name, counts[name]))
	}
	return b.String(), nil
}
