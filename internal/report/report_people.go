package report

import (
	"fmt"
	"strings"

	"github.com/tmarsden/orbitledger/internal/stats"
)

// PeopleReport renders the per-astronaut flight summaries, ordered by
// surname.
type PeopleReport struct{}

// Render produces one line per astronaut: flights, missions flown, and
// cumulative time in space.
func (r *PeopleReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}

	var b strings.Builder
	b.WriteString(heading("Astronauts"))

	summaries := stats.Summaries(d.Directory, d.Ledger, d.Registry)
	total := stats.TotalTimeInOrbit(d.Ledger, d.Registry)
	b.WriteString(fmt.Sprintf("%d people have been to space for a total of %s (%.2f days)\n\n",
		len(summaries), stats.FormatDays(total), total))

	for _, s := range summaries {
		b.WriteString(fmt.Sprintf("%s (%s) flights %d, missions [%s] time in space %.2f days\n",
			s.Name, s.Nationality, s.Flights, s.Missions, s.DaysInSpace))
	}

	return b.String(), nil
}
