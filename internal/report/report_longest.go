package report

import (
	"fmt"
	"strings"

	"github.com/tmarsden/orbitledger/internal/stats"
)

// LongestReport renders the n longest trips by derived duration.
type LongestReport struct{}

// Render produces the ranked trip list. Trips whose duration could not be
// derived sort to the bottom and are marked as unknown.
func (r *LongestReport) Render(d *Data) (string, error) {
	if d == nil {
		return "", fmt.Errorf("report data is nil")
	}

	n := d.LongestN
	if n <= 0 {
		n = 10
	}

	var b strings.Builder
	b.WriteString(heading(fmt.Sprintf("Longest %d trips", n)))

	for i, tt := range stats.LongestTrips(n, d.Ledger, d.Registry) {
		duration := styleMuted.Render("duration unknown")
		if tt.Known {
			duration = fmt.Sprintf("%.2f days", tt.Days)
		}
		b.WriteString(fmt.Sprintf("%2d. %s: %s to %s, %s\n",
			i+1, tt.Trip.Name, tt.Trip.LaunchMission, tt.Trip.LandingMission, duration))
	}

	return b.String(), nil
}
