package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

// PersonSummary aggregates one astronaut's flying career: how many trips,
// which launch missions, and the cumulative resolvable time in orbit.
type PersonSummary struct {
	Name        string
	Nationality string
	Flights     int
	// Missions is the comma-joined list of launch missions in ledger order.
	Missions string
	// DaysInSpace is the cumulative resolvable trip time in fractional
	// days; unresolvable trips contribute zero.
	DaysInSpace float64
}

// Summaries builds a PersonSummary per directory astronaut, ordered by the
// directory's surname sort.
func Summaries(dir dataset.Directory, ledger dataset.Ledger, reg dataset.Registry) []PersonSummary {
	summaries := make([]PersonSummary, 0, len(dir))
	for _, name := range dir.SortedNames() {
		a := dir[name]
		s := PersonSummary{Name: a.Name, Nationality: a.Nationality}

		var missions []string
		for _, trip := range ledger.ByName(name) {
			s.Flights++
			missions = append(missions, trip.LaunchMission)
			if d, ok := reg.TripDuration(trip); ok {
				s.DaysInSpace += Days(d)
			}
		}
		s.Missions = strings.Join(missions, ", ")
		summaries = append(summaries, s)
	}
	return summaries
}

// FormatDays renders a fractional-day total as "N years N days N hours".
func FormatDays(days float64) string {
	years := math.Floor(days / 365)
	remDays := math.Floor(days - years*365)
	hours := math.Floor((days - years*365 - remDays) * hoursPerDay)
	return fmt.Sprintf("%d years %d days %d hours", int(years), int(remDays), int(hours))
}
