// Package stats computes aggregate reports over the loaded dataset. Every
// function is pure: the ledger and registry are never mutated, and derived
// durations live in explicit value types rather than being attached to the
// shared trips.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

// hoursPerDay converts durations into the fractional-day unit the reports
// use.
const hoursPerDay = 24

// Days converts a duration to fractional days.
func Days(d time.Duration) float64 {
	return d.Hours() / hoursPerDay
}

// TotalTimeInOrbit sums, over all trips whose missions and endpoint
// timestamps resolve, the trip duration in fractional days. Trips that do
// not resolve contribute zero; that is missing data, not an error.
func TotalTimeInOrbit(ledger dataset.Ledger, reg dataset.Registry) float64 {
	var total float64
	for _, trip := range ledger {
		if d, ok := reg.TripDuration(trip); ok {
			total += Days(d)
		}
	}
	return total
}

// Programme strips digit characters from a mission name, collapsing mission
// families ("Apollo11" -> "Apollo") into one key.
func Programme(mission string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, mission)
}

// TripsPerProgramme counts trips grouped by the programme of their launch
// mission. Map iteration order is unspecified; callers needing determinism
// sort the programme names.
func TripsPerProgramme(ledger dataset.Ledger) map[string]int {
	counts := make(map[string]int)
	for _, trip := range ledger {
		counts[Programme(trip.LaunchMission)]++
	}
	return counts
}

// TimedTrip pairs a trip with its derived duration. It is a copy made for
// sorting and display; the ledger itself is never annotated.
type TimedTrip struct {
	Trip dataset.Trip
	// Days is the trip duration in fractional days, zero when unknown.
	Days float64
	// Known reports whether the duration actually resolved.
	Known bool
}

// LongestTrips derives every trip's duration (unknown sorting as zero),
// sorts descending, and returns the first n. The sort is stable, so trips
// of equal duration keep their ledger order. Fewer than n trips yields all
// of them.
func LongestTrips(n int, ledger dataset.Ledger, reg dataset.Registry) []TimedTrip {
	timed := make([]TimedTrip, 0, len(ledger))
	for _, trip := range ledger {
		tt := TimedTrip{Trip: trip}
		if d, ok := reg.TripDuration(trip); ok {
			tt.Days = Days(d)
			tt.Known = true
		}
		timed = append(timed, tt)
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Days > timed[j].Days
	})

	if n > len(timed) {
		n = len(timed)
	}
	return timed[:n]
}

// FlownAsOf counts astronauts whose derived first-launch time is at or
// before the cutoff.
func FlownAsOf(dir dataset.Directory, cutoff time.Time) int {
	count := 0
	for _, a := range dir {
		if !a.FirstLaunch.After(cutoff) {
			count++
		}
	}
	return count
}
