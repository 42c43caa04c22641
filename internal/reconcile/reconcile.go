// Package reconcile cross-validates this system's derived first-orbital-
// flight timeline against an independently sourced dataset. The external
// tables are tab-separated with '#' header/comment conventions and looser
// date formats, so parsing is best-effort per record: a ride whose mission
// cannot be resolved or dated simply drops out of the comparison.
package reconcile

import (
	"strings"
	"time"

	"github.com/tmarsden/orbitledger/internal/dataset"
	"github.com/tmarsden/orbitledger/internal/table"
)

// DefaultEpoch is where the cross-check time series starts.
var DefaultEpoch = time.Date(1961, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultStep is the cross-check sampling interval.
const DefaultStep = 30 * 24 * time.Hour

// orbitalMarker prefixes the orbit-classification values that count as
// having reached orbit (case-insensitive).
const orbitalMarker = "orb"

// Column names of the external tables.
const (
	colTag        = "Tag"
	colOrbit      = "Orbit"
	colLaunchDate = "LaunchDate"
	colAstronaut  = "Astronaut"
	colMission    = "Mission"
	colRole       = "Role"
)

// ExternalMission is one row of the external missions table.
type ExternalMission struct {
	Tag        string
	Name       string
	Orbit      string
	LaunchDate string
}

// Ride is one row of the external per-astronaut ride table.
type Ride struct {
	Astronaut string
	Mission   string
	Role      string
}

// LoadMissions reads the external missions table.
func LoadMissions(path string) ([]ExternalMission, error) {
	t, err := table.ReadHashTabular(path, '\t')
	if err != nil {
		return nil, err
	}
	missions := make([]ExternalMission, 0, len(t.Rows))
	for i := range t.Rows {
		missions = append(missions, ExternalMission{
			Tag:        t.Get(i, colTag),
			Name:       t.Get(i, colMission),
			Orbit:      t.Get(i, colOrbit),
			LaunchDate: t.Get(i, colLaunchDate),
		})
	}
	return missions, nil
}

// LoadRides reads the external ride table.
func LoadRides(path string) ([]Ride, error) {
	t, err := table.ReadHashTabular(path, '\t')
	if err != nil {
		return nil, err
	}
	rides := make([]Ride, 0, len(t.Rows))
	for i := range t.Rows {
		rides = append(rides, Ride{
			Astronaut: t.Get(i, colAstronaut),
			Mission:   t.Get(i, colMission),
			Role:      t.Get(i, colRole),
		})
	}
	return rides, nil
}

// RoleTag returns the portion of a slash-delimited role code before the
// first slash.
func RoleTag(role string) string {
	if i := strings.Index(role, "/"); i >= 0 {
		return role[:i]
	}
	return role
}

// orbitalLaunch finds the orbital mission matching the role tag and parses
// its launch date through the three-layout fallback, loosest last. A
// matching mission whose date does not parse under any layout is treated
// as not found.
func orbitalLaunch(missions []ExternalMission, tag string) (time.Time, bool) {
	for _, m := range missions {
		if m.Tag != tag {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(m.Orbit), orbitalMarker) {
			continue
		}
		return dataset.ParseAny(m.LaunchDate, dataset.LayoutFull, dataset.LayoutMinutes, dataset.LayoutDate)
	}
	return time.Time{}, false
}

// FirstOrbital maps each external astronaut identifier to the earliest
// orbital launch date discovered across all their ride records.
func FirstOrbital(missions []ExternalMission, rides []Ride) map[string]time.Time {
	first := make(map[string]time.Time)
	for _, ride := range rides {
		launch, ok := orbitalLaunch(missions, RoleTag(ride.Role))
		if !ok {
			continue
		}
		if prev, seen := first[ride.Astronaut]; !seen || launch.Before(prev) {
			first[ride.Astronaut] = launch
		}
	}
	return first
}

// Step is one sample point of the cross-check series.
type Step struct {
	Date time.Time
	// Internal counts directory astronauts whose first launch is strictly
	// before Date.
	Internal int
	// External counts external astronauts whose first orbital date is
	// strictly before Date.
	External int
}

// Result is the outcome of a cross-check run.
type Result struct {
	Steps []Step
	// Discrepancies is the number of steps where the two counts differ.
	Discrepancies int
}

// CrossCheck steps from epoch to now in fixed increments, counting flown
// astronauts in both datasources at each step and tallying the steps where
// the counts disagree.
func CrossCheck(dir dataset.Directory, external map[string]time.Time, epoch time.Time, step time.Duration, now time.Time) Result {
	var res Result
	for date := epoch; !date.After(now); date = date.Add(step) {
		s := Step{Date: date}
		for _, a := range dir {
			if a.FirstLaunch.Before(date) {
				s.Internal++
			}
		}
		for _, launch := range external {
			if launch.Before(date) {
				s.External++
			}
		}
		if s.Internal != s.External {
			res.Discrepancies++
		}
		res.Steps = append(res.Steps, s)
	}
	return res
}
