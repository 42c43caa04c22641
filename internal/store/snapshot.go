// Package store exports a snapshot of the joined dataset for downstream
// tools: a TOML document for human diffing and a sqlite database for ad-hoc
// querying. Export is opt-in; the default run writes nothing.
package store

import (
	"sort"
	"time"

	"github.com/tmarsden/orbitledger/internal/dataset"
	"github.com/tmarsden/orbitledger/internal/stats"
)

// Snapshot is the exported form of the joined dataset.
type Snapshot struct {
	Header     Header            `toml:"orbitledger"`
	Missions   []MissionRecord   `toml:"mission"`
	Trips      []TripRecord      `toml:"trip"`
	Astronauts []AstronautRecord `toml:"astronaut"`
}

// Header contains top-level metadata about the snapshot itself.
type Header struct {
	Version   int       `toml:"version"`
	Generated time.Time `toml:"generated"`
}

// MissionRecord is one mission with its derived duration.
type MissionRecord struct {
	Name         string    `toml:"name"`
	Organisation string    `toml:"organisation"`
	LaunchSite   string    `toml:"launch_site"`
	Launch       time.Time `toml:"launch"`
	Landing      time.Time `toml:"landing,omitzero"`
	DurationDays float64   `toml:"duration_days,omitempty"`
}

// TripRecord is one ledger trip with its derived duration.
type TripRecord struct {
	Astronaut      string  `toml:"astronaut"`
	Nationality    string  `toml:"nationality"`
	LaunchMission  string  `toml:"launch_mission"`
	LandingMission string  `toml:"landing_mission"`
	DurationDays   float64 `toml:"duration_days,omitempty"`
}

// AstronautRecord is one directory entry.
type AstronautRecord struct {
	Name        string    `toml:"name"`
	Nationality string    `toml:"nationality"`
	FirstNames  string    `toml:"first_names,omitempty"`
	LastNames   string    `toml:"last_names"`
	Suffix      string    `toml:"suffix,omitempty"`
	FirstLaunch time.Time `toml:"first_launch"`
}

// Build assembles a snapshot. Missions are ordered by name and astronauts
// by the directory's surname sort, so successive exports diff cleanly.
func Build(reg dataset.Registry, ledger dataset.Ledger, dir dataset.Directory, now time.Time) *Snapshot {
	snap := &Snapshot{Header: Header{Version: 1, Generated: now}}

	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m := reg[name]
		rec := MissionRecord{
			Name:         m.Name,
			Organisation: m.Organisation,
			LaunchSite:   m.LaunchSite,
			Launch:       m.Launch,
		}
		if m.Landing.Known {
			rec.Landing = m.Landing.Time
		}
		if d, ok := m.Duration(); ok {
			rec.DurationDays = stats.Days(d)
		}
		snap.Missions = append(snap.Missions, rec)
	}

	for _, trip := range ledger {
		rec := TripRecord{
			Astronaut:      trip.Name,
			Nationality:    trip.Nationality,
			LaunchMission:  trip.LaunchMission,
			LandingMission: trip.LandingMission,
		}
		if d, ok := reg.TripDuration(trip); ok {
			rec.DurationDays = stats.Days(d)
		}
		snap.Trips = append(snap.Trips, rec)
	}

	for _, name := range dir.SortedNames() {
		a := dir[name]
		snap.Astronauts = append(snap.Astronauts, AstronautRecord{
			Name:        a.Name,
			Nationality: a.Nationality,
			FirstNames:  a.FirstNames,
			LastNames:   a.LastNames,
			Suffix:      a.Suffix,
			FirstLaunch: a.FirstLaunch,
		})
	}

	return snap
}
