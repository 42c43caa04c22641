package dataset

import (
	"fmt"
	"time"

	"github.com/tmarsden/orbitledger/internal/clock"
	"github.com/tmarsden/orbitledger/internal/table"
)

// Mission is a single launch-to-landing spaceflight event, identified by a
// unique name. Missions are immutable after load.
type Mission struct {
	Name         string
	Organisation string
	LaunchSite   string
	Launch       time.Time
	Landing      Timestamp
}

// Duration returns landing minus launch. The second result is false while
// the mission is ongoing or its landing time is unrecorded.
func (m Mission) Duration() (time.Duration, bool) {
	if !m.Landing.Known {
		return 0, false
	}
	return m.Landing.Time.Sub(m.Launch), true
}

// Registry is a uniqueness-checked mapping from mission name to mission
// facts.
type Registry map[string]Mission

// Column layout of the missions table.
const (
	missionColName = iota
	missionColOrganisation
	missionColLaunchSite
	missionColLaunchTime
	missionColLandingTime
	missionColumns
)

// missionsHeaderRows is the number of preamble lines in the missions file.
const missionsHeaderRows = 1

// BuildRegistry constructs a Registry from raw mission rows. The landing
// cell accepts three forms: the NowSentinel (resolved against clk), the
// empty string (unknown), or the fixed LayoutFull format. A repeated
// mission name fails with ErrDuplicateMission and no registry is returned.
func BuildRegistry(rows [][]string, clk clock.Clock) (Registry, error) {
	reg := make(Registry, len(rows))
	for i, row := range rows {
		if len(row) < missionColumns {
			return nil, fmt.Errorf("missions row %d: %w: got %d, want %d", i+1, ErrBadRow, len(row), missionColumns)
		}

		name := row[missionColName]
		if _, exists := reg[name]; exists {
			return nil, fmt.Errorf("missions row %d: %w: %q", i+1, ErrDuplicateMission, name)
		}

		launch, ok := ParseAny(row[missionColLaunchTime], LayoutFull)
		if !ok {
			return nil, fmt.Errorf("missions row %d (%s): launch time %q: %w", i+1, name, row[missionColLaunchTime], ErrBadTimestamp)
		}

		landing, err := parseLanding(row[missionColLandingTime], clk)
		if err != nil {
			return nil, fmt.Errorf("missions row %d (%s): %w", i+1, name, err)
		}

		reg[name] = Mission{
			Name:         name,
			Organisation: row[missionColOrganisation],
			LaunchSite:   row[missionColLaunchSite],
			Launch:       launch,
			Landing:      landing,
		}
	}
	return reg, nil
}

// parseLanding maps a landing cell to a Timestamp.
func parseLanding(cell string, clk clock.Clock) (Timestamp, error) {
	switch cell {
	case NowSentinel:
		return At(clk.Now()), nil
	case "":
		return Unknown(), nil
	}
	t, ok := ParseAny(cell, LayoutFull)
	if !ok {
		return Unknown(), fmt.Errorf("landing time %q: %w", cell, ErrBadTimestamp)
	}
	return At(t), nil
}

// LoadRegistry reads the missions CSV at path and builds the registry.
func LoadRegistry(path string, clk clock.Clock) (Registry, error) {
	rows, err := table.ReadCSV(path, missionsHeaderRows)
	if err != nil {
		return nil, err
	}
	return BuildRegistry(rows, clk)
}
