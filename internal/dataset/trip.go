package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmarsden/orbitledger/internal/table"
)

// Trip is one astronaut's journey: launching on one mission and landing on
// another (possibly the same). Trips have no identity beyond their position
// in the ledger.
type Trip struct {
	Name           string
	Nationality    string
	LaunchMission  string
	LandingMission string
}

// Ledger is the ordered sequence of trips exactly as read from the trips
// table, duplicates included.
type Ledger []Trip

// Column layout of the trips table.
const (
	tripColName = iota
	tripColNationality
	tripColLaunchMission
	tripColLandingMission
	tripColumns
)

// tripsHeaderRows covers the header line plus the spacer line.
const tripsHeaderRows = 2

// BuildLedger constructs a Ledger from raw trip rows, trimming surrounding
// whitespace from every field.
func BuildLedger(rows [][]string) (Ledger, error) {
	ledger := make(Ledger, 0, len(rows))
	for i, row := range rows {
		if len(row) < tripColumns {
			return nil, fmt.Errorf("trips row %d: %w: got %d, want %d", i+1, ErrBadRow, len(row), tripColumns)
		}
		ledger = append(ledger, Trip{
			Name:           strings.TrimSpace(row[tripColName]),
			Nationality:    strings.TrimSpace(row[tripColNationality]),
			LaunchMission:  strings.TrimSpace(row[tripColLaunchMission]),
			LandingMission: strings.TrimSpace(row[tripColLandingMission]),
		})
	}
	return ledger, nil
}

// LoadLedger reads the trips CSV at path and builds the ledger.
func LoadLedger(path string) (Ledger, error) {
	rows, err := table.ReadCSV(path, tripsHeaderRows)
	if err != nil {
		return nil, err
	}
	return BuildLedger(rows)
}

// ByName returns the trips for one astronaut in ledger order.
func (l Ledger) ByName(name string) []Trip {
	var trips []Trip
	for _, t := range l {
		if t.Name == name {
			trips = append(trips, t)
		}
	}
	return trips
}

// TripDuration derives a trip's duration: the landing mission's landing
// time minus the launch mission's launch time. The second result is false
// when either mission is unregistered or either endpoint is unknown.
func (r Registry) TripDuration(t Trip) (time.Duration, bool) {
	launch, ok := r[t.LaunchMission]
	if !ok {
		return 0, false
	}
	landing, ok := r[t.LandingMission]
	if !ok || !landing.Landing.Known {
		return 0, false
	}
	return landing.Landing.Time.Sub(launch.Launch), true
}
