package stats

import (
	"math"
	"testing"
	"time"

	"github.com/tmarsden/orbitledger/internal/clock"
	"github.com/tmarsden/orbitledger/internal/dataset"
)

// registry builds a mission registry from (name, launch, landing) triples.
func registry(t *testing.T, rows [][]string) dataset.Registry {
	t.Helper()
	raw := make([][]string, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, []string{r[0], "Org", "Site", r[1], r[2]})
	}
	reg, err := dataset.BuildRegistry(raw, clock.NewFixed(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	return reg
}

func TestTotalTimeInOrbit(t *testing.T) {
	t.Parallel()

	reg := registry(t, [][]string{
		{"TwoAndAHalf", "01/01/2020 00:00:00", "03/01/2020 12:00:00"},
		{"Ongoing", "01/01/2020 00:00:00", ""},
	})
	ledger := dataset.Ledger{
		{Name: "A", LaunchMission: "TwoAndAHalf", LandingMission: "TwoAndAHalf"},
		{Name: "B", LaunchMission: "TwoAndAHalf", LandingMission: "Ongoing"},
		{Name: "C", LaunchMission: "Ghost", LandingMission: "TwoAndAHalf"},
	}

	got := TotalTimeInOrbit(ledger, reg)
	if want := 2.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalTimeInOrbit = %f, want %f (unresolvable trips contribute zero)", got, want)
	}
}

func TestProgramme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mission string
		want    string
	}{
		{"Apollo11", "Apollo"},
		{"Soyuz T13", "Soyuz T"},
		{"STS-61A", "STS-A"},
		{"Voskhod", "Voskhod"},
	}
	for _, tt := range tests {
		if got := Programme(tt.mission); got != tt.want {
			t.Errorf("Programme(%q) = %q, want %q", tt.mission, got, tt.want)
		}
	}
}

func TestTripsPerProgramme(t *testing.T) {
	t.Parallel()

	ledger := dataset.Ledger{
		{Name: "A", LaunchMission: "Apollo11"},
		{Name: "B", LaunchMission: "Apollo12"},
		{Name: "C", LaunchMission: "Gemini4"},
	}

	counts := TripsPerProgramme(ledger)
	if counts["Apollo"] != 2 {
		t.Errorf("Apollo count = %d, want 2", counts["Apollo"])
	}
	if counts["Gemini"] != 1 {
		t.Errorf("Gemini count = %d, want 1", counts["Gemini"])
	}
}

func TestLongestTrips_StableTieBreak(t *testing.T) {
	t.Parallel()

	reg := registry(t, [][]string{
		{"Five1", "01/01/2020 00:00:00", "06/01/2020 00:00:00"},
		{"Five2", "01/02/2020 00:00:00", "06/02/2020 00:00:00"},
		{"Three", "01/03/2020 00:00:00", "04/03/2020 00:00:00"},
	})
	ledger := dataset.Ledger{
		{Name: "A", LaunchMission: "Five1", LandingMission: "Five1"},
		{Name: "B", LaunchMission: "Five2", LandingMission: "Five2"},
		{Name: "C", LaunchMission: "Three", LandingMission: "Three"},
	}

	top := LongestTrips(2, ledger, reg)
	if len(top) != 2 {
		t.Fatalf("got %d trips, want 2", len(top))
	}
	if top[0].Trip.Name != "A" || top[1].Trip.Name != "B" {
		t.Errorf("tie order = [%s, %s], want [A, B] (ledger order preserved)",
			top[0].Trip.Name, top[1].Trip.Name)
	}
}

func TestLongestTrips_UnknownSortsAsZero(t *testing.T) {
	t.Parallel()

	reg := registry(t, [][]string{
		{"Short", "01/01/2020 00:00:00", "02/01/2020 00:00:00"},
		{"Ongoing", "01/01/2020 00:00:00", ""},
	})
	ledger := dataset.Ledger{
		{Name: "InOrbit", LaunchMission: "Short", LandingMission: "Ongoing"},
		{Name: "Landed", LaunchMission: "Short", LandingMission: "Short"},
	}

	top := LongestTrips(2, ledger, reg)
	if top[0].Trip.Name != "Landed" {
		t.Errorf("first = %s, want Landed (unknown duration sorts as zero)", top[0].Trip.Name)
	}
	if top[1].Known {
		t.Error("ongoing trip should report an unknown duration")
	}
}

func TestLongestTrips_FewerThanN(t *testing.T) {
	t.Parallel()

	reg := registry(t, [][]string{
		{"Only", "01/01/2020 00:00:00", "02/01/2020 00:00:00"},
	})
	ledger := dataset.Ledger{
		{Name: "A", LaunchMission: "Only", LandingMission: "Only"},
	}

	if got := LongestTrips(10, ledger, reg); len(got) != 1 {
		t.Errorf("got %d trips, want 1", len(got))
	}
}

func TestFlownAsOf_CutoffInclusive(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(1965, 1, 1, 0, 0, 0, 0, time.UTC)
	dir := dataset.Directory{
		"Before": {Name: "Before", FirstLaunch: cutoff.Add(-time.Hour)},
		"At":     {Name: "At", FirstLaunch: cutoff},
		"After":  {Name: "After", FirstLaunch: cutoff.Add(time.Hour)},
	}

	if got := FlownAsOf(dir, cutoff); got != 2 {
		t.Errorf("FlownAsOf = %d, want 2 (cutoff is inclusive)", got)
	}
}
