package stats

import (
	"math"
	"testing"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

func TestSummaries(t *testing.T) {
	t.Parallel()

	reg := registry(t, [][]string{
		{"M1", "01/01/1965 00:00:00", "03/01/1965 00:00:00"},
		{"M2", "01/01/1970 00:00:00", "02/01/1970 00:00:00"},
	})
	ledger := dataset.Ledger{
		{Name: "Amy Zane", Nationality: "UK", LaunchMission: "M1", LandingMission: "M1"},
		{Name: "Zoe Adams", Nationality: "USA", LaunchMission: "M1", LandingMission: "M1"},
		{Name: "Amy Zane", Nationality: "UK", LaunchMission: "M2", LandingMission: "M2"},
	}
	dir, err := dataset.BuildDirectory(ledger, reg)
	if err != nil {
		t.Fatalf("BuildDirectory: %v", err)
	}

	summaries := Summaries(dir, ledger, reg)
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	// Surname order: Adams before Zane.
	if summaries[0].Name != "Zoe Adams" || summaries[1].Name != "Amy Zane" {
		t.Fatalf("order = [%s, %s], want [Zoe Adams, Amy Zane]",
			summaries[0].Name, summaries[1].Name)
	}

	zane := summaries[1]
	if zane.Flights != 2 {
		t.Errorf("flights = %d, want 2", zane.Flights)
	}
	if zane.Missions != "M1, M2" {
		t.Errorf("missions = %q, want %q", zane.Missions, "M1, M2")
	}
	if want := 3.0; math.Abs(zane.DaysInSpace-want) > 1e-9 {
		t.Errorf("days in space = %f, want %f", zane.DaysInSpace, want)
	}
}

func TestFormatDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days float64
		want string
	}{
		{0, "0 years 0 days 0 hours"},
		{1.5, "0 years 1 days 12 hours"},
		{365, "1 years 0 days 0 hours"},
		{400.25, "1 years 35 days 6 hours"},
	}
	for _, tt := range tests {
		if got := FormatDays(tt.days); got != tt.want {
			t.Errorf("FormatDays(%f) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
