package reconcile

import (
	"testing"
	"time"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestRoleTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want string
	}{
		{"VK1/Pilot", "VK1"},
		{"GT4/Command/Backup", "GT4"},
		{"Solo", "Solo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := RoleTag(tt.role); got != tt.want {
			t.Errorf("RoleTag(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestOrbitalLaunch(t *testing.T) {
	t.Parallel()

	missions := []ExternalMission{
		{Tag: "SUB", Orbit: "Suborbital", LaunchDate: "05/05/1961"},
		{Tag: "VK1", Orbit: "ORBITAL", LaunchDate: "12/04/1961 06:07:00"},
		{Tag: "LOOSE", Orbit: "orbital", LaunchDate: "18/03/1965 07:00"},
		{Tag: "BADDATE", Orbit: "Orbital", LaunchDate: "sometime in spring"},
	}

	tests := []struct {
		name string
		tag  string
		want time.Time
		ok   bool
	}{
		{"case-insensitive orbital marker", "VK1", time.Date(1961, 4, 12, 6, 7, 0, 0, time.UTC), true},
		{"minutes fallback layout", "LOOSE", time.Date(1965, 3, 18, 7, 0, 0, 0, time.UTC), true},
		{"suborbital does not count", "SUB", time.Time{}, false},
		{"unparsable date means not found", "BADDATE", time.Time{}, false},
		{"no such tag", "GHOST", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := orbitalLaunch(missions, tt.tag)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("launch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstOrbital_KeepsEarliest(t *testing.T) {
	t.Parallel()

	missions := []ExternalMission{
		{Tag: "EARLY", Orbit: "Orbital", LaunchDate: "12/04/1961"},
		{Tag: "LATE", Orbit: "Orbital", LaunchDate: "06/08/1961"},
		{Tag: "SUB", Orbit: "Suborbital", LaunchDate: "05/05/1961"},
	}
	rides := []Ride{
		{Astronaut: "gagarin_y", Role: "LATE/Pilot"},
		{Astronaut: "gagarin_y", Role: "EARLY/Pilot"}, // earlier date replaces
		{Astronaut: "gagarin_y", Role: "LATE/Backup"}, // later date discarded
		{Astronaut: "shepard_a", Role: "SUB/Pilot"},   // never orbital
	}

	first := FirstOrbital(missions, rides)
	if len(first) != 1 {
		t.Fatalf("got %d astronauts, want 1", len(first))
	}
	if got, want := first["gagarin_y"], date(1961, 4, 12); !got.Equal(want) {
		t.Errorf("first orbital = %v, want %v", got, want)
	}
}

func TestCrossCheck(t *testing.T) {
	t.Parallel()

	// Internal: one astronaut first launched 12/04/1961.
	dir := dataset.Directory{
		"Yuri Gagarin": {Name: "Yuri Gagarin", FirstLaunch: date(1961, 4, 12)},
	}
	// External agrees exactly.
	external := map[string]time.Time{
		"gagarin_y": date(1961, 4, 12),
	}

	epoch := date(1961, 1, 1)
	now := date(1961, 12, 31)

	res := CrossCheck(dir, external, epoch, DefaultStep, now)
	if res.Discrepancies != 0 {
		t.Errorf("discrepancies = %d, want 0 for agreeing datasets", res.Discrepancies)
	}
	if len(res.Steps) == 0 {
		t.Fatal("expected at least one step")
	}

	// The first step, at the epoch itself, must count nobody: the
	// comparison is strictly-before.
	if s := res.Steps[0]; s.Internal != 0 || s.External != 0 {
		t.Errorf("epoch step = %+v, want zero counts", s)
	}
}

func TestCrossCheck_CountsDisagreeingSteps(t *testing.T) {
	t.Parallel()

	dir := dataset.Directory{
		"Yuri Gagarin": {Name: "Yuri Gagarin", FirstLaunch: date(1961, 4, 12)},
	}
	// External dataset thinks the first flight happened two steps later.
	external := map[string]time.Time{
		"gagarin_y": date(1961, 6, 11),
	}

	epoch := date(1961, 1, 1)
	now := date(1961, 12, 31)

	res := CrossCheck(dir, external, epoch, DefaultStep, now)
	if res.Discrepancies == 0 {
		t.Fatal("expected discrepancies when the datasets disagree")
	}
	// The counts converge once both dates are in the past; discrepancies
	// must not cover every step.
	if res.Discrepancies >= len(res.Steps) {
		t.Errorf("discrepancies = %d of %d steps; expected convergence", res.Discrepancies, len(res.Steps))
	}
}

func TestCrossCheck_SeriesMonotonic(t *testing.T) {
	t.Parallel()

	dir := dataset.Directory{
		"A": {Name: "A", FirstLaunch: date(1961, 4, 12)},
		"B": {Name: "B", FirstLaunch: date(1962, 2, 20)},
		"C": {Name: "C", FirstLaunch: date(1963, 6, 16)},
	}
	external := map[string]time.Time{
		"a": date(1961, 5, 5),
		"b": date(1962, 8, 11),
	}

	res := CrossCheck(dir, external, date(1961, 1, 1), DefaultStep, date(1964, 1, 1))
	for i := 1; i < len(res.Steps); i++ {
		prev, cur := res.Steps[i-1], res.Steps[i]
		if cur.Internal < prev.Internal {
			t.Fatalf("internal series decreased at step %d: %d -> %d", i, prev.Internal, cur.Internal)
		}
		if cur.External < prev.External {
			t.Fatalf("external series decreased at step %d: %d -> %d", i, prev.External, cur.External)
		}
	}
}
