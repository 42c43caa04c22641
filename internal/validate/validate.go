// Package validate runs the advisory consistency checks over a loaded trip
// ledger and mission registry. Findings are collected and reported, never
// fatal: the tool keeps going with whatever the data supports.
package validate

import (
	"fmt"
	"sort"

	"github.com/tmarsden/orbitledger/internal/dataset"
)

// Category classifies a finding for programmatic handling.
type Category string

const (
	// CatMissingReference indicates a trip references a mission name absent
	// from the registry.
	CatMissingReference Category = "missing_reference"
	// CatUnreferencedMission indicates a registered mission no trip uses.
	CatUnreferencedMission Category = "unreferenced_mission"
	// CatTemporalOrder indicates a trip launches after its landing mission
	// has already landed.
	CatTemporalOrder Category = "temporal_order"
)

// Finding records one consistency problem with its subject context.
type Finding struct {
	Category Category
	// Astronaut is the trip subject, empty for mission-level findings.
	Astronaut string
	// Mission is the mission name the finding concerns.
	Mission string
}

// String renders the finding for the line-oriented report.
func (f Finding) String() string {
	switch f.Category {
	case CatMissingReference:
		return fmt.Sprintf("missing reference: trip of %s references unknown mission %q", f.Astronaut, f.Mission)
	case CatUnreferencedMission:
		return fmt.Sprintf("unreferenced mission: %q is never used by any trip", f.Mission)
	case CatTemporalOrder:
		return fmt.Sprintf("temporal ordering: %s launches after mission %q has landed", f.Astronaut, f.Mission)
	}
	return fmt.Sprintf("%s: %s %s", f.Category, f.Astronaut, f.Mission)
}

// Check runs all consistency checks, returning findings in check order:
// referential integrity, coverage, temporal ordering.
func Check(ledger dataset.Ledger, reg dataset.Registry) []Finding {
	var findings []Finding
	findings = append(findings, checkReferences(ledger, reg)...)
	findings = append(findings, checkCoverage(ledger, reg)...)
	findings = append(findings, checkTemporalOrder(ledger, reg)...)
	return findings
}

// checkReferences reports every trip mission reference that does not
// resolve, individually per missing name.
func checkReferences(ledger dataset.Ledger, reg dataset.Registry) []Finding {
	var findings []Finding
	for _, trip := range ledger {
		for _, ref := range []string{trip.LaunchMission, trip.LandingMission} {
			if _, ok := reg[ref]; !ok {
				findings = append(findings, Finding{
					Category:  CatMissingReference,
					Astronaut: trip.Name,
					Mission:   ref,
				})
			}
		}
	}
	return findings
}

// checkCoverage reports every registered mission that no trip references as
// either launch or landing.
func checkCoverage(ledger dataset.Ledger, reg dataset.Registry) []Finding {
	referenced := make(map[string]bool, len(reg))
	for _, trip := range ledger {
		referenced[trip.LaunchMission] = true
		referenced[trip.LandingMission] = true
	}

	var findings []Finding
	for _, name := range sortedMissionNames(reg) {
		if !referenced[name] {
			findings = append(findings, Finding{Category: CatUnreferencedMission, Mission: name})
		}
	}
	return findings
}

// sortedMissionNames keeps coverage findings deterministic across runs.
func sortedMissionNames(reg dataset.Registry) []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkTemporalOrder reports trips whose launch time falls after their
// landing mission's landing time. Trips with an unknown landing time are
// exempt: they are still in orbit.
func checkTemporalOrder(ledger dataset.Ledger, reg dataset.Registry) []Finding {
	var findings []Finding
	for _, trip := range ledger {
		launch, ok := reg[trip.LaunchMission]
		if !ok {
			continue
		}
		landing, ok := reg[trip.LandingMission]
		if !ok || !landing.Landing.Known {
			continue
		}
		if launch.Launch.After(landing.Landing.Time) {
			findings = append(findings, Finding{
				Category:  CatTemporalOrder,
				Astronaut: trip.Name,
				Mission:   landing.Name,
			})
		}
	}
	return findings
}
