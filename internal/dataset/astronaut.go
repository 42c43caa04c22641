package dataset

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Astronaut holds the identity facts derived for one name by joining the
// trip ledger against the mission registry. Names are not guaranteed
// globally unique across namesakes; that is a known limitation of the
// source data.
type Astronaut struct {
	Name        string
	Nationality string
	FirstNames  string
	LastNames   string
	Suffix      string
	FirstLaunch time.Time
}

// Directory maps astronaut name to derived identity facts. It is built once
// after the ledger and registry are loaded, immutable thereafter.
type Directory map[string]Astronaut

// SplitName splits a full name on single spaces. If the final token is the
// literal "Jr", the suffix is "Jr" and the surname is the two final tokens
// joined by a space; otherwise the surname is the single final token. The
// heuristic does not handle "Sr", "II", "III", or multi-word surnames such
// as "Von Braun".
func SplitName(full string) (firstNames, lastNames, suffix string) {
	tokens := strings.Split(full, " ")
	if n := len(tokens); n >= 2 && tokens[n-1] == "Jr" {
		suffix = "Jr"
		lastNames = strings.Join(tokens[n-2:], " ")
		firstNames = strings.Join(tokens[:n-2], " ")
		return firstNames, lastNames, suffix
	}
	lastNames = tokens[len(tokens)-1]
	firstNames = strings.Join(tokens[:len(tokens)-1], " ")
	return firstNames, lastNames, ""
}

// FirstLaunch derives the earliest launch time among the named astronaut's
// trips, ordering trips by the launch time of their launch mission with
// ledger order breaking ties. A name with zero trips fails with
// ErrAstronautNotFound; a name none of whose trips launch on a registered
// mission fails with ErrMissingLaunchMission.
func FirstLaunch(name string, ledger Ledger, reg Registry) (time.Time, error) {
	trips := ledger.ByName(name)
	if len(trips) == 0 {
		return time.Time{}, fmt.Errorf("%q: %w", name, ErrAstronautNotFound)
	}

	resolved := make([]Trip, 0, len(trips))
	for _, t := range trips {
		if _, ok := reg[t.LaunchMission]; ok {
			resolved = append(resolved, t)
		}
	}
	if len(resolved) == 0 {
		return time.Time{}, fmt.Errorf("%q: %w", name, ErrMissingLaunchMission)
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return reg[resolved[i].LaunchMission].Launch.Before(reg[resolved[j].LaunchMission].Launch)
	})
	return reg[resolved[0].LaunchMission].Launch, nil
}

// BuildDirectory joins the ledger against the registry, producing one entry
// per distinct trip name. Nationality comes from the first ledger trip for
// the name. A name whose first launch cannot be derived aborts the build.
func BuildDirectory(ledger Ledger, reg Registry) (Directory, error) {
	dir := make(Directory)
	for _, trip := range ledger {
		if _, seen := dir[trip.Name]; seen {
			continue
		}

		nationality, err := nationalityOf(trip.Name, ledger)
		if err != nil {
			return nil, err
		}
		first, err := FirstLaunch(trip.Name, ledger, reg)
		if err != nil {
			return nil, err
		}

		firstNames, lastNames, suffix := SplitName(trip.Name)
		dir[trip.Name] = Astronaut{
			Name:        trip.Name,
			Nationality: nationality,
			FirstNames:  firstNames,
			LastNames:   lastNames,
			Suffix:      suffix,
			FirstLaunch: first,
		}
	}
	return dir, nil
}

// nationalityOf returns the nationality field of the first ledger trip for
// the name, or ErrMissingNationality when no trip carries the name.
func nationalityOf(name string, ledger Ledger) (string, error) {
	for _, t := range ledger {
		if t.Name == name {
			return t.Nationality, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrMissingNationality)
}

// SortedNames returns all directory names ordered by surname then first
// names, ascending. Nationality and chronology are deliberately ignored.
func (d Directory) SortedNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return sortKey(d[names[i]]) < sortKey(d[names[j]])
	})
	return names
}

func sortKey(a Astronaut) string {
	return a.LastNames + " " + a.FirstNames
}
