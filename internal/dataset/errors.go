package dataset

import "errors"

// Sentinel errors for dataset construction and lookups.
var (
	// ErrDuplicateMission indicates two mission rows share a name; the
	// registry's uniqueness invariant cannot be honored.
	ErrDuplicateMission = errors.New("duplicate mission name")
	// ErrBadTimestamp indicates a primary-table timestamp cell does not
	// match the expected fixed format.
	ErrBadTimestamp = errors.New("timestamp does not match expected format")
	// ErrBadRow indicates a source row is missing required cells.
	ErrBadRow = errors.New("row has too few cells")
	// ErrAstronautNotFound indicates a name with no trips in the ledger.
	ErrAstronautNotFound = errors.New("astronaut has no trips")
	// ErrMissingLaunchMission indicates none of an astronaut's trips launch
	// on a registered mission, so a first-launch time cannot be derived.
	ErrMissingLaunchMission = errors.New("no trip resolves a launch mission")
	// ErrMissingNationality indicates no ledger trip supplies a nationality
	// for a directory name.
	ErrMissingNationality = errors.New("no trip supplies a nationality")
)
