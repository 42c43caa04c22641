package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on every export. Using IF NOT EXISTS
// makes re-exporting into the same file safe.
const schema = `
CREATE TABLE IF NOT EXISTS missions (
    name          TEXT PRIMARY KEY,
    organisation  TEXT NOT NULL DEFAULT '',
    launch_site   TEXT NOT NULL DEFAULT '',
    launch        TIMESTAMP NOT NULL,
    landing       TIMESTAMP,
    duration_days REAL
);

CREATE TABLE IF NOT EXISTS trips (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    astronaut       TEXT NOT NULL,
    nationality     TEXT NOT NULL DEFAULT '',
    launch_mission  TEXT NOT NULL,
    landing_mission TEXT NOT NULL,
    duration_days   REAL
);

CREATE TABLE IF NOT EXISTS astronauts (
    name         TEXT PRIMARY KEY,
    nationality  TEXT NOT NULL DEFAULT '',
    first_names  TEXT NOT NULL DEFAULT '',
    last_names   TEXT NOT NULL DEFAULT '',
    suffix       TEXT NOT NULL DEFAULT '',
    first_launch TIMESTAMP NOT NULL
);
`

// ExportSQLite writes the snapshot into a sqlite database at dbPath,
// replacing any rows from a previous export of the same tables.
func ExportSQLite(ctx context.Context, dbPath string, snap *Snapshot) (err error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("store: open database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("store: close database: %w", cerr)
		}
	}()

	// Single writer; one connection avoids SQLITE_BUSY between pooled
	// connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, table := range []string{"missions", "trips", "astronauts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("store: clear %s: %w", table, err)
		}
	}

	if err := insertMissions(ctx, tx, snap.Missions); err != nil {
		return err
	}
	if err := insertTrips(ctx, tx, snap.Trips); err != nil {
		return err
	}
	if err := insertAstronauts(ctx, tx, snap.Astronauts); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

func insertMissions(ctx context.Context, tx *sql.Tx, missions []MissionRecord) error {
	const q = `
		INSERT INTO missions (name, organisation, launch_site, launch, landing, duration_days)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, m := range missions {
		landing := nullableTime(m.Landing)
		duration := nullableFloat(m.DurationDays)
		if _, err := tx.ExecContext(ctx, q, m.Name, m.Organisation, m.LaunchSite, m.Launch, landing, duration); err != nil {
			return fmt.Errorf("store: insert mission %q: %w", m.Name, err)
		}
	}
	return nil
}

func insertTrips(ctx context.Context, tx *sql.Tx, trips []TripRecord) error {
	const q = `
		INSERT INTO trips (astronaut, nationality, launch_mission, landing_mission, duration_days)
		VALUES (?, ?, ?, ?, ?)`
	for _, t := range trips {
		duration := nullableFloat(t.DurationDays)
		if _, err := tx.ExecContext(ctx, q, t.Astronaut, t.Nationality, t.LaunchMission, t.LandingMission, duration); err != nil {
			return fmt.Errorf("store: insert trip of %q: %w", t.Astronaut, err)
		}
	}
	return nil
}

func insertAstronauts(ctx context.Context, tx *sql.Tx, astronauts []AstronautRecord) error {
	const q = `
		INSERT INTO astronauts (name, nationality, first_names, last_names, suffix, first_launch)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, a := range astronauts {
		if _, err := tx.ExecContext(ctx, q, a.Name, a.Nationality, a.FirstNames, a.LastNames, a.Suffix, a.FirstLaunch); err != nil {
			return fmt.Errorf("store: insert astronaut %q: %w", a.Name, err)
		}
	}
	return nil
}

// nullableTime maps the zero time (unknown landing) to NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// nullableFloat maps a zero duration (unknown) to NULL. A genuine zero-day
// trip also maps to NULL, which the snapshot's omitempty TOML field already
// treats the same way.
func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
