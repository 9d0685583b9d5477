package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: index for the joined relation listings, which always
	// order by the ensemble or record display name.
	`CREATE INDEX IF NOT EXISTS idx_ensemble_members_musician
	     ON ensemble_members(musician_id)`,
	`CREATE INDEX IF NOT EXISTS idx_performances_composition
	     ON performances(composition_id)`,
	`CREATE INDEX IF NOT EXISTS idx_record_tracks_composition
	     ON record_tracks(composition_id)`,
}

// Migrate ensures the schema and runs the migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
