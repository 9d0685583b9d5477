package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Relation tables cascade on delete so
// removing an ensemble, musician, composition or record also removes its
// memberships, performances and track listings.
const schema = `
CREATE TABLE IF NOT EXISTS ensembles (
    ensemble_id INTEGER PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    type        TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS musicians (
    musician_id INTEGER PRIMARY KEY,
    first_name  TEXT NOT NULL,
    middle_name TEXT NOT NULL DEFAULT '',
    last_name   TEXT NOT NULL,
    bio         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS compositions (
    composition_id INTEGER PRIMARY KEY,
    title          TEXT NOT NULL,
    creation_year  INTEGER CHECK (creation_year IS NULL OR creation_year BETWEEN 1000 AND 9999)
);

CREATE TABLE IF NOT EXISTS records (
    record_id          INTEGER PRIMARY KEY,
    title              TEXT NOT NULL,
    wholesale_price    REAL NOT NULL DEFAULT 0,
    retail_price       REAL NOT NULL DEFAULT 0,
    disc_count         INTEGER NOT NULL DEFAULT 1,
    current_year_sales INTEGER NOT NULL DEFAULT 0,
    remaining_stock    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS ensemble_members (
    ensemble_id INTEGER NOT NULL REFERENCES ensembles(ensemble_id) ON DELETE CASCADE,
    musician_id INTEGER NOT NULL REFERENCES musicians(musician_id) ON DELETE CASCADE,
    role        TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (ensemble_id, musician_id)
);

CREATE TABLE IF NOT EXISTS performances (
    ensemble_id    INTEGER NOT NULL REFERENCES ensembles(ensemble_id) ON DELETE CASCADE,
    composition_id INTEGER NOT NULL REFERENCES compositions(composition_id) ON DELETE CASCADE,
    arrangement    TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (ensemble_id, composition_id)
);

CREATE TABLE IF NOT EXISTS record_tracks (
    record_id      INTEGER NOT NULL REFERENCES records(record_id) ON DELETE CASCADE,
    composition_id INTEGER NOT NULL REFERENCES compositions(composition_id) ON DELETE CASCADE,
    track_number   INTEGER NOT NULL CHECK (track_number BETWEEN 1 AND 100),
    PRIMARY KEY (record_id, composition_id)
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    phone         TEXT NOT NULL DEFAULT '',
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS user_actions (
    id             INTEGER PRIMARY KEY,
    user_email     TEXT NOT NULL,
    action_date    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    action_type    TEXT NOT NULL,
    entity_type    TEXT NOT NULL DEFAULT '',
    action_details TEXT NOT NULL DEFAULT '',
    ip_address     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_user_actions_email_date
    ON user_actions(user_email, action_date);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
