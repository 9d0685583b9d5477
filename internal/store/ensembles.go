package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/ploscarna/internal/model"
)

// CreateEnsemble creates a new ensemble and audits the addition in the
// same transaction.
func CreateEnsemble(ctx context.Context, db *sql.DB, actor Actor, name, ensembleType, description string) (*model.Ensemble, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("ensemble name is required")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO ensembles (name, type, description) VALUES (?, ?, ?)`,
		name, ensembleType, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating ensemble: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting ensemble id: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityEnsemble, "added ensemble: "+name); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing ensemble: %w", err)
	}

	return GetEnsemble(ctx, db, id)
}

// GetEnsemble returns an ensemble by ID.
func GetEnsemble(ctx context.Context, db *sql.DB, id int64) (*model.Ensemble, error) {
	e := &model.Ensemble{}
	err := db.QueryRowContext(ctx,
		`SELECT ensemble_id, name, type, description FROM ensembles WHERE ensemble_id = ?`, id,
	).Scan(&e.ID, &e.Name, &e.Type, &e.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting ensemble: %w", err)
	}
	return e, nil
}

// ListEnsembles returns all ensembles ordered by name.
func ListEnsembles(ctx context.Context, db *sql.DB) ([]model.Ensemble, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT ensemble_id, name, type, description FROM ensembles ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing ensembles: %w", err)
	}
	defer rows.Close()

	var ensembles []model.Ensemble
	for rows.Next() {
		var e model.Ensemble
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Description); err != nil {
			return nil, fmt.Errorf("scanning ensemble: %w", err)
		}
		ensembles = append(ensembles, e)
	}
	return ensembles, rows.Err()
}

// UpdateEnsemble updates an ensemble's fields.
func UpdateEnsemble(ctx context.Context, db *sql.DB, actor Actor, id int64, name, ensembleType, description string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("ensemble name is required")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE ensembles SET name = ?, type = ?, description = ? WHERE ensemble_id = ?`,
		name, ensembleType, description, id,
	)
	if err != nil {
		return fmt.Errorf("updating ensemble: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating ensemble %d: %w", id, ErrNotFound)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityEnsemble, "edited ensemble: "+name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ensemble update: %w", err)
	}
	return nil
}

// DeleteEnsemble removes an ensemble. Its memberships and performances are
// removed with it via the schema's cascade rules.
func DeleteEnsemble(ctx context.Context, db *sql.DB, actor Actor, id int64) error {
	ensemble, err := GetEnsemble(ctx, db, id)
	if err != nil {
		return err
	}
	if ensemble == nil {
		return fmt.Errorf("deleting ensemble %d: %w", id, ErrNotFound)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ensembles WHERE ensemble_id = ?`, id); err != nil {
		return fmt.Errorf("deleting ensemble: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityEnsemble, "deleted ensemble: "+ensemble.Name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ensemble deletion: %w", err)
	}
	return nil
}
