package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/ploscarna/internal/model"
)

// ListPerformances returns all performances joined with display names,
// ordered by ensemble then composition.
func ListPerformances(ctx context.Context, db *sql.DB) ([]model.Performance, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.ensemble_id, p.composition_id, p.arrangement,
		        e.name AS ensemble_name, c.title AS composition_title
		 FROM performances p
		 JOIN ensembles e ON e.ensemble_id = p.ensemble_id
		 JOIN compositions c ON c.composition_id = p.composition_id
		 ORDER BY e.name, c.title`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing performances: %w", err)
	}
	defer rows.Close()

	var performances []model.Performance
	for rows.Next() {
		var p model.Performance
		if err := rows.Scan(&p.EnsembleID, &p.CompositionID, &p.Arrangement, &p.EnsembleName, &p.CompositionTitle); err != nil {
			return nil, fmt.Errorf("scanning performance: %w", err)
		}
		performances = append(performances, p)
	}
	return performances, rows.Err()
}

// AddPerformance records that an ensemble performs a composition, both
// given by display name.
func AddPerformance(ctx context.Context, db *sql.DB, actor Actor, ensembleName, compositionTitle, arrangement string) error {
	ensembleID, err := ResolveEnsembleID(ctx, db, ensembleName)
	if err != nil {
		return err
	}
	compositionID, err := ResolveCompositionID(ctx, db, compositionTitle)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO performances (ensemble_id, composition_id, arrangement) VALUES (?, ?, ?)`,
		ensembleID, compositionID, arrangement,
	)
	if err != nil {
		return fmt.Errorf("adding performance: %w", err)
	}

	details := fmt.Sprintf("added performance of %s by %s", compositionTitle, ensembleName)
	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityPerformance, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing performance: %w", err)
	}
	return nil
}

// UpdatePerformance rewrites a performance identified by its old display
// names. All names must resolve before anything is written.
func UpdatePerformance(ctx context.Context, db *sql.DB, actor Actor, oldEnsembleName, oldCompositionTitle, newEnsembleName, newCompositionTitle, arrangement string) error {
	oldEnsembleID, err := ResolveEnsembleID(ctx, db, oldEnsembleName)
	if err != nil {
		return err
	}
	oldCompositionID, err := ResolveCompositionID(ctx, db, oldCompositionTitle)
	if err != nil {
		return err
	}
	newEnsembleID, err := ResolveEnsembleID(ctx, db, newEnsembleName)
	if err != nil {
		return err
	}
	newCompositionID, err := ResolveCompositionID(ctx, db, newCompositionTitle)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE performances SET ensemble_id = ?, composition_id = ?, arrangement = ?
		 WHERE ensemble_id = ? AND composition_id = ?`,
		newEnsembleID, newCompositionID, arrangement, oldEnsembleID, oldCompositionID,
	)
	if err != nil {
		return fmt.Errorf("updating performance: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating performance: %w", ErrNotFound)
	}

	details := fmt.Sprintf("edited performance of %s by %s", newCompositionTitle, newEnsembleName)
	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityPerformance, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing performance update: %w", err)
	}
	return nil
}

// DeletePerformance removes a performance identified by display names.
func DeletePerformance(ctx context.Context, db *sql.DB, actor Actor, ensembleName, compositionTitle string) error {
	ensembleID, err := ResolveEnsembleID(ctx, db, ensembleName)
	if err != nil {
		return err
	}
	compositionID, err := ResolveCompositionID(ctx, db, compositionTitle)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM performances WHERE ensemble_id = ? AND composition_id = ?`,
		ensembleID, compositionID,
	)
	if err != nil {
		return fmt.Errorf("deleting performance: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("deleting performance: %w", ErrNotFound)
	}

	details := fmt.Sprintf("removed performance of %s by %s", compositionTitle, ensembleName)
	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityPerformance, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing performance deletion: %w", err)
	}
	return nil
}
