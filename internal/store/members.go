package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/ploscarna/internal/model"
)

// musicianNameExpr builds the "First [Middle] Last" display name in SQL.
const musicianNameExpr = `m.first_name || ' ' ||
	CASE WHEN m.middle_name <> '' THEN m.middle_name || ' ' ELSE '' END ||
	m.last_name`

// ListMemberships returns all ensemble memberships joined with display
// names, ordered by ensemble then role.
func ListMemberships(ctx context.Context, db *sql.DB) ([]model.Membership, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT em.ensemble_id, em.musician_id, em.role,
		        e.name AS ensemble_name, `+musicianNameExpr+` AS musician_name
		 FROM ensemble_members em
		 JOIN ensembles e ON e.ensemble_id = em.ensemble_id
		 JOIN musicians m ON m.musician_id = em.musician_id
		 ORDER BY e.name, em.role`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	defer rows.Close()

	var memberships []model.Membership
	for rows.Next() {
		var mb model.Membership
		if err := rows.Scan(&mb.EnsembleID, &mb.MusicianID, &mb.Role, &mb.EnsembleName, &mb.MusicianName); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}
		memberships = append(memberships, mb)
	}
	return memberships, rows.Err()
}

// AddMembership adds a musician to an ensemble, both given by display
// name. Fails without writing when either name does not resolve.
func AddMembership(ctx context.Context, db *sql.DB, actor Actor, ensembleName, musicianName, role string) error {
	ensembleID, err := ResolveEnsembleID(ctx, db, ensembleName)
	if err != nil {
		return err
	}
	musicianID, err := ResolveMusicianID(ctx, db, musicianName)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ensemble_members (ensemble_id, musician_id, role) VALUES (?, ?, ?)`,
		ensembleID, musicianID, role,
	)
	if err != nil {
		return fmt.Errorf("adding membership: %w", err)
	}

	details := fmt.Sprintf("added member %s to ensemble %s as %s", musicianName, ensembleName, role)
	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityMembership, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing membership: %w", err)
	}
	return nil
}

// UpdateMembership rewrites a membership identified by its old display
// names to new ones. All four names must resolve before anything is
// written; a resolution failure aborts the whole update.
func UpdateMembership(ctx context.Context, db *sql.DB, actor Actor, oldEnsembleName, oldMusicianName, newEnsembleName, newMusicianName, role string) error {
	oldEnsembleID, err := ResolveEnsembleID(ctx, db, oldEnsembleName)
	if err != nil {
		return err
	}
	oldMusicianID, err := ResolveMusicianID(ctx, db, oldMusicianName)
	if err != nil {
		return err
	}
	newEnsembleID, err := ResolveEnsembleID(ctx, db, newEnsembleName)
	if err != nil {
		return err
	}
	newMusicianID, err := ResolveMusicianID(ctx, db, newMusicianName)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE ensemble_members SET ensemble_id = ?, musician_id = ?, role = ?
		 WHERE ensemble_id = ? AND musician_id = ?`,
		newEnsembleID, newMusicianID, role, oldEnsembleID, oldMusicianID,
	)
	if err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating membership: %w", ErrNotFound)
	}

	details := fmt.Sprintf("edited membership of %s in %s", newMusicianName, newEnsembleName)
	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityMembership, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing membership update: %w", err)
	}
	return nil
}

// DeleteMembership removes a membership identified by display names.
func DeleteMembership(ctx context.Context, db *sql.DB, actor Actor, ensembleName, musicianName string) error {
	ensembleID, err := ResolveEnsembleID(ctx, db, ensembleName)
	if err != nil {
		return err
	}
	musicianID, err := ResolveMusicianID(ctx, db, musicianName)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM ensemble_members WHERE ensemble_id = ? AND musician_id = ?`,
		ensembleID, musicianID,
	)
	if err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("deleting membership: %w", ErrNotFound)
	}

	details := fmt.Sprintf("removed member %s from ensemble %s", musicianName, ensembleName)
	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityMembership, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing membership deletion: %w", err)
	}
	return nil
}
