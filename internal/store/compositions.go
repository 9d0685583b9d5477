package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/ploscarna/internal/model"
)

// CreateComposition creates a new composition. creationYear may be nil
// when the year is unknown.
func CreateComposition(ctx context.Context, db *sql.DB, actor Actor, title string, creationYear *int) (*model.Composition, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("composition title is required")
	}
	if err := validateYear(creationYear); err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO compositions (title, creation_year) VALUES (?, ?)`,
		title, yearValue(creationYear),
	)
	if err != nil {
		return nil, fmt.Errorf("creating composition: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting composition id: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityComposition, "added composition: "+title); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing composition: %w", err)
	}

	return GetComposition(ctx, db, id)
}

// GetComposition returns a composition by ID.
func GetComposition(ctx context.Context, db *sql.DB, id int64) (*model.Composition, error) {
	c := &model.Composition{}
	var year sql.NullInt64
	err := db.QueryRowContext(ctx,
		`SELECT composition_id, title, creation_year FROM compositions WHERE composition_id = ?`, id,
	).Scan(&c.ID, &c.Title, &year)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting composition: %w", err)
	}
	if year.Valid {
		y := int(year.Int64)
		c.CreationYear = &y
	}
	return c, nil
}

// ListCompositions returns all compositions ordered by title.
func ListCompositions(ctx context.Context, db *sql.DB) ([]model.Composition, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT composition_id, title, creation_year FROM compositions ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing compositions: %w", err)
	}
	defer rows.Close()

	var compositions []model.Composition
	for rows.Next() {
		var c model.Composition
		var year sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Title, &year); err != nil {
			return nil, fmt.Errorf("scanning composition: %w", err)
		}
		if year.Valid {
			y := int(year.Int64)
			c.CreationYear = &y
		}
		compositions = append(compositions, c)
	}
	return compositions, rows.Err()
}

// UpdateComposition updates a composition's fields.
func UpdateComposition(ctx context.Context, db *sql.DB, actor Actor, id int64, title string, creationYear *int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("composition title is required")
	}
	if err := validateYear(creationYear); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE compositions SET title = ?, creation_year = ? WHERE composition_id = ?`,
		title, yearValue(creationYear), id,
	)
	if err != nil {
		return fmt.Errorf("updating composition: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating composition %d: %w", id, ErrNotFound)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityComposition, "edited composition: "+title); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing composition update: %w", err)
	}
	return nil
}

// DeleteComposition removes a composition; its performances and track
// listings cascade away.
func DeleteComposition(ctx context.Context, db *sql.DB, actor Actor, id int64) error {
	composition, err := GetComposition(ctx, db, id)
	if err != nil {
		return err
	}
	if composition == nil {
		return fmt.Errorf("deleting composition %d: %w", id, ErrNotFound)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM compositions WHERE composition_id = ?`, id); err != nil {
		return fmt.Errorf("deleting composition: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityComposition, "deleted composition: "+composition.Title); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing composition deletion: %w", err)
	}
	return nil
}

func validateYear(year *int) error {
	if year != nil && (*year < 1000 || *year > 9999) {
		return fmt.Errorf("creation year must be a 4-digit year")
	}
	return nil
}

// yearValue converts an optional year to its SQL value (NULL when unset).
func yearValue(year *int) any {
	if year == nil {
		return nil
	}
	return *year
}
