package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/ploscarna/internal/model"
)

// CreateMusician creates a new musician.
func CreateMusician(ctx context.Context, db *sql.DB, actor Actor, firstName, middleName, lastName, bio string) (*model.Musician, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("musician first and last name are required")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO musicians (first_name, middle_name, last_name, bio) VALUES (?, ?, ?, ?)`,
		firstName, strings.TrimSpace(middleName), lastName, bio,
	)
	if err != nil {
		return nil, fmt.Errorf("creating musician: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting musician id: %w", err)
	}

	details := "added musician: " + firstName + " " + lastName
	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityMusician, details); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing musician: %w", err)
	}

	return GetMusician(ctx, db, id)
}

// GetMusician returns a musician by ID.
func GetMusician(ctx context.Context, db *sql.DB, id int64) (*model.Musician, error) {
	m := &model.Musician{}
	err := db.QueryRowContext(ctx,
		`SELECT musician_id, first_name, middle_name, last_name, bio FROM musicians WHERE musician_id = ?`, id,
	).Scan(&m.ID, &m.FirstName, &m.MiddleName, &m.LastName, &m.Bio)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting musician: %w", err)
	}
	return m, nil
}

// ListMusicians returns all musicians ordered by last then first name.
func ListMusicians(ctx context.Context, db *sql.DB) ([]model.Musician, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT musician_id, first_name, middle_name, last_name, bio
		 FROM musicians ORDER BY last_name, first_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing musicians: %w", err)
	}
	defer rows.Close()

	var musicians []model.Musician
	for rows.Next() {
		var m model.Musician
		if err := rows.Scan(&m.ID, &m.FirstName, &m.MiddleName, &m.LastName, &m.Bio); err != nil {
			return nil, fmt.Errorf("scanning musician: %w", err)
		}
		musicians = append(musicians, m)
	}
	return musicians, rows.Err()
}

// UpdateMusician updates a musician's fields.
func UpdateMusician(ctx context.Context, db *sql.DB, actor Actor, id int64, firstName, middleName, lastName, bio string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return fmt.Errorf("musician first and last name are required")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE musicians SET first_name = ?, middle_name = ?, last_name = ?, bio = ?
		 WHERE musician_id = ?`,
		firstName, strings.TrimSpace(middleName), lastName, bio, id,
	)
	if err != nil {
		return fmt.Errorf("updating musician: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating musician %d: %w", id, ErrNotFound)
	}

	details := "edited musician: " + firstName + " " + lastName
	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityMusician, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing musician update: %w", err)
	}
	return nil
}

// DeleteMusician removes a musician; their memberships cascade away.
func DeleteMusician(ctx context.Context, db *sql.DB, actor Actor, id int64) error {
	musician, err := GetMusician(ctx, db, id)
	if err != nil {
		return err
	}
	if musician == nil {
		return fmt.Errorf("deleting musician %d: %w", id, ErrNotFound)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM musicians WHERE musician_id = ?`, id); err != nil {
		return fmt.Errorf("deleting musician: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityMusician, "deleted musician: "+musician.DisplayName()); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing musician deletion: %w", err)
	}
	return nil
}
