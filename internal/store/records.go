package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/ploscarna/internal/model"
)

// CreateRecord creates a new record (pressing/release).
func CreateRecord(ctx context.Context, db *sql.DB, actor Actor, title string, wholesalePrice, retailPrice float64, discCount, remainingStock int) (*model.Record, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("record title is required")
	}
	if wholesalePrice < 0 || retailPrice < 0 {
		return nil, fmt.Errorf("prices must be non-negative")
	}
	if discCount < 1 {
		return nil, fmt.Errorf("disc count must be positive")
	}
	if remainingStock < 0 {
		return nil, fmt.Errorf("stock must be non-negative")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO records (title, wholesale_price, retail_price, disc_count, remaining_stock)
		 VALUES (?, ?, ?, ?, ?)`,
		title, wholesalePrice, retailPrice, discCount, remainingStock,
	)
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting record id: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityRecord, "added record: "+title); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing record: %w", err)
	}

	return GetRecord(ctx, db, id)
}

// GetRecord returns a record by ID.
func GetRecord(ctx context.Context, db *sql.DB, id int64) (*model.Record, error) {
	r := &model.Record{}
	err := db.QueryRowContext(ctx,
		`SELECT record_id, title, wholesale_price, retail_price, disc_count, current_year_sales, remaining_stock
		 FROM records WHERE record_id = ?`, id,
	).Scan(&r.ID, &r.Title, &r.WholesalePrice, &r.RetailPrice, &r.DiscCount, &r.CurrentYearSales, &r.RemainingStock)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}
	return r, nil
}

// ListRecords returns all records ordered by title.
func ListRecords(ctx context.Context, db *sql.DB) ([]model.Record, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT record_id, title, wholesale_price, retail_price, disc_count, current_year_sales, remaining_stock
		 FROM records ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.ID, &r.Title, &r.WholesalePrice, &r.RetailPrice, &r.DiscCount, &r.CurrentYearSales, &r.RemainingStock); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdateRecord updates a record's catalog fields. Sales are changed only
// through AddRecordSales.
func UpdateRecord(ctx context.Context, db *sql.DB, actor Actor, id int64, title string, wholesalePrice, retailPrice float64, discCount, remainingStock int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("record title is required")
	}
	if wholesalePrice < 0 || retailPrice < 0 {
		return fmt.Errorf("prices must be non-negative")
	}
	if discCount < 1 {
		return fmt.Errorf("disc count must be positive")
	}
	if remainingStock < 0 {
		return fmt.Errorf("stock must be non-negative")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE records SET title = ?, wholesale_price = ?, retail_price = ?, disc_count = ?, remaining_stock = ?
		 WHERE record_id = ?`,
		title, wholesalePrice, retailPrice, discCount, remainingStock, id,
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating record %d: %w", id, ErrNotFound)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityRecord, "edited record: "+title); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record update: %w", err)
	}
	return nil
}

// AddRecordSales adds to a record's current-year sales counter. The
// counter is additive only; delta must be positive.
func AddRecordSales(ctx context.Context, db *sql.DB, actor Actor, id int64, delta int) (*model.Record, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("sales delta must be positive")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var title string
	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT title, current_year_sales FROM records WHERE record_id = ?`, id,
	).Scan(&title, &current)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("updating sales for record %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading record sales: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE records SET current_year_sales = ? WHERE record_id = ?`,
		current+delta, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating record sales: %w", err)
	}

	details := fmt.Sprintf("updated sales for record: %s by +%d", title, delta)
	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityRecord, details); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sales update: %w", err)
	}

	return GetRecord(ctx, db, id)
}

// DeleteRecord removes a record; its track listings cascade away.
func DeleteRecord(ctx context.Context, db *sql.DB, actor Actor, id int64) error {
	record, err := GetRecord(ctx, db, id)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("deleting record %d: %w", id, ErrNotFound)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE record_id = ?`, id); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityRecord, "deleted record: "+record.Title); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record deletion: %w", err)
	}
	return nil
}
