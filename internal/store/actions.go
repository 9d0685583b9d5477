package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/erazemk/ploscarna/internal/model"
)

// Actor identifies who performs a mutation, for the audit log.
type Actor struct {
	Email string
	Addr  string
}

// LogAction appends a standalone audit entry. Used for actions without an
// enclosing mutation (login, logout). Mutating store functions write their
// audit entry inside the mutation's transaction instead, via logActionTx.
func LogAction(ctx context.Context, db *sql.DB, actor Actor, actionType, entityType, details string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO user_actions (user_email, action_type, entity_type, action_details, ip_address)
		 VALUES (?, ?, ?, ?, ?)`,
		actor.Email, actionType, entityType, details, actor.Addr,
	)
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// logActionTx appends an audit entry within an open transaction, so the
// entry commits or rolls back together with the mutation it describes.
func logActionTx(ctx context.Context, tx *sql.Tx, actor Actor, actionType, entityType, details string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO user_actions (user_email, action_type, entity_type, action_details, ip_address)
		 VALUES (?, ?, ?, ?, ?)`,
		actor.Email, actionType, entityType, details, actor.Addr,
	)
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// ActionFilter narrows an audit log listing. Zero values mean "no filter".
type ActionFilter struct {
	ActionType string
	From       time.Time
	To         time.Time
}

// ListActions returns a user's audit entries, newest first, optionally
// filtered by action type and date range.
func ListActions(ctx context.Context, db *sql.DB, email string, filter ActionFilter) ([]model.UserAction, error) {
	builder := sq.Select("id", "user_email", "action_date", "action_type", "entity_type", "action_details", "ip_address").
		From("user_actions").
		Where(sq.Eq{"user_email": email}).
		OrderBy("action_date DESC", "id DESC")

	if filter.ActionType != "" {
		builder = builder.Where(sq.Eq{"action_type": filter.ActionType})
	}
	if !filter.From.IsZero() {
		builder = builder.Where(sq.Expr("date(action_date) >= ?", filter.From.Format("2006-01-02")))
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.Expr("date(action_date) <= ?", filter.To.Format("2006-01-02")))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building actions query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}
	defer rows.Close()

	var actions []model.UserAction
	for rows.Next() {
		var a model.UserAction
		if err := rows.Scan(&a.ID, &a.UserEmail, &a.ActionDate, &a.ActionType, &a.EntityType, &a.Details, &a.IPAddress); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// ClearActions deletes all audit entries for a user and returns the number
// of removed rows.
func ClearActions(ctx context.Context, db *sql.DB, email string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM user_actions WHERE user_email = ?`, email,
	)
	if err != nil {
		return 0, fmt.Errorf("clearing actions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared actions: %w", err)
	}
	return n, nil
}
