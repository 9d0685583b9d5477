package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/erazemk/ploscarna/internal/display"
)

// Resolution failures. Callers must abort any dependent write when either
// is returned; partial relation rewrites are not allowed.
var (
	ErrNotFound  = errors.New("no matching entity")
	ErrAmbiguous = errors.New("name matches multiple entities")
)

// ResolveEnsembleID resolves an ensemble display name to its identifier.
func ResolveEnsembleID(ctx context.Context, db *sql.DB, name string) (int64, error) {
	return resolveID(ctx, db, "ensembles", "ensemble_id", "name", name)
}

// ResolveCompositionID resolves a composition title to its identifier.
func ResolveCompositionID(ctx context.Context, db *sql.DB, title string) (int64, error) {
	return resolveID(ctx, db, "compositions", "composition_id", "title", title)
}

// ResolveRecordID resolves a record title to its identifier.
func ResolveRecordID(ctx context.Context, db *sql.DB, title string) (int64, error) {
	return resolveID(ctx, db, "records", "record_id", "title", title)
}

// resolveID looks up an id by display value: exact match first, then a
// substring match that only succeeds when it is unambiguous. The substring
// fallback tolerates minor display-string drift (stray whitespace, partial
// titles) without ever silently picking among multiple candidates.
// Table and column names are fixed by the callers above, never user input.
func resolveID(ctx context.Context, db *sql.DB, table, idColumn, nameColumn, value string) (int64, error) {
	value = display.ExtractName(value)
	if value == "" {
		return 0, fmt.Errorf("resolving %s: empty name: %w", table, ErrNotFound)
	}

	var id int64
	err := db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`, idColumn, table, nameColumn),
		value,
	).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("resolving %s %q: %w", table, value, err)
	}

	ids, err := collectIDs(ctx, db,
		fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIKE ?`, idColumn, table, nameColumn),
		"%"+value+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("resolving %s %q: %w", table, value, err)
	}

	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("resolving %s %q: %w", table, value, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("resolving %s %q: %w", table, value, ErrAmbiguous)
	}
}

// ResolveMusicianID resolves a musician display name ("First Last" or
// "First Middle Last", possibly "ID: Name" decorated) to an identifier.
// Tries an exact match on the concatenated display name first, then falls
// back to matching first and last name around the first space.
func ResolveMusicianID(ctx context.Context, db *sql.DB, displayName string) (int64, error) {
	name := display.ExtractName(displayName)
	if name == "" {
		return 0, fmt.Errorf("resolving musician: empty name: %w", ErrNotFound)
	}

	ids, err := collectIDs(ctx, db,
		`SELECT musician_id FROM musicians
		 WHERE first_name || ' ' ||
		       CASE WHEN middle_name <> '' THEN middle_name || ' ' ELSE '' END ||
		       last_name = ?`,
		name,
	)
	if err != nil {
		return 0, fmt.Errorf("resolving musician %q: %w", name, err)
	}

	if len(ids) == 0 {
		first, last, ok := strings.Cut(name, " ")
		if ok {
			ids, err = collectIDs(ctx, db,
				`SELECT musician_id FROM musicians WHERE first_name = ? AND last_name = ?`,
				first, last,
			)
			if err != nil {
				return 0, fmt.Errorf("resolving musician %q: %w", name, err)
			}
		}
	}

	switch len(ids) {
	case 0:
		return 0, fmt.Errorf("resolving musician %q: %w", name, ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return 0, fmt.Errorf("resolving musician %q: %w", name, ErrAmbiguous)
	}
}

func collectIDs(ctx context.Context, db *sql.DB, query string, args ...any) ([]int64, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
