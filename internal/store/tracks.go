package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/ploscarna/internal/model"
)

// ListTracks returns all record tracks joined with display names, ordered
// by record then track number.
func ListTracks(ctx context.Context, db *sql.DB) ([]model.RecordTrack, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT rt.record_id, rt.composition_id, rt.track_number,
		        r.title AS record_title, c.title AS composition_title
		 FROM record_tracks rt
		 JOIN records r ON r.record_id = rt.record_id
		 JOIN compositions c ON c.composition_id = rt.composition_id
		 ORDER BY r.title, rt.track_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}
	defer rows.Close()

	var tracks []model.RecordTrack
	for rows.Next() {
		var t model.RecordTrack
		if err := rows.Scan(&t.RecordID, &t.CompositionID, &t.TrackNumber, &t.RecordTitle, &t.CompositionTitle); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// AddTrack places a composition on a record at a track position, both
// given by display name. A composition can appear at most once per record.
func AddTrack(ctx context.Context, db *sql.DB, actor Actor, recordTitle, compositionTitle string, trackNumber int) error {
	if trackNumber < 1 || trackNumber > 100 {
		return fmt.Errorf("track number must be between 1 and 100")
	}

	recordID, err := ResolveRecordID(ctx, db, recordTitle)
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
		`INSERT INTO record_tracks (record_id, composition_id, track_number) VALUES (?, ?, ?)`,
		recordID, compositionID, trackNumber,
	)
	if err != nil {
		return fmt.Errorf("adding track: %w", err)
	}

	details := fmt.Sprintf("added track %d (%s) to record %s", trackNumber, compositionTitle, recordTitle)
	if err := logActionTx(ctx, tx, actor, model.ActionAdd, model.EntityTrack, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing track: %w", err)
	}
	return nil
}

// UpdateTrack rewrites a track listing identified by its old display
// names. All names must resolve before anything is written.
func UpdateTrack(ctx context.Context, db *sql.DB, actor Actor, oldRecordTitle, oldCompositionTitle, newRecordTitle, newCompositionTitle string, trackNumber int) error {
	if trackNumber < 1 || trackNumber > 100 {
		return fmt.Errorf("track number must be between 1 and 100")
	}

	oldRecordID, err := ResolveRecordID(ctx, db, oldRecordTitle)
	if err != nil {
		return err
	}
	oldCompositionID, err := ResolveCompositionID(ctx, db, oldCompositionTitle)
	if err != nil {
		return err
	}
	newRecordID, err := ResolveRecordID(ctx, db, newRecordTitle)
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
		`UPDATE record_tracks SET record_id = ?, composition_id = ?, track_number = ?
		 WHERE record_id = ? AND composition_id = ?`,
		newRecordID, newCompositionID, trackNumber, oldRecordID, oldCompositionID,
	)
	if err != nil {
		return fmt.Errorf("updating track: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("updating track: %w", ErrNotFound)
	}

	details := fmt.Sprintf("edited track %d (%s) on record %s", trackNumber, newCompositionTitle, newRecordTitle)
	if err := logActionTx(ctx, tx, actor, model.ActionEdit, model.EntityTrack, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing track update: %w", err)
	}
	return nil
}

// DeleteTrack removes a track listing identified by display names.
func DeleteTrack(ctx context.Context, db *sql.DB, actor Actor, recordTitle, compositionTitle string) error {
	recordID, err := ResolveRecordID(ctx, db, recordTitle)
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
		`DELETE FROM record_tracks WHERE record_id = ? AND composition_id = ?`,
		recordID, compositionID,
	)
	if err != nil {
		return fmt.Errorf("deleting track: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("deleting track: %w", ErrNotFound)
	}

	details := fmt.Sprintf("removed track %s from record %s", compositionTitle, recordTitle)
	if err := logActionTx(ctx, tx, actor, model.ActionDelete, model.EntityTrack, details); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing track deletion: %w", err)
	}
	return nil
}
