package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/ploscarna/internal/db"
)

func TestAddTrackByTitle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	CreateComposition(ctx, database, testActor, "Nokturno", nil)

	if err := AddTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	tracks, err := ListTracks(ctx, database)
	if err != nil {
		t.Fatalf("ListTracks: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(tracks))
	}
	track := tracks[0]
	if track.RecordTitle != "Zimske pesmi" || track.CompositionTitle != "Nokturno" || track.TrackNumber != 1 {
		t.Errorf("unexpected track: %+v", track)
	}
}

func TestAddTrackNumberBounds(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	CreateComposition(ctx, database, testActor, "Nokturno", nil)

	if err := AddTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", 0); err == nil {
		t.Error("expected track number 0 to fail")
	}
	if err := AddTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", 101); err == nil {
		t.Error("expected track number 101 to fail")
	}
}

func TestUpdateAndDeleteTrack(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	CreateComposition(ctx, database, testActor, "Nokturno", nil)
	CreateComposition(ctx, database, testActor, "Balada", nil)
	if err := AddTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	if err := UpdateTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", "Zimske pesmi", "Balada", 2); err != nil {
		t.Fatalf("UpdateTrack: %v", err)
	}
	tracks, _ := ListTracks(ctx, database)
	if len(tracks) != 1 || tracks[0].CompositionTitle != "Balada" || tracks[0].TrackNumber != 2 {
		t.Errorf("unexpected tracks after update: %+v", tracks)
	}

	if err := DeleteTrack(ctx, database, testActor, "Zimske pesmi", "Balada"); err != nil {
		t.Fatalf("DeleteTrack: %v", err)
	}
	err := DeleteTrack(ctx, database, testActor, "Zimske pesmi", "Balada")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRecordCascadesTracks(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	record, _ := CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	CreateComposition(ctx, database, testActor, "Nokturno", nil)
	if err := AddTrack(ctx, database, testActor, "Zimske pesmi", "Nokturno", 1); err != nil {
		t.Fatalf("AddTrack: %v", err)
	}

	if err := DeleteRecord(ctx, database, testActor, record.ID); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	tracks, _ := ListTracks(ctx, database)
	if len(tracks) != 0 {
		t.Errorf("expected tracks to cascade, got %d", len(tracks))
	}
}

func TestPerformanceLifecycle(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateEnsemble(ctx, database, testActor, "Kvartet A", "string quartet", "")
	CreateComposition(ctx, database, testActor, "Nokturno", nil)

	if err := AddPerformance(ctx, database, testActor, "Kvartet A", "Nokturno", "original"); err != nil {
		t.Fatalf("AddPerformance: %v", err)
	}
	performances, err := ListPerformances(ctx, database)
	if err != nil {
		t.Fatalf("ListPerformances: %v", err)
	}
	if len(performances) != 1 || performances[0].Arrangement != "original" {
		t.Fatalf("unexpected performances: %+v", performances)
	}

	if err := UpdatePerformance(ctx, database, testActor, "Kvartet A", "Nokturno", "Kvartet A", "Nokturno", "jazz arrangement"); err != nil {
		t.Fatalf("UpdatePerformance: %v", err)
	}
	performances, _ = ListPerformances(ctx, database)
	if performances[0].Arrangement != "jazz arrangement" {
		t.Errorf("unexpected arrangement: %q", performances[0].Arrangement)
	}

	if err := DeletePerformance(ctx, database, testActor, "Kvartet A", "Nokturno"); err != nil {
		t.Fatalf("DeletePerformance: %v", err)
	}
	performances, _ = ListPerformances(ctx, database)
	if len(performances) != 0 {
		t.Errorf("expected no performances, got %d", len(performances))
	}
}
