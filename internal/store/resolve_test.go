package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/ploscarna/internal/db"
)

var testActor = Actor{Email: "test@ploscarna.si", Addr: "127.0.0.1"}

func TestResolveEnsembleIDExactMatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ensemble, err := CreateEnsemble(ctx, database, testActor, "Kvartet A", "jazz", "")
	if err != nil {
		t.Fatalf("CreateEnsemble: %v", err)
	}
	// A second ensemble whose name contains the first as a substring.
	if _, err := CreateEnsemble(ctx, database, testActor, "Kvartet A Plus", "jazz", ""); err != nil {
		t.Fatalf("CreateEnsemble: %v", err)
	}

	// Exact match wins even though a substring match would be ambiguous.
	id, err := ResolveEnsembleID(ctx, database, "Kvartet A")
	if err != nil {
		t.Fatalf("ResolveEnsembleID: %v", err)
	}
	if id != ensemble.ID {
		t.Errorf("expected id %d, got %d", ensemble.ID, id)
	}
}

func TestResolveEnsembleIDSubstringFallback(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ensemble, _ := CreateEnsemble(ctx, database, testActor, "Godalni kvartet Ljubljana", "classical", "")

	// Unique substring resolves.
	id, err := ResolveEnsembleID(ctx, database, "Ljubljana")
	if err != nil {
		t.Fatalf("ResolveEnsembleID: %v", err)
	}
	if id != ensemble.ID {
		t.Errorf("expected id %d, got %d", ensemble.ID, id)
	}

	// Ambiguous substring is an error, not a silent first match.
	CreateEnsemble(ctx, database, testActor, "Pihalni orkester Ljubljana", "brass", "")
	_, err = ResolveEnsembleID(ctx, database, "Ljubljana")
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}

func TestResolveEnsembleIDNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := ResolveEnsembleID(ctx, database, "Neznani ansambel")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = ResolveEnsembleID(ctx, database, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty name, got %v", err)
	}
}

func TestResolveEnsembleIDStripsDecoration(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ensemble, _ := CreateEnsemble(ctx, database, testActor, "Kvartet A", "jazz", "")

	id, err := ResolveEnsembleID(ctx, database, "7: Kvartet A")
	if err != nil {
		t.Fatalf("ResolveEnsembleID: %v", err)
	}
	if id != ensemble.ID {
		t.Errorf("expected id %d, got %d", ensemble.ID, id)
	}
}

func TestResolveMusicianID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ann, err := CreateMusician(ctx, database, testActor, "Ann", "", "Lee", "")
	if err != nil {
		t.Fatalf("CreateMusician: %v", err)
	}
	maria, err := CreateMusician(ctx, database, testActor, "Ana", "Maria", "Novak", "")
	if err != nil {
		t.Fatalf("CreateMusician: %v", err)
	}

	// Exact concatenated display name.
	id, err := ResolveMusicianID(ctx, database, "Ann Lee")
	if err != nil {
		t.Fatalf("ResolveMusicianID: %v", err)
	}
	if id != ann.ID {
		t.Errorf("expected id %d, got %d", ann.ID, id)
	}

	// Middle name is part of the display name.
	id, err = ResolveMusicianID(ctx, database, "Ana Maria Novak")
	if err != nil {
		t.Fatalf("ResolveMusicianID: %v", err)
	}
	if id != maria.ID {
		t.Errorf("expected id %d, got %d", maria.ID, id)
	}

	// Decorated selector entry.
	id, err = ResolveMusicianID(ctx, database, "3: Ann Lee")
	if err != nil {
		t.Fatalf("ResolveMusicianID: %v", err)
	}
	if id != ann.ID {
		t.Errorf("expected id %d, got %d", ann.ID, id)
	}

	// Unknown musician.
	_, err = ResolveMusicianID(ctx, database, "Nobody Here")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveMusicianIDSplitFallback(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Display name with middle name, but the caller only knows first/last.
	musician, err := CreateMusician(ctx, database, testActor, "Janez", "Maria", "Kovač", "")
	if err != nil {
		t.Fatalf("CreateMusician: %v", err)
	}

	// "Janez Kovač" does not match the full display name "Janez Maria
	// Kovač", so the first/last split fallback finds it.
	id, err := ResolveMusicianID(ctx, database, "Janez Kovač")
	if err != nil {
		t.Fatalf("ResolveMusicianID: %v", err)
	}
	if id != musician.ID {
		t.Errorf("expected id %d, got %d", musician.ID, id)
	}
}
