package store

import (
	"context"
	"testing"
	"time"

	"github.com/erazemk/ploscarna/internal/db"
	"github.com/erazemk/ploscarna/internal/model"
)

func TestMutationsWriteAuditEntries(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ensemble, err := CreateEnsemble(ctx, database, testActor, "Kvartet A", "string quartet", "")
	if err != nil {
		t.Fatalf("CreateEnsemble: %v", err)
	}
	if err := UpdateEnsemble(ctx, database, testActor, ensemble.ID, "Kvartet B", "string quartet", ""); err != nil {
		t.Fatalf("UpdateEnsemble: %v", err)
	}
	if err := DeleteEnsemble(ctx, database, testActor, ensemble.ID); err != nil {
		t.Fatalf("DeleteEnsemble: %v", err)
	}

	actions, err := ListActions(ctx, database, testActor.Email, ActionFilter{})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(actions))
	}

	// Newest first.
	if actions[0].ActionType != model.ActionDelete || actions[2].ActionType != model.ActionAdd {
		t.Errorf("unexpected order: %s, %s, %s", actions[0].ActionType, actions[1].ActionType, actions[2].ActionType)
	}
	for _, a := range actions {
		if a.UserEmail != testActor.Email {
			t.Errorf("unexpected actor email %q", a.UserEmail)
		}
		if a.IPAddress != testActor.Addr {
			t.Errorf("unexpected actor address %q", a.IPAddress)
		}
		if a.EntityType != model.EntityEnsemble {
			t.Errorf("unexpected entity type %q", a.EntityType)
		}
	}
}

func TestFailedMutationWritesNoAuditEntry(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Update of a missing ensemble rolls back together with its audit row.
	if err := UpdateEnsemble(ctx, database, testActor, 9999, "Fantom", "", ""); err == nil {
		t.Fatal("expected update of missing ensemble to fail")
	}

	if n := countRows(t, database, "user_actions"); n != 0 {
		t.Errorf("expected no audit entries after failed mutation, got %d", n)
	}
}

func TestListActionsFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	ensemble, _ := CreateEnsemble(ctx, database, testActor, "Kvartet A", "string quartet", "")
	UpdateEnsemble(ctx, database, testActor, ensemble.ID, "Kvartet B", "string quartet", "")

	edits, err := ListActions(ctx, database, testActor.Email, ActionFilter{ActionType: model.ActionEdit})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(edits) != 1 || edits[0].ActionType != model.ActionEdit {
		t.Errorf("unexpected filtered actions: %+v", edits)
	}

	// Today's entries fall inside a range that includes today.
	today := time.Now()
	inRange, err := ListActions(ctx, database, testActor.Email, ActionFilter{From: today, To: today})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(inRange) != 2 {
		t.Errorf("expected 2 actions in today's range, got %d", len(inRange))
	}

	// A range in the past excludes them.
	past := today.AddDate(-1, 0, 0)
	outOfRange, err := ListActions(ctx, database, testActor.Email, ActionFilter{From: past, To: past})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(outOfRange) != 0 {
		t.Errorf("expected no actions in last year's range, got %d", len(outOfRange))
	}

	// Other users' entries are invisible.
	other, err := ListActions(ctx, database, "someone@else.si", ActionFilter{})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no actions for other user, got %d", len(other))
	}
}

func TestClearActions(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateEnsemble(ctx, database, testActor, "Kvartet A", "string quartet", "")
	if err := LogAction(ctx, database, testActor, model.ActionLogin, "", ""); err != nil {
		t.Fatalf("LogAction: %v", err)
	}

	n, err := ClearActions(ctx, database, testActor.Email)
	if err != nil {
		t.Fatalf("ClearActions: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 cleared entries, got %d", n)
	}

	actions, _ := ListActions(ctx, database, testActor.Email, ActionFilter{})
	if len(actions) != 0 {
		t.Errorf("expected empty log after clear, got %d entries", len(actions))
	}
}
