package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/ploscarna/internal/db"
	"github.com/erazemk/ploscarna/internal/model"
)

func TestCreateUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, testActor, "ana@ploscarna.si", "hash", model.RoleUser, "Ana", "Novak", "+386 40 123 456")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "ana@ploscarna.si" || user.Role != model.RoleUser {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.FullName() != "Ana Novak" {
		t.Errorf("unexpected full name: %q", user.FullName())
	}

	found, err := GetUserByEmail(ctx, database, "ana@ploscarna.si")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if found == nil || found.ID != user.ID {
		t.Errorf("expected to find user by email, got %+v", found)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, testActor, "ana@ploscarna.si", "hash", model.RoleUser, "Ana", "Novak", ""); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, testActor, "ana@ploscarna.si", "hash2", model.RoleUser, "Ana", "Kovač", "")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, testActor, "not-an-email", "hash", model.RoleUser, "Ana", "Novak", ""); err == nil {
		t.Error("expected invalid email to fail")
	}
}

func TestUpdateUserPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, testActor, "ana@ploscarna.si", "oldhash", model.RoleUser, "Ana", "Novak", "")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := UpdateUserPassword(ctx, database, testActor, user.ID, "newhash"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	updated, _ := GetUser(ctx, database, user.ID)
	if updated.PasswordHash != "newhash" {
		t.Errorf("expected password hash to change, got %q", updated.PasswordHash)
	}

	err = UpdateUserPassword(ctx, database, testActor, 9999, "hash")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
