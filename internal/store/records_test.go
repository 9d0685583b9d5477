package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/ploscarna/internal/db"
)

func TestRecordCRUD(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	record, err := CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if record.CurrentYearSales != 0 {
		t.Errorf("new record should start with zero sales, got %d", record.CurrentYearSales)
	}

	if err := UpdateRecord(ctx, database, testActor, record.ID, "Zimske pesmi (2. izdaja)", 9.00, 15.99, 1, 180); err != nil {
		t.Fatalf("UpdateRecord: %v", err)
	}

	updated, err := GetRecord(ctx, database, record.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if updated.Title != "Zimske pesmi (2. izdaja)" || updated.RetailPrice != 15.99 {
		t.Errorf("unexpected record after update: %+v", updated)
	}

	if err := DeleteRecord(ctx, database, testActor, record.ID); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	gone, err := GetRecord(ctx, database, record.ID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if gone != nil {
		t.Error("expected record to be deleted")
	}
}

func TestCreateRecordValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateRecord(ctx, database, testActor, "", 8, 14, 1, 10); err == nil {
		t.Error("expected empty title to fail")
	}
	if _, err := CreateRecord(ctx, database, testActor, "X", -1, 14, 1, 10); err == nil {
		t.Error("expected negative price to fail")
	}
	if _, err := CreateRecord(ctx, database, testActor, "X", 8, 14, 0, 10); err == nil {
		t.Error("expected zero disc count to fail")
	}
}

func TestAddRecordSalesIsAdditive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	record, err := CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}

	if _, err := AddRecordSales(ctx, database, testActor, record.ID, 100); err != nil {
		t.Fatalf("AddRecordSales: %v", err)
	}
	updated, err := AddRecordSales(ctx, database, testActor, record.ID, 50)
	if err != nil {
		t.Fatalf("AddRecordSales: %v", err)
	}
	if updated.CurrentYearSales != 150 {
		t.Errorf("expected 150 sales after 100+50, got %d", updated.CurrentYearSales)
	}
}

func TestAddRecordSalesRejectsNonPositive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	record, _ := CreateRecord(ctx, database, testActor, "Zimske pesmi", 8.50, 14.99, 1, 200)

	if _, err := AddRecordSales(ctx, database, testActor, record.ID, 0); err == nil {
		t.Error("expected zero delta to fail")
	}
	if _, err := AddRecordSales(ctx, database, testActor, record.ID, -10); err == nil {
		t.Error("expected negative delta to fail")
	}

	current, _ := GetRecord(ctx, database, record.ID)
	if current.CurrentYearSales != 0 {
		t.Errorf("sales changed by rejected delta: %d", current.CurrentYearSales)
	}

	_, err := AddRecordSales(ctx, database, testActor, 9999, 5)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing record, got %v", err)
	}
}
