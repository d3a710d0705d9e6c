package database

import (
	"context"
	"testing"

	"coffee-fund-bot/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

func TestAppendEntry_AndAggregate(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.UpsertUser(ctx, "user1", "Alice"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	entries := []models.LedgerEntry{
		{UserId: "user1", Amount: -120, ProductName: "Coffee"},
		{UserId: "user1", Amount: 500},
		{UserId: "user1", Amount: -60, ProductName: "Espresso"},
	}
	for _, entry := range entries {
		if err := service.AppendEntry(ctx, entry); err != nil {
			t.Fatalf("AppendEntry failed: %v", err)
		}
	}

	balances, err := service.AggregateBalances(ctx)
	if err != nil {
		t.Fatalf("AggregateBalances failed: %v", err)
	}
	if len(balances) != 1 {
		t.Fatalf("Expected 1 balance row, got %d", len(balances))
	}
	if balances[0].UserId != "user1" || balances[0].Name != "Alice" {
		t.Errorf("Unexpected balance row: %+v", balances[0])
	}
	if balances[0].Amount != 320 {
		t.Errorf("Expected balance 320, got %d", balances[0].Amount)
	}
}

func TestAggregateBalances_UserWithoutEntries(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.UpsertUser(ctx, "user1", "Alice"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	if err := service.UpsertUser(ctx, "user2", "Bob"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	if err := service.AppendEntry(ctx, models.LedgerEntry{UserId: "user2", Amount: -75}); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	balances, err := service.AggregateBalances(ctx)
	if err != nil {
		t.Fatalf("AggregateBalances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("Expected 2 balance rows, got %d", len(balances))
	}
	if balances[0].UserId != "user1" || balances[0].Amount != 0 {
		t.Errorf("Expected user1 with zero balance, got %+v", balances[0])
	}
	if balances[1].UserId != "user2" || balances[1].Amount != -75 {
		t.Errorf("Expected user2 with balance -75, got %+v", balances[1])
	}
}

func TestAggregateBalances_RepeatedReadsIdentical(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.UpsertUser(ctx, "user1", "Alice"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	if err := service.AppendEntry(ctx, models.LedgerEntry{UserId: "user1", Amount: 250}); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	first, err := service.AggregateBalances(ctx)
	if err != nil {
		t.Fatalf("First AggregateBalances failed: %v", err)
	}
	second, err := service.AggregateBalances(ctx)
	if err != nil {
		t.Fatalf("Second AggregateBalances failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Reads differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAppendEntry_GeneratesIdAndTimestamp(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.UpsertUser(ctx, "user1", "Alice"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	if err := service.AppendEntry(ctx, models.LedgerEntry{UserId: "user1", Amount: -60, ProductName: "Coffee"}); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	var id, productName string
	var amount int64
	err := service.db.QueryRowContext(ctx,
		"SELECT id, amount, product_name FROM transactions").Scan(&id, &amount, &productName)
	if err != nil {
		t.Fatalf("Failed to read back entry: %v", err)
	}
	if id == "" {
		t.Error("Expected a generated entry id")
	}
	if amount != -60 || productName != "Coffee" {
		t.Errorf("Unexpected stored entry: amount=%d product=%q", amount, productName)
	}
}

func TestAppendEntry_EmptyProductNameStoredAsNull(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.UpsertUser(ctx, "user1", "Alice"); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}
	if err := service.AppendEntry(ctx, models.LedgerEntry{UserId: "user1", Amount: 100}); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}

	var count int
	err := service.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE product_name IS NULL").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 entry with NULL product_name, got %d", count)
	}
}
