package store

import (
	"context"

	"coffee-fund-bot/internal/models"
)

// ProductCatalog resolves purchasable products. GetProduct returns nil
// without an error when the identifier is unknown; an error means the
// lookup itself failed.
type ProductCatalog interface {
	GetProduct(ctx context.Context, identifier string) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	ReplaceProducts(ctx context.Context, products []models.Product) error
}

// UserDirectory tracks the display name for every sender identity.
// UpsertUser inserts unseen ids and overwrites the name of known ones,
// last write wins.
type UserDirectory interface {
	UpsertUser(ctx context.Context, id, name string) error
	GetUsers(ctx context.Context) ([]models.User, error)
}

// TransactionLog is the append-only ledger backing balances. A single
// append is atomic; entries are never mutated or deleted.
type TransactionLog interface {
	AppendEntry(ctx context.Context, entry models.LedgerEntry) error
	AggregateBalances(ctx context.Context) ([]models.Balance, error)
}
