// Package ledger turns classified actions into signed ledger entries and
// derives per-user balances from the transaction log.
package ledger

import (
	"context"
	"fmt"

	"coffee-fund-bot/internal/models"
	"coffee-fund-bot/internal/store"

	"go.uber.org/zap"
)

type Service struct {
	log store.TransactionLog
}

func NewService(log store.TransactionLog) *Service {
	return &Service{log: log}
}

// RecordPurchase debits the buyer with the product price. The sign
// inversion is mandatory; purchases always reduce the balance.
func (s *Service) RecordPurchase(ctx context.Context, product models.Product, userId string) error {
	entry := models.LedgerEntry{
		UserId:      userId,
		Amount:      -product.Price,
		ProductName: product.Name,
	}

	if err := s.log.AppendEntry(ctx, entry); err != nil {
		return fmt.Errorf("unable to record purchase: %w", err)
	}

	zap.L().Info("Purchase recorded",
		zap.String("user_id", userId),
		zap.String("product", product.Name),
		zap.Int64("amount", int64(entry.Amount)))
	return nil
}

// RecordAmount books a free-form amount exactly as given; the caller
// controls the sign (negative debits, positive credits).
func (s *Service) RecordAmount(ctx context.Context, amount models.Rappen, userId string) error {
	entry := models.LedgerEntry{
		UserId: userId,
		Amount: amount,
	}

	if err := s.log.AppendEntry(ctx, entry); err != nil {
		return fmt.Errorf("unable to record amount: %w", err)
	}

	zap.L().Info("Amount recorded",
		zap.String("user_id", userId),
		zap.Int64("amount", int64(amount)))
	return nil
}

// GetBalances recomputes every known user's balance from the full log.
// Nothing is cached; the order is the storage order of users.
func (s *Service) GetBalances(ctx context.Context) ([]models.Balance, error) {
	balances, err := s.log.AggregateBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to compute balances: %w", err)
	}
	return balances, nil
}
