/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"coffee-fund-bot/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AppendEntry writes one ledger entry. The insert is a single statement,
// so an append either lands completely or not at all.
func (s *Service) AppendEntry(ctx context.Context, entry models.LedgerEntry) error {
	if entry.Id == "" {
		entry.Id = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, queryInsertTransaction,
		entry.Id, entry.UserId, int64(entry.Amount), entry.ProductName, entry.CreatedAt)
	if err != nil {
		zap.L().Error("Failed to append ledger entry",
			zap.String("user_id", entry.UserId),
			zap.Int64("amount", int64(entry.Amount)),
			zap.Error(err))
		return fmt.Errorf("unable to append ledger entry: %w", err)
	}

	zap.L().Debug("Ledger entry appended",
		zap.String("id", entry.Id),
		zap.String("user_id", entry.UserId),
		zap.Int64("amount", int64(entry.Amount)))
	return nil
}

// AggregateBalances sums every user's entries. Users without entries show
// up with a zero balance; rows come back in user insertion order.
func (s *Service) AggregateBalances(ctx context.Context) ([]models.Balance, error) {
	rows, err := s.db.QueryContext(ctx, queryAggregateBalances)
	if err != nil {
		zap.L().Error("Failed to aggregate balances", zap.Error(err))
		return nil, fmt.Errorf("unable to aggregate balances: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var balances []models.Balance
	for rows.Next() {
		var balance models.Balance
		var amount int64
		if err := rows.Scan(&balance.UserId, &balance.Name, &amount); err != nil {
			zap.L().Error("Failed to scan balance row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan balance row: %w", err)
		}
		balance.Amount = models.Rappen(amount)

		balances = append(balances, balance)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during balance row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}

	return balances, nil
}
