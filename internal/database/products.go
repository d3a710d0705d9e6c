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
	"errors"
	"fmt"

	"coffee-fund-bot/internal/models"

	"go.uber.org/zap"
)

// GetProduct returns nil when no product carries the identifier.
func (s *Service) GetProduct(ctx context.Context, identifier string) (*models.Product, error) {
	var product models.Product
	err := s.db.QueryRowContext(ctx, queryGetProduct, identifier).Scan(
		&product.Identifier, &product.Name, &product.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("Failed to query product", zap.String("identifier", identifier), zap.Error(err))
		return nil, fmt.Errorf("unable to query product: %w", err)
	}

	return &product, nil
}

func (s *Service) GetProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, queryGetProducts)
	if err != nil {
		zap.L().Error("Failed to query products", zap.Error(err))
		return nil, fmt.Errorf("unable to query products: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var products []models.Product
	for rows.Next() {
		var product models.Product
		if err := rows.Scan(&product.Identifier, &product.Name, &product.Price); err != nil {
			zap.L().Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan product row: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during product row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// ReplaceProducts swaps the whole catalog in one transaction so readers
// never observe a half-loaded catalog.
func (s *Service) ReplaceProducts(ctx context.Context, products []models.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin catalog transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Warn("Failed to roll back catalog transaction", zap.Error(err))
		}
	}()

	if _, err := tx.ExecContext(ctx, queryDeleteProducts); err != nil {
		return fmt.Errorf("unable to clear catalog: %w", err)
	}

	for _, product := range products {
		if _, err := tx.ExecContext(ctx, queryInsertProduct,
			product.Identifier, product.Name, int64(product.Price)); err != nil {
			return fmt.Errorf("unable to insert product %q: %w", product.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to commit catalog transaction: %w", err)
	}

	zap.L().Info("Catalog replaced", zap.Int("count", len(products)))
	return nil
}
