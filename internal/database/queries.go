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

const (
	// User queries
	queryUpsertUser = `
		INSERT INTO users (id, name) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, updated_at = CURRENT_TIMESTAMP`

	queryGetUsers = `
		SELECT id, name, created_at, updated_at
		FROM users
		ORDER BY rowid`

	// Product queries
	queryGetProduct = `
		SELECT identifier, name, price
		FROM products
		WHERE identifier = ?`

	queryGetProducts = `
		SELECT identifier, name, price
		FROM products
		ORDER BY identifier`

	queryDeleteProducts = `
		DELETE FROM products`

	queryInsertProduct = `
		INSERT INTO products (identifier, name, price) VALUES (?, ?, ?)`

	// Transaction queries
	queryInsertTransaction = `
		INSERT INTO transactions (id, user_id, amount, product_name, created_at)
		VALUES (?, ?, ?, NULLIF(?, ''), ?)`

	// One balance row per user that has ever appeared, in insertion order
	// (rowid); users without entries sum to zero.
	queryAggregateBalances = `
		SELECT u.id, u.name, COALESCE(SUM(t.amount), 0) AS amount
		FROM users u
		LEFT JOIN transactions t ON t.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.rowid`
)
