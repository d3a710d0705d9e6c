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

package main

import (
	"context"
	"fmt"

	"coffee-fund-bot/internal/common"
	"coffee-fund-bot/internal/config"
	"coffee-fund-bot/internal/currency"
	"coffee-fund-bot/internal/ledger"
	"coffee-fund-bot/internal/models"

	"go.uber.org/zap"
)

func printBalance(balance models.Balance, isLast bool) {
	symbol := common.BoxPrefix(isLast)

	fmt.Printf("%s %-25s %12s   (user %s)\n",
		symbol,
		balance.Name,
		currency.Format(balance.Amount),
		balance.UserId)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	ctx := context.Background()

	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	ledgerService := ledger.NewService(dbService)

	balances, err := ledgerService.GetBalances(ctx)
	if err != nil {
		zap.L().Fatal("Failed to fetch balances", zap.Error(err))
	}

	common.PrintHeader("COFFEE FUND BALANCES", common.DefaultWidth)

	if len(balances) == 0 {
		fmt.Println("No users recorded yet")
	}

	var total models.Rappen
	for i, balance := range balances {
		printBalance(balance, i == len(balances)-1)
		total += balance.Amount
	}

	common.PrintFooter(fmt.Sprintf("Users: %d   Fund total: %s", len(balances), currency.Format(total)), common.DefaultWidth)
}
