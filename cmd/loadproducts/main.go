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
	"flag"

	"coffee-fund-bot/internal/catalog"
	"coffee-fund-bot/internal/common"
	"coffee-fund-bot/internal/config"

	"go.uber.org/zap"
)

func main() {
	productsFile := flag.String("products", "", "Path to products.yaml (default: PRODUCTS_FILE from the environment)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	ctx := context.Background()

	file := *productsFile
	if file == "" {
		file = cfg.Catalog.ProductsFile
	}

	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	if err := catalog.Refresh(ctx, dbService, file); err != nil {
		zap.L().Fatal("Failed to refresh catalog", zap.Error(err))
	}
}
