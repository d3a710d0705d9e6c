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
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffee-fund-bot/internal/catalog"
	"coffee-fund-bot/internal/common"
	"coffee-fund-bot/internal/config"
	"coffee-fund-bot/internal/telegram"

	"go.uber.org/zap"
)

func main() {
	productsFile := flag.String("products", "", "Optional path to products.yaml to load into the catalog at startup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	zap.L().Info("Starting coffee fund bot")

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	if *productsFile != "" {
		if err := catalog.Refresh(ctx, services.DbService, *productsFile); err != nil {
			zap.L().Fatal("Failed to load product catalog", zap.Error(err))
		}
	}

	bot, err := telegram.NewBot(cfg.Telegram, services.Handler)
	if err != nil {
		zap.L().Fatal("Failed to start telegram bot", zap.Error(err))
	}

	done := make(chan error, 1)
	go func() {
		done <- bot.Run(ctx)
	}()

	zap.L().Info("Bot running")
	zap.L().Info("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zap.L().Info("Shutdown signal received, stopping bot...")
	cancel()

	select {
	case err := <-done:
		if err != nil {
			zap.L().Error("Bot stopped with error", zap.Error(err))
		} else {
			zap.L().Info("Bot stopped gracefully")
		}
	case <-time.After(30 * time.Second):
		zap.L().Warn("Forced shutdown after timeout")
	}
}
