package models

import "time"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig
	Telegram TelegramConfig
	Catalog  CatalogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

// TelegramConfig holds the bot transport settings
type TelegramConfig struct {
	Token         string
	UpdateTimeout int
	Debug         bool
}

// CatalogConfig holds product catalog settings
type CatalogConfig struct {
	ProductsFile string
}
