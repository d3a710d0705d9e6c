// Package catalog loads the purchasable product catalog from a YAML file
// and swaps it into storage. Prices in the file are decimal Franken
// strings ("1.20"); they are converted exactly to Rappen.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"coffee-fund-bot/internal/models"
	"coffee-fund-bot/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type productEntry struct {
	Identifier string `yaml:"identifier"`
	Name       string `yaml:"name"`
	Price      string `yaml:"price"`
}

type productsFile struct {
	Products []productEntry `yaml:"products"`
}

// LoadProductsFile reads and validates the catalog file.
func LoadProductsFile(productsFile string) ([]models.Product, error) {
	var productsPath string
	if filepath.IsAbs(productsFile) {
		productsPath = productsFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		productsPath = filepath.Join(wd, productsFile)
	}

	data, err := os.ReadFile(productsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", productsFile, err)
	}

	return parseProducts(data, productsFile)
}

func parseProducts(data []byte, source string) ([]models.Product, error) {
	var file productsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", source, err)
	}

	products := make([]models.Product, 0, len(file.Products))
	seen := make(map[string]bool, len(file.Products))
	for i, entry := range file.Products {
		if entry.Identifier == "" {
			return nil, fmt.Errorf("product at index %d missing identifier", i)
		}
		if entry.Name == "" {
			return nil, fmt.Errorf("product %q missing name", entry.Identifier)
		}
		if seen[entry.Identifier] {
			return nil, fmt.Errorf("duplicate product identifier %q", entry.Identifier)
		}
		seen[entry.Identifier] = true

		price, err := parsePrice(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", entry.Identifier, err)
		}

		products = append(products, models.Product{
			Identifier: entry.Identifier,
			Name:       entry.Name,
			Price:      price,
		})
	}

	return products, nil
}

// parsePrice converts a decimal Franken string to Rappen without loss;
// sub-Rappen precision is rejected rather than rounded.
func parsePrice(text string) (models.Rappen, error) {
	if text == "" {
		return 0, fmt.Errorf("missing price")
	}

	price, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", text, err)
	}
	if price.IsNegative() {
		return 0, fmt.Errorf("price %q must not be negative", text)
	}

	rappen := price.Mul(decimal.NewFromInt(100))
	if !rappen.IsInteger() {
		return 0, fmt.Errorf("price %q has sub-Rappen precision", text)
	}

	return models.Rappen(rappen.IntPart()), nil
}

// Refresh replaces the stored catalog with the file contents.
func Refresh(ctx context.Context, catalog store.ProductCatalog, productsFile string) error {
	products, err := LoadProductsFile(productsFile)
	if err != nil {
		return err
	}

	if err := catalog.ReplaceProducts(ctx, products); err != nil {
		return fmt.Errorf("unable to store catalog: %w", err)
	}

	zap.L().Info("Catalog refreshed",
		zap.String("file", productsFile),
		zap.Int("products", len(products)))
	return nil
}
