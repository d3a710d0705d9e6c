// Package router classifies incoming message text into an action. The
// precedence is fixed: exact commands first, then catalog products (with
// at most one leading slash stripped), then free-form amounts.
package router

import (
	"context"
	"fmt"
	"strings"

	"coffee-fund-bot/internal/currency"
	"coffee-fund-bot/internal/models"
	"coffee-fund-bot/internal/store"
)

type Router struct {
	catalog store.ProductCatalog
}

func New(catalog store.ProductCatalog) *Router {
	return &Router{catalog: catalog}
}

// Route returns the action for the text, or nil when nothing matches.
// Only a failing catalog lookup is an error; a text that parses as
// neither command, product nor amount is a normal nil result.
func (r *Router) Route(ctx context.Context, text string) (models.Action, error) {
	switch text {
	case "/list":
		return models.CommandAction{Command: models.ListAvailableItems}, nil
	case "/stats":
		return models.CommandAction{Command: models.GetCurrentStats}, nil
	}

	identifier := strings.TrimPrefix(text, "/")
	product, err := r.catalog.GetProduct(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}
	if product != nil {
		return models.ProductAction{Product: *product}, nil
	}

	// The amount is parsed from the original text, slash included, so a
	// stray "/1.20" stays unrecognized.
	if amount, err := currency.Parse(text); err == nil {
		return models.AmountAction{Amount: amount}, nil
	}

	return nil, nil
}
