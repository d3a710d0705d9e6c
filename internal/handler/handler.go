// Package handler is the message → response pipeline. It is the only
// place where failures turn into user-facing text; everything below it
// returns typed errors.
package handler

import (
	"context"
	"fmt"
	"strings"

	"coffee-fund-bot/internal/currency"
	"coffee-fund-bot/internal/models"
	"coffee-fund-bot/internal/store"

	"go.uber.org/zap"
)

// Router classifies message text into an action.
type Router interface {
	Route(ctx context.Context, text string) (models.Action, error)
}

// Ledger records purchases and amounts and derives balances.
type Ledger interface {
	RecordPurchase(ctx context.Context, product models.Product, userId string) error
	RecordAmount(ctx context.Context, amount models.Rappen, userId string) error
	GetBalances(ctx context.Context) ([]models.Balance, error)
}

type MessageHandler struct {
	router  Router
	users   store.UserDirectory
	catalog store.ProductCatalog
	ledger  Ledger
}

func New(router Router, users store.UserDirectory, catalog store.ProductCatalog, ledger Ledger) *MessageHandler {
	return &MessageHandler{
		router:  router,
		users:   users,
		catalog: catalog,
		ledger:  ledger,
	}
}

// HandleMessage processes one incoming message to completion and returns
// the replies to send. Error detail never reaches the user; internal
// failures collapse to a numbered placeholder.
func (h *MessageHandler) HandleMessage(ctx context.Context, message models.Message) []models.Response {
	action, err := h.router.Route(ctx, message.Contents)
	if err != nil {
		zap.L().Error("Message classification failed", zap.Error(err))
		return internalError(1)
	}
	if action == nil {
		return []models.Response{{Contents: "Invalid input"}}
	}

	switch a := action.(type) {
	case models.CommandAction:
		return h.handleCommand(ctx, a.Command, message.Sender)
	case models.ProductAction:
		return h.recordAndConfirm(ctx, message.Sender,
			func(ctx context.Context) error {
				return h.ledger.RecordPurchase(ctx, a.Product, message.Sender.Id)
			},
			"Recorded "+a.Product.Name)
	case models.AmountAction:
		return h.recordAndConfirm(ctx, message.Sender,
			func(ctx context.Context) error {
				return h.ledger.RecordAmount(ctx, a.Amount, message.Sender.Id)
			},
			"Recorded "+currency.Format(a.Amount))
	}

	zap.L().Error("Unhandled action type")
	return internalError(1)
}

// handleCommand serves queries; commands never touch the user directory
// or the ledger log.
func (h *MessageHandler) handleCommand(ctx context.Context, command models.Command, sender models.Sender) []models.Response {
	switch command {
	case models.ListAvailableItems:
		products, err := h.catalog.GetProducts(ctx)
		if err != nil {
			zap.L().Error("Failed to list products", zap.Error(err))
			return internalError(4)
		}
		return []models.Response{{Contents: formatProducts(products)}}

	case models.GetCurrentStats:
		balances, err := h.ledger.GetBalances(ctx)
		if err != nil {
			zap.L().Error("Failed to fetch balances", zap.Error(err))
			return internalError(5)
		}
		return []models.Response{{Contents: formatBalances(balances, sender)}}
	}

	return internalError(1)
}

// recordAndConfirm runs the two-step write: sender upsert first, ledger
// write second. The steps are not transactional; an append failure leaves
// the updated user record in place (accepted inconsistency window).
func (h *MessageHandler) recordAndConfirm(ctx context.Context, sender models.Sender, record func(context.Context) error, confirmation string) []models.Response {
	if err := h.users.UpsertUser(ctx, sender.Id, sender.Name); err != nil {
		zap.L().Error("Failed to upsert sender", zap.String("user_id", sender.Id), zap.Error(err))
		return internalError(2)
	}

	if err := record(ctx); err != nil {
		zap.L().Error("Failed to record transaction", zap.String("user_id", sender.Id), zap.Error(err))
		return internalError(3)
	}

	responses := []models.Response{{Contents: confirmation}}

	// The balance overview is best effort; the recording already succeeded.
	balances, err := h.ledger.GetBalances(ctx)
	if err != nil {
		zap.L().Warn("Balance overview unavailable", zap.Error(err))
		return responses
	}

	return append(responses, models.Response{Contents: formatBalances(balances, sender)})
}

func formatProducts(products []models.Product) string {
	lines := make([]string, 0, len(products)+1)
	lines = append(lines, "Available products:")
	for _, product := range products {
		lines = append(lines, "/"+product.Identifier+" - "+product.Name+" ("+currency.Format(product.Price)+")")
	}
	return strings.Join(lines, "\n")
}

// formatBalances marks the sender's own line with the bold decoration;
// the match is by user id, never by display name.
func formatBalances(balances []models.Balance, sender models.Sender) string {
	lines := make([]string, 0, len(balances)+1)
	lines = append(lines, "Current stats:")
	for _, balance := range balances {
		line := "- " + balance.Name + " (" + currency.Format(balance.Amount) + ")"
		if balance.UserId == sender.Id {
			line = "**" + line + "**"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func internalError(code int) []models.Response {
	return []models.Response{{Contents: fmt.Sprintf("Internal error (%d)", code)}}
}
