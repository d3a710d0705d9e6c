// Package telegram is the chat transport: it long-polls the Telegram API,
// feeds incoming text messages to the orchestrator and sends the replies
// back to the originating chat.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"coffee-fund-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Handler is the message → responses entry point of the core.
type Handler interface {
	HandleMessage(ctx context.Context, message models.Message) []models.Response
}

type Bot struct {
	api           *tgbotapi.BotAPI
	handler       Handler
	updateTimeout int
}

func NewBot(cfg models.TelegramConfig, handler Handler) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to telegram: %w", err)
	}
	api.Debug = cfg.Debug

	zap.L().Info("Authorized on telegram", zap.String("account", api.Self.UserName))

	return &Bot{
		api:           api,
		handler:       handler,
		updateTimeout: cfg.UpdateTimeout,
	}, nil
}

// Run polls for updates until the context is cancelled. Per-message
// failures are logged and polling continues.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
		return
	}

	message := models.Message{
		Sender: models.Sender{
			Id:   strconv.FormatInt(update.Message.From.ID, 10),
			Name: displayName(update.Message.From),
		},
		Contents: update.Message.Text,
	}

	for _, response := range b.handler.HandleMessage(ctx, message) {
		reply := tgbotapi.NewMessage(update.Message.Chat.ID, response.Contents)
		reply.ParseMode = tgbotapi.ModeMarkdown

		if _, err := b.api.Send(reply); err != nil {
			zap.L().Error("Failed to send reply",
				zap.Int64("chat_id", update.Message.Chat.ID),
				zap.Error(err))
		}
	}
}

// displayName prefers the profile name and falls back to the username.
func displayName(from *tgbotapi.User) string {
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.UserName
	}
	return name
}
