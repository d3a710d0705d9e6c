package telegram

import (
	"context"
	"testing"

	"coffee-fund-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type recordingHandler struct {
	messages []models.Message
}

func (r *recordingHandler) HandleMessage(_ context.Context, message models.Message) []models.Response {
	r.messages = append(r.messages, message)
	return nil
}

func TestHandleUpdate_SkipsNonTextUpdates(t *testing.T) {
	handler := &recordingHandler{}
	bot := &Bot{handler: handler}

	bot.handleUpdate(context.Background(), tgbotapi.Update{})
	bot.handleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{}})

	if len(handler.messages) != 0 {
		t.Errorf("Expected no messages to be handled, got %+v", handler.messages)
	}
}

func TestHandleUpdate_ConvertsSender(t *testing.T) {
	handler := &recordingHandler{}
	bot := &Bot{handler: handler}

	bot.handleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "/coffee",
			From: &tgbotapi.User{ID: 4242, FirstName: "Alice", LastName: "Example"},
			Chat: &tgbotapi.Chat{ID: 1},
		},
	})

	if len(handler.messages) != 1 {
		t.Fatalf("Expected 1 handled message, got %d", len(handler.messages))
	}
	message := handler.messages[0]
	if message.Sender.Id != "4242" {
		t.Errorf("Expected sender id 4242, got %q", message.Sender.Id)
	}
	if message.Sender.Name != "Alice Example" {
		t.Errorf("Expected sender name from profile, got %q", message.Sender.Name)
	}
	if message.Contents != "/coffee" {
		t.Errorf("Expected contents to pass through, got %q", message.Contents)
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		from     tgbotapi.User
		expected string
	}{
		{tgbotapi.User{FirstName: "Alice", LastName: "Example"}, "Alice Example"},
		{tgbotapi.User{FirstName: "Alice"}, "Alice"},
		{tgbotapi.User{UserName: "alice42"}, "alice42"},
	}

	for _, tc := range cases {
		if actual := displayName(&tc.from); actual != tc.expected {
			t.Errorf("displayName(%+v) = %q, expected %q", tc.from, actual, tc.expected)
		}
	}
}
