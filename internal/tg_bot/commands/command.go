package commands

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable
}

// splitFields splits pipe separated arguments and trims every field.
func splitFields(arguments string) []string {
	fields := strings.Split(arguments, "|")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func reply(chatID int64, text string) []tgbotapi.Chattable {
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
