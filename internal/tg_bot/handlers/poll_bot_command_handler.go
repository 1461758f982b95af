package handlers

import (
	"context"
	"post_polls/internal/tg_bot/commands"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type pollBotCommandHandler struct {
	logger *zap.SugaredLogger

	commands []commands.Command
}

func NewPollBotCommandHandler(logger *zap.SugaredLogger, commands []commands.Command) CommandHandler {
	return &pollBotCommandHandler{
		logger:   logger,
		commands: commands,
	}
}

func (h *pollBotCommandHandler) Handle(update tgbotapi.Update) []tgbotapi.Chattable {
	ctx := context.Background()

	message := update.Message
	callbackQuery := update.CallbackQuery

	if message != nil {
		if message.From == nil || !message.IsCommand() {
			h.logger.Debugw("skipping message", "chat_id", message.Chat.ID)
			return []tgbotapi.Chattable{}
		}

		h.logger.Infow("received command", "command", message.Command(), "user_id", message.From.ID)
		return h.tryToHandleCommand(ctx, message.Command(), message.CommandArguments(), message.From, message.Chat.ID)
	}

	if callbackQuery != nil {
		answer := tgbotapi.NewCallback(callbackQuery.ID, "")
		if callbackQuery.Message == nil {
			return []tgbotapi.Chattable{answer}
		}

		h.logger.Infow("received callback query", "data", callbackQuery.Data, "user_id", callbackQuery.From.ID)
		command, arguments, _ := strings.Cut(callbackQuery.Data, ":")
		responses := h.tryToHandleCommand(ctx, command, arguments, callbackQuery.From, callbackQuery.Message.Chat.ID)
		return append([]tgbotapi.Chattable{answer}, responses...)
	}

	h.logger.Warn("received unknown update")
	return []tgbotapi.Chattable{}
}

func (h *pollBotCommandHandler) tryToHandleCommand(ctx context.Context, command, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(ctx, arguments, user, chatID)
		}
	}

	h.logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Unknown command, see /help")}
}
