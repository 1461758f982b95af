package commands

import (
	"context"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pollCommandName = "poll"

type pollCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewPollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &pollCommand{pollService: pollService, logger: logger}
}

func (c *pollCommand) CanHandle(command string) bool {
	return command == pollCommandName
}

func (c *pollCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	pollID, err := tgbot.ParseID(strings.TrimSpace(arguments))
	if err != nil {
		return reply(chatID, "Usage: /poll <poll id>")
	}

	info, err := c.pollService.GetPollInfo(ctx, pollID, user.ID)
	if err != nil {
		c.logger.Warnw("failed to get poll", "poll_id", pollID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}

	return []tgbotapi.Chattable{pollMessage(chatID, "", info)}
}
