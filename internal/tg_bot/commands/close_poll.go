package commands

import (
	"context"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const closePollCommandName = "close_poll"

type closePollCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewClosePollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &closePollCommand{pollService: pollService, logger: logger}
}

func (c *closePollCommand) CanHandle(command string) bool {
	return command == closePollCommandName
}

func (c *closePollCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	pollID, err := tgbot.ParseID(strings.TrimSpace(arguments))
	if err != nil {
		return reply(chatID, "Usage: /close_poll <poll id>")
	}

	info, err := c.pollService.ClosePoll(ctx, pollID)
	if err != nil {
		c.logger.Warnw("failed to close poll", "poll_id", pollID, "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}

	return []tgbotapi.Chattable{pollMessage(chatID, "Poll closed", info)}
}
