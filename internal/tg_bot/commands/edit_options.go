package commands

import (
	"context"
	"fmt"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const editOptionsCommandName = "edit_options"

type editOptionsCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewEditOptionsCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &editOptionsCommand{pollService: pollService, logger: logger}
}

func (c *editOptionsCommand) CanHandle(command string) bool {
	return command == editOptionsCommandName
}

func (c *editOptionsCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	fields := splitFields(arguments)
	if len(fields) < 2 {
		return reply(chatID, "Usage: /edit_options <poll id> | <option> | <option>...")
	}

	pollID, err := tgbot.ParseID(fields[0])
	if err != nil {
		return reply(chatID, "Invalid poll id")
	}

	result, err := c.pollService.EditOptions(ctx, pollID, fields[1:])
	if err != nil {
		c.logger.Warnw("failed to edit options", "poll_id", pollID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}

	header := fmt.Sprintf("Options updated: %d kept, %d retired, %d added", result.Retained, result.Disabled, len(result.Created))

	info, err := c.pollService.GetPollInfo(ctx, pollID, user.ID)
	if err != nil {
		c.logger.Warnw("failed to get poll", "poll_id", pollID, "error", err)
		return reply(chatID, header)
	}

	return []tgbotapi.Chattable{pollMessage(chatID, header, info)}
}
