package commands

import (
	"context"
	"post_polls/internal/db/models"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	newPollCommandName      = "new_poll"
	newMultiPollCommandName = "new_multi_poll"
)

type newPollCommand struct {
	name        string
	multi       bool
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewNewPollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &newPollCommand{name: newPollCommandName, pollService: pollService, logger: logger}
}

func NewNewMultiPollCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &newPollCommand{name: newMultiPollCommandName, multi: true, pollService: pollService, logger: logger}
}

func (c *newPollCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *newPollCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	fields := splitFields(arguments)
	if len(fields) < 3 {
		return reply(chatID, "Usage: /"+c.name+" <post id> | <title> | <option> | <option>...")
	}

	postID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || postID <= 0 {
		return reply(chatID, "Post id must be a positive number")
	}

	poll, err := c.pollService.MakePoll(ctx, services.CreatePollRequest{
		UserID:  user.ID,
		Target:  models.Target{Model: models.TargetModelPost, Item: postID},
		Title:   fields[1],
		Options: fields[2:],
		Multi:   c.multi,
	})
	if err != nil {
		c.logger.Warnw("failed to create poll", "user_id", user.ID, "post_id", postID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}

	info := services.Aggregate([]*models.Poll{poll}, poll.Options, user.ID)[0]
	return []tgbotapi.Chattable{pollMessage(chatID, "Poll created", info)}
}
