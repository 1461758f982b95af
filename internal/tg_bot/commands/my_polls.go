package commands

import (
	"context"
	"fmt"
	"post_polls/internal"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const myPollsCommandName = "my_polls"

type myPollsCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewMyPollsCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &myPollsCommand{pollService: pollService, logger: logger}
}

func (c *myPollsCommand) CanHandle(command string) bool {
	return command == myPollsCommandName
}

func (c *myPollsCommand) Handle(ctx context.Context, _ string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	polls, err := c.pollService.GetUserPolls(ctx, user.ID)
	if err != nil {
		c.logger.Errorw("failed to get user polls", "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(polls) == 0 {
		return reply(chatID, "You have no polls yet")
	}

	var b strings.Builder
	for _, poll := range polls {
		status := "open"
		if !poll.Available {
			status = "closed"
		}

		fmt.Fprintf(&b, "%s (%s %d, %s, created %s)\n", poll.Title, poll.TargetModel, poll.TargetItem, status, internal.Format(poll.CreatedAt))
		for _, option := range poll.Options {
			retired := ""
			if !option.Enabled {
				retired = " (retired)"
			}
			fmt.Fprintf(&b, "  - %s%s\n", option.Value, retired)
		}
		fmt.Fprintf(&b, "Poll: %s\n\n", poll.ID)
	}

	return reply(chatID, strings.TrimSpace(b.String()))
}
