package commands

import (
	"context"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const postPollsCommandName = "post_polls"

type postPollsCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewPostPollsCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &postPollsCommand{pollService: pollService, logger: logger}
}

func (c *postPollsCommand) CanHandle(command string) bool {
	return command == postPollsCommandName
}

func (c *postPollsCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	fields := strings.Fields(arguments)

	postIDs := make([]int64, 0, len(fields))
	for _, field := range fields {
		postID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return reply(chatID, "Usage: /post_polls <post id>...")
		}
		postIDs = append(postIDs, postID)
	}

	polls, err := c.pollService.GetPostPolls(ctx, postIDs, user.ID)
	if err != nil {
		c.logger.Errorw("failed to get post polls", "post_ids", postIDs, "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(polls) == 0 {
		return reply(chatID, "No open polls for these posts")
	}

	posts := make([]int64, 0, len(polls))
	for postID := range polls {
		posts = append(posts, postID)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i] < posts[j] })

	messages := make([]tgbotapi.Chattable, 0, len(posts))
	for _, postID := range posts {
		messages = append(messages, pollMessage(chatID, "", polls[postID]))
	}

	return messages
}
