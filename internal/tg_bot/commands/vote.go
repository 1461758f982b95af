package commands

import (
	"context"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const voteCommandName = "vote"

type voteCommand struct {
	pollService services.PollService
	logger      *zap.SugaredLogger
}

func NewVoteCommand(pollService services.PollService, logger *zap.SugaredLogger) Command {
	return &voteCommand{pollService: pollService, logger: logger}
}

func (c *voteCommand) CanHandle(command string) bool {
	return command == voteCommandName
}

// Handle accepts a poll id followed by option ids or 1-based option numbers as
// shown by /poll. Inline keyboard buttons send option ids.
func (c *voteCommand) Handle(ctx context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	fields := strings.Fields(arguments)
	if len(fields) < 2 {
		return reply(chatID, "Usage: /vote <poll id> <option number>...")
	}

	pollID, err := tgbot.ParseID(fields[0])
	if err != nil {
		return reply(chatID, "Invalid poll id")
	}

	optionIDs, err := c.resolveOptions(ctx, pollID, user.ID, fields[1:])
	if err != nil {
		c.logger.Warnw("failed to resolve options", "poll_id", pollID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}
	if optionIDs == nil {
		return reply(chatID, "Unknown option number")
	}

	added, err := c.pollService.Vote(ctx, pollID, user.ID, optionIDs)
	if err != nil {
		c.logger.Warnw("failed to vote", "poll_id", pollID, "user_id", user.ID, "error", err)
		return []tgbotapi.Chattable{tgbot.ServiceErrorMessage(chatID, err)}
	}

	header := "Voted"
	if added == 0 {
		header = "Nothing changed"
	}

	info, err := c.pollService.GetPollInfo(ctx, pollID, user.ID)
	if err != nil {
		c.logger.Warnw("failed to get poll", "poll_id", pollID, "error", err)
		return reply(chatID, header)
	}

	return []tgbotapi.Chattable{pollMessage(chatID, header, info)}
}

// resolveOptions returns nil without an error when an option number is out of
// range. The poll is only read when numbers are used.
func (c *voteCommand) resolveOptions(ctx context.Context, pollID uuid.UUID, userID int64, refs []string) ([]uuid.UUID, error) {
	optionIDs := make([]uuid.UUID, 0, len(refs))

	var options []services.OptionTally
	for _, ref := range refs {
		if id, err := tgbot.ParseID(ref); err == nil {
			optionIDs = append(optionIDs, id)
			continue
		}

		number, err := strconv.Atoi(ref)
		if err != nil {
			return nil, nil
		}

		if options == nil {
			info, err := c.pollService.GetPollInfo(ctx, pollID, userID)
			if err != nil {
				return nil, err
			}
			options = info.Options
		}

		if number < 1 || number > len(options) {
			return nil, nil
		}
		optionIDs = append(optionIDs, options[number-1].ID)
	}

	return optionIDs, nil
}
