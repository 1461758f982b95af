package commands

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startCommandName = "start"

const startText = `Hi! I attach polls to posts. Here is what I can do:

/new_poll <post id> | <title> | <option> | <option>... - create a single choice poll
/new_multi_poll <post id> | <title> | <option> | <option>... - create a multiple choice poll
/poll <poll id> - show a poll with its votes
/vote <poll id> <option number>... - vote for options of a poll
/edit_options <poll id> | <option> | <option>... - replace the options of a poll
/close_poll <poll id> - close a poll
/my_polls - list your polls
/post_polls <post id>... - show the open polls of posts`

type startCommand struct{}

func NewStartCommand() Command {
	return &startCommand{}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName || command == "help"
}

func (c *startCommand) Handle(_ context.Context, _ string, _ *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	return reply(chatID, startText)
}
