package handlers

import (
	"context"
	"testing"

	"post_polls/internal/tg_bot/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedCall struct {
	arguments string
	userID    int64
	chatID    int64
}

type stubCommand struct {
	name  string
	calls []recordedCall
}

func (c *stubCommand) CanHandle(command string) bool {
	return command == c.name
}

func (c *stubCommand) Handle(_ context.Context, arguments string, user *tgbotapi.User, chatID int64) []tgbotapi.Chattable {
	c.calls = append(c.calls, recordedCall{arguments: arguments, userID: user.ID, chatID: chatID})
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, c.name+" handled")}
}

func newHandler(cmds ...commands.Command) CommandHandler {
	return NewPollBotCommandHandler(zap.NewNop().Sugar(), cmds)
}

func commandMessage(text string, length int) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: 7},
		Chat:     &tgbotapi.Chat{ID: 100},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func TestHandle_DispatchesCommand(t *testing.T) {
	poll := &stubCommand{name: "poll"}
	vote := &stubCommand{name: "vote"}
	handler := newHandler(poll, vote)

	responses := handler.Handle(tgbotapi.Update{Message: commandMessage("/vote abc 1", 5)})

	require.Len(t, responses, 1)
	assert.Empty(t, poll.calls)
	require.Len(t, vote.calls, 1)
	assert.Equal(t, recordedCall{arguments: "abc 1", userID: 7, chatID: 100}, vote.calls[0])
}

func TestHandle_UnknownCommand(t *testing.T) {
	handler := newHandler(&stubCommand{name: "poll"})

	responses := handler.Handle(tgbotapi.Update{Message: commandMessage("/nope", 5)})

	require.Len(t, responses, 1)
	message, ok := responses[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "Unknown command, see /help", message.Text)
}

func TestHandle_SkipsPlainMessages(t *testing.T) {
	poll := &stubCommand{name: "poll"}
	handler := newHandler(poll)

	responses := handler.Handle(tgbotapi.Update{Message: &tgbotapi.Message{
		Text: "hello",
		From: &tgbotapi.User{ID: 7},
		Chat: &tgbotapi.Chat{ID: 100},
	}})

	assert.Empty(t, responses)
	assert.Empty(t, poll.calls)
}

func TestHandle_CallbackQuery(t *testing.T) {
	vote := &stubCommand{name: "vote"}
	handler := newHandler(vote)

	responses := handler.Handle(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "callback-1",
		From:    &tgbotapi.User{ID: 8},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 200}},
		Data:    "vote:poll option",
	}})

	require.Len(t, responses, 2)
	answer, ok := responses[0].(tgbotapi.CallbackConfig)
	require.True(t, ok)
	assert.Equal(t, "callback-1", answer.CallbackQueryID)

	require.Len(t, vote.calls, 1)
	assert.Equal(t, recordedCall{arguments: "poll option", userID: 8, chatID: 200}, vote.calls[0])
}

func TestHandle_CallbackQueryWithoutMessage(t *testing.T) {
	vote := &stubCommand{name: "vote"}
	handler := newHandler(vote)

	responses := handler.Handle(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "callback-2",
		From: &tgbotapi.User{ID: 8},
		Data: "vote:poll option",
	}})

	require.Len(t, responses, 1)
	assert.Empty(t, vote.calls)
}
