package commands

import (
	"fmt"
	"post_polls/internal/services"
	tgbot "post_polls/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const votedMark = "✓"

func pollMessage(chatID int64, header string, info services.PollInfo) tgbotapi.MessageConfig {
	text := renderPoll(info)
	if header != "" {
		text = header + "\n\n" + text
	}

	pollReply := tgbotapi.NewMessage(chatID, text)
	if info.Available && len(info.Options) > 0 {
		pollReply.ReplyMarkup = voteKeyboard(info)
	}
	return pollReply
}

func renderPoll(info services.PollInfo) string {
	printer := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString(info.Title)
	b.WriteString("\n")

	kind := "single choice"
	if info.Multi {
		kind = "multiple choice"
	}
	status := "open"
	if !info.Available {
		status = "closed"
	}
	fmt.Fprintf(&b, "%s %d, %s, %s\n\n", info.Target.Model, info.Target.Item, kind, status)

	for i, option := range info.Options {
		mark := ""
		if option.IsVoted {
			mark = " " + votedMark
		}
		printer.Fprintf(&b, "%d. %s%s: %d\n", i+1, option.Value, mark, option.Votes)
	}

	printer.Fprintf(&b, "\nTotal votes: %d\n", info.Votes)
	b.WriteString("Poll: " + info.ID.String())

	return b.String()
}

func voteKeyboard(info services.PollInfo) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(info.Options))
	for _, option := range info.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Value, voteCallbackData(info.ID, option.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// voteCallbackData stays under the 64 byte callback limit by using the short id form.
func voteCallbackData(pollID, optionID uuid.UUID) string {
	return voteCommandName + ":" + tgbot.EncodeID(pollID) + " " + tgbot.EncodeID(optionID)
}
