package extension

import (
	"encoding/base64"
	"errors"
	"fmt"
	"post_polls/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

func DefaultErrorMessage(chatID int64) tgbotapi.Chattable {
	return ErrorMessage(chatID, "Something went wrong, please try again")
}

func ErrorMessage(chatID int64, text string) tgbotapi.Chattable {
	return tgbotapi.NewMessage(chatID, text)
}

// ServiceErrorMessage turns a poll service failure into a reply for the user.
func ServiceErrorMessage(chatID int64, err error) tgbotapi.Chattable {
	var validationErr *services.ValidationError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return ErrorMessage(chatID, "No poll found or it has finished")
	case errors.Is(err, services.ErrConflict):
		return ErrorMessage(chatID, "This post already has an open poll")
	case errors.As(err, &validationErr):
		return ErrorMessage(chatID, fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Reason))
	default:
		return DefaultErrorMessage(chatID)
	}
}

// EncodeID returns a 22 character form of id that fits into callback data.
func EncodeID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// ParseID accepts both the canonical uuid form and the EncodeID form.
func ParseID(s string) (uuid.UUID, error) {
	if len(s) == base64.RawURLEncoding.EncodedLen(len(uuid.UUID{})) {
		raw, err := base64.RawURLEncoding.DecodeString(s)
		if err != nil {
			return uuid.Nil, err
		}
		return uuid.FromBytes(raw)
	}
	return uuid.Parse(s)
}
