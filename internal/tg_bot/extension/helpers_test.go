package extension

import (
	"errors"
	"fmt"
	"post_polls/internal/services"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID_RoundTrip(t *testing.T) {
	id := uuid.New()

	encoded := EncodeID(id)
	assert.Len(t, encoded, 22)

	parsed, err := ParseID(encoded)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	parsed, err = ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseID_Invalid(t *testing.T) {
	_, err := ParseID("42")
	assert.Error(t, err)

	_, err = ParseID("!!!!!!!!!!!!!!!!!!!!!!")
	assert.Error(t, err)
}

func TestServiceErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{fmt.Errorf("vote: %w", services.ErrNotFound), "No poll found or it has finished"},
		{services.ErrConflict, "This post already has an open poll"},
		{&services.ValidationError{Field: "title", Reason: "no title specified"}, "Invalid title: no title specified"},
		{errors.New("boom"), "Something went wrong, please try again"},
	}

	for _, tt := range tests {
		message, ok := ServiceErrorMessage(1, tt.err).(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, tt.text, message.Text)
	}
}
