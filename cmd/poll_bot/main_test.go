package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mock_services "post_polls/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHealthCheckHandler(t *testing.T) {
	recorder := httptest.NewRecorder()

	healthCheckHandler(recorder, httptest.NewRequest(http.MethodGet, healthCheckPath, nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "I'm alive", recorder.Body.String())
}

func TestNewCommands_CoverEveryCommand(t *testing.T) {
	pollService := mock_services.NewMockPollService(gomock.NewController(t))

	cmds := newCommands(pollService, zap.NewNop().Sugar())

	names := []string{"start", "help", "new_poll", "new_multi_poll", "poll", "vote", "edit_options", "close_poll", "my_polls", "post_polls"}
	for _, name := range names {
		handled := 0
		for _, command := range cmds {
			if command.CanHandle(name) {
				handled++
			}
		}
		require.Equal(t, 1, handled, name)
	}
}
