package repositories

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"post_polls/internal/db"
	"post_polls/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const migrationsDir = "../../../migrations"

// setupTestDB connects to TEST_DATABASE_URL, migrates it and empties the poll
// tables. Tests are skipped when the variable is not set.
func setupTestDB(t *testing.T) *pg.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	options, err := pg.ParseURL(url)
	require.NoError(t, err)

	database := pg.Connect(options)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, db.Migrate(database, migrationsDir, zap.NewNop().Sugar()))

	_, err = database.Exec("TRUNCATE poll_options, polls")
	require.NoError(t, err)

	return database
}

func createTestPoll(t *testing.T, database *pg.DB, item int64, multi bool, values ...string) (*models.Poll, []*models.Option) {
	t.Helper()
	ctx := context.Background()

	poll := &models.Poll{
		ID:          uuid.New(),
		UserID:      1,
		Title:       "Lunch?",
		Multi:       multi,
		TargetModel: models.TargetModelPost,
		TargetItem:  item,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, NewPollRepository(database).Create(ctx, poll))

	options := make([]*models.Option, 0, len(values))
	for i, value := range values {
		options = append(options, &models.Option{
			ID:        uuid.New(),
			PollID:    poll.ID,
			Position:  i,
			Value:     value,
			Votes:     []int64{},
			Enabled:   true,
			CreatedAt: poll.CreatedAt,
		})
	}
	require.NoError(t, NewOptionRepository(database).CreateMany(ctx, options))

	return poll, options
}

func votesOf(t *testing.T, database *pg.DB, optionID uuid.UUID) []int64 {
	t.Helper()

	option := &models.Option{}
	require.NoError(t, database.Model(option).Where("id = ?", optionID).Select())
	return option.Votes
}

func TestAddVote_IsSetInsert(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewOptionRepository(database)

	poll, options := createTestPoll(t, database, 42, true, "a", "b")

	added, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	added, err = repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID, options[1].ID}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	assert.Equal(t, []int64{7}, votesOf(t, database, options[0].ID))
	assert.Equal(t, []int64{7}, votesOf(t, database, options[1].ID))
}

func TestAddVote_ConcurrentVotersAreAllKept(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewOptionRepository(database)

	poll, options := createTestPoll(t, database, 42, true, "a")

	const voters = 20
	var wg sync.WaitGroup
	for userID := int64(1); userID <= voters; userID++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID}, userID)
			assert.NoError(t, err)
		}(userID)
	}
	wg.Wait()

	assert.Len(t, votesOf(t, database, options[0].ID), voters)
}

func TestAddVote_OtherPollOptionIsIgnored(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewOptionRepository(database)

	poll, _ := createTestPoll(t, database, 1, true, "a")
	_, foreign := createTestPoll(t, database, 2, true, "x")

	added, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{foreign[0].ID}, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Empty(t, votesOf(t, database, foreign[0].ID))
}

func TestDisableExcept_KeepsVoteHistory(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewOptionRepository(database)

	poll, options := createTestPoll(t, database, 42, true, "A", "B")
	_, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID}, 1)
	require.NoError(t, err)
	_, err = repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID}, 2)
	require.NoError(t, err)

	disabled, err := repository.DisableExcept(ctx, poll.ID, []uuid.UUID{options[1].ID})
	require.NoError(t, err)
	assert.Equal(t, 1, disabled)

	stored, err := repository.GetManyByPollIDs(ctx, []uuid.UUID{poll.ID})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.False(t, stored[0].Enabled)
	assert.Equal(t, []int64{1, 2}, stored[0].Votes)
	assert.True(t, stored[1].Enabled)

	added, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestRemoveVote(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewOptionRepository(database)

	poll, options := createTestPoll(t, database, 42, false, "a", "b")
	_, err := repository.AddVote(ctx, poll.ID, []uuid.UUID{options[0].ID, options[1].ID}, 7)
	require.NoError(t, err)

	removed, err := repository.RemoveVote(ctx, poll.ID, []uuid.UUID{options[1].ID}, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, votesOf(t, database, options[0].ID))
	assert.Equal(t, []int64{7}, votesOf(t, database, options[1].ID))
}

func TestPollRepository_OneOpenPollPerTarget(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewPollRepository(database)

	first, _ := createTestPoll(t, database, 42, false, "a")

	second := &models.Poll{
		ID:          uuid.New(),
		UserID:      2,
		Title:       "Again",
		TargetModel: models.TargetModelPost,
		TargetItem:  42,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}
	assert.ErrorIs(t, repository.Create(ctx, second), ErrOpenPollExists)

	matched, err := repository.Close(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, matched)

	matched, err = repository.Close(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, matched)

	assert.NoError(t, repository.Create(ctx, second))
}

func TestPollRepository_GetOneAvailable(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewPollRepository(database)

	poll, _ := createTestPoll(t, database, 42, false, "a")

	found, err := repository.GetOneAvailable(ctx, poll.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, poll.ID, found.ID)

	_, err = repository.Close(ctx, poll.ID)
	require.NoError(t, err)

	found, err = repository.GetOneAvailable(ctx, poll.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repository.GetOne(ctx, poll.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.Available)
}

func TestPollRepository_GetManyWithOptionsByUserID(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	poll, options := createTestPoll(t, database, 42, false, "a", "b")
	_, err := NewOptionRepository(database).DisableExcept(ctx, poll.ID, []uuid.UUID{options[1].ID})
	require.NoError(t, err)

	polls, err := NewPollRepository(database).GetManyWithOptionsByUserID(ctx, poll.UserID)
	require.NoError(t, err)
	require.Len(t, polls, 1)
	require.Len(t, polls[0].Options, 2)
	assert.Equal(t, "a", polls[0].Options[0].Value)
	assert.False(t, polls[0].Options[0].Enabled)
}

func TestPollRepository_GetManyFilter(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()
	repository := NewPollRepository(database)

	first, _ := createTestPoll(t, database, 1, false, "a")
	second, _ := createTestPoll(t, database, 2, false, "a")
	_, err := repository.Close(ctx, second.ID)
	require.NoError(t, err)

	available := true
	polls, err := repository.GetMany(ctx, models.PollFilter{
		TargetModel: models.TargetModelPost,
		TargetItems: []int64{1, 2},
		Available:   &available,
	})
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, first.ID, polls[0].ID)

	polls, err = repository.GetMany(ctx, models.PollFilter{})
	require.NoError(t, err)
	assert.Len(t, polls, 2)
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	poll := &models.Poll{
		ID:          uuid.New(),
		UserID:      1,
		Title:       "Lunch?",
		TargetModel: models.TargetModelPost,
		TargetItem:  42,
		Available:   true,
		CreatedAt:   time.Now().UTC(),
	}
	broken := []*models.Option{{ID: uuid.New(), PollID: poll.ID, Value: "", Votes: []int64{}, Enabled: true, CreatedAt: poll.CreatedAt}}

	err := NewTransactor(database).RunInTransaction(ctx, func(polls PollRepository, options OptionRepository) error {
		if err := polls.Create(ctx, poll); err != nil {
			return err
		}
		return options.CreateMany(ctx, broken)
	})
	require.Error(t, err)

	found, err := NewPollRepository(database).GetOne(ctx, poll.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
