package services

//go:generate mockgen -source=poll_service.go -destination=mocks/poll_service.go -package=mock_services

import (
	"context"
	"errors"
	"post_polls/internal/db/models"
	"post_polls/internal/db/repositories"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

type CreatePollRequest struct {
	UserID  int64
	Target  models.Target
	Options []string
	Title   string
	Multi   bool
}

type PollService interface {
	MakePoll(ctx context.Context, request CreatePollRequest) (*models.Poll, error)
	ClosePoll(ctx context.Context, pollID uuid.UUID) (PollInfo, error)
	Vote(ctx context.Context, pollID uuid.UUID, userID int64, optionIDs []uuid.UUID) (int, error)
	EditOptions(ctx context.Context, pollID uuid.UUID, values []string) (EditResult, error)
	GetPollInfo(ctx context.Context, pollID uuid.UUID, userID int64) (PollInfo, error)
	GetPollsInfo(ctx context.Context, filter models.PollFilter, userID int64) ([]PollInfo, error)
	GetUserPolls(ctx context.Context, userID int64) ([]*models.Poll, error)
	GetPostPolls(ctx context.Context, postIDs []int64, userID int64) (map[int64]PollInfo, error)
	RefreshVoteCounters(ctx context.Context) (int, error)
}

type pollService struct {
	pollRepository   repositories.PollRepository
	optionRepository repositories.OptionRepository
	transactor       repositories.Transactor
	logger           *zap.SugaredLogger

	now func() time.Time
}

func NewPollService(
	pollRepository repositories.PollRepository,
	optionRepository repositories.OptionRepository,
	transactor repositories.Transactor,
	logger *zap.SugaredLogger,
) PollService {
	return &pollService{
		pollRepository:   pollRepository,
		optionRepository: optionRepository,
		transactor:       transactor,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// MakePoll stores a poll together with one option per value. Both writes share
// a transaction, so a failure leaves nothing behind.
func (s *pollService) MakePoll(ctx context.Context, request CreatePollRequest) (*models.Poll, error) {
	if request.UserID == 0 {
		return nil, &ValidationError{Field: "user_id", Reason: "no user specified"}
	}
	if request.Target.Model == "" || request.Target.Item == 0 {
		return nil, &ValidationError{Field: "target", Reason: "no target specified"}
	}
	if !request.Target.Model.IsValid() {
		return nil, &ValidationError{Field: "target", Reason: "unknown target model " + request.Target.Model.String()}
	}
	if len(request.Options) == 0 {
		return nil, &ValidationError{Field: "options", Reason: "no poll options specified"}
	}
	title := normalize(request.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "no title specified"}
	}
	values, err := normalizeValues(request.Options)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	poll := &models.Poll{
		ID:          uuid.New(),
		UserID:      request.UserID,
		Title:       title,
		Multi:       request.Multi,
		TargetModel: request.Target.Model,
		TargetItem:  request.Target.Item,
		Available:   true,
		CreatedAt:   createdAt,
	}
	poll.Options = newOptions(poll.ID, values, 0, createdAt)

	err = s.transactor.RunInTransaction(ctx, func(polls repositories.PollRepository, options repositories.OptionRepository) error {
		if err := polls.Create(ctx, poll); err != nil {
			return err
		}
		return options.CreateMany(ctx, poll.Options)
	})
	if errors.Is(err, repositories.ErrOpenPollExists) {
		return nil, ErrConflict
	}
	if err != nil {
		s.logger.Errorw("failed to create poll", "error", err)
		return nil, storeError("create poll", err)
	}

	s.logger.Infow("poll created", "poll_id", poll.ID, "user_id", poll.UserID, "target_item", poll.TargetItem, "options", len(poll.Options))
	return poll, nil
}

// ClosePoll makes the poll unavailable for voting and returns its final state.
// Closing a closed poll succeeds without changes.
func (s *pollService) ClosePoll(ctx context.Context, pollID uuid.UUID) (PollInfo, error) {
	matched, err := s.pollRepository.Close(ctx, pollID)
	if err != nil {
		s.logger.Errorw("failed to close poll", "poll_id", pollID, "error", err)
		return PollInfo{}, storeError("close poll", err)
	}
	if matched == 0 {
		return PollInfo{}, ErrNotFound
	}

	s.logger.Infow("poll closed", "poll_id", pollID)
	return s.GetPollInfo(ctx, pollID, 0)
}

func (s *pollService) GetPollInfo(ctx context.Context, pollID uuid.UUID, userID int64) (PollInfo, error) {
	infos, err := s.GetPollsInfo(ctx, models.PollFilter{IDs: []uuid.UUID{pollID}}, userID)
	if err != nil {
		return PollInfo{}, err
	}
	if len(infos) == 0 {
		return PollInfo{}, ErrNotFound
	}

	return infos[0], nil
}

// GetPollsInfo returns one PollInfo per poll matching filter. userID 0 is
// treated as an anonymous reader.
func (s *pollService) GetPollsInfo(ctx context.Context, filter models.PollFilter, userID int64) ([]PollInfo, error) {
	polls, err := s.pollRepository.GetMany(ctx, filter)
	if err != nil {
		return nil, storeError("get polls", err)
	}
	if len(polls) == 0 {
		return []PollInfo{}, nil
	}

	options, err := s.optionRepository.GetManyByPollIDs(ctx, pollIDs(polls))
	if err != nil {
		return nil, storeError("get options", err)
	}

	return Aggregate(polls, options, userID), nil
}

// GetUserPolls lists the polls owned by userID with all of their options,
// retired ones included. No tallies are computed.
func (s *pollService) GetUserPolls(ctx context.Context, userID int64) ([]*models.Poll, error) {
	polls, err := s.pollRepository.GetManyWithOptionsByUserID(ctx, userID)
	if err != nil {
		return nil, storeError("get user polls", err)
	}

	return polls, nil
}

// GetPostPolls maps each post to its open poll. With no post ids every open post
// poll is returned.
func (s *pollService) GetPostPolls(ctx context.Context, postIDs []int64, userID int64) (map[int64]PollInfo, error) {
	available := true
	infos, err := s.GetPollsInfo(ctx, models.PollFilter{
		TargetModel: models.TargetModelPost,
		TargetItems: postIDs,
		Available:   &available,
	}, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]PollInfo, len(infos))
	for _, info := range infos {
		result[info.Target.Item] = info
	}

	return result, nil
}

func pollIDs(polls []*models.Poll) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(polls))
	for _, poll := range polls {
		ids = append(ids, poll.ID)
	}
	return ids
}

func normalize(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

func normalizeValues(values []string) ([]string, error) {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		value = normalize(value)
		if value == "" {
			return nil, &ValidationError{Field: "options", Reason: "option value must not be empty"}
		}
		normalized = append(normalized, value)
	}
	return normalized, nil
}

func newOptions(pollID uuid.UUID, values []string, firstPosition int, createdAt time.Time) []*models.Option {
	options := make([]*models.Option, 0, len(values))
	for i, value := range values {
		options = append(options, &models.Option{
			ID:        uuid.New(),
			PollID:    pollID,
			Position:  firstPosition + i,
			Value:     value,
			Votes:     []int64{},
			Enabled:   true,
			CreatedAt: createdAt,
		})
	}
	return options
}
