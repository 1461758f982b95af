package services

import (
	"context"
	"post_polls/internal/db/models"
	"post_polls/internal/db/repositories"

	"github.com/google/uuid"
)

// Vote records userID on the listed options of an open poll and returns how many
// options gained the vote. Options of other polls, retired options and options
// the user already voted for are skipped.
//
// Availability is read once before the write, so a vote racing ClosePoll may
// still land after the poll is closed.
//
// A single-choice poll accepts one option per call and moves the user's vote to
// it, taking it off every other option of the poll in the same transaction.
func (s *pollService) Vote(ctx context.Context, pollID uuid.UUID, userID int64, optionIDs []uuid.UUID) (int, error) {
	if userID == 0 {
		return 0, &ValidationError{Field: "user_id", Reason: "no user specified"}
	}

	poll, err := s.pollRepository.GetOneAvailable(ctx, pollID)
	if err != nil {
		return 0, storeError("get poll", err)
	}
	if poll == nil {
		return 0, ErrNotFound
	}

	optionIDs = uniqueIDs(optionIDs)
	if len(optionIDs) == 0 {
		return 0, nil
	}

	var added int
	if poll.Multi {
		added, err = s.optionRepository.AddVote(ctx, pollID, optionIDs, userID)
	} else {
		added, err = s.voteSingle(ctx, poll, optionIDs, userID)
	}
	if err != nil {
		s.logger.Errorw("failed to vote", "poll_id", pollID, "user_id", userID, "error", err)
		return 0, storeError("vote", err)
	}

	s.logger.Infow("voted", "poll_id", pollID, "user_id", userID, "options", len(optionIDs), "added", added)
	return added, nil
}

func (s *pollService) voteSingle(ctx context.Context, poll *models.Poll, optionIDs []uuid.UUID, userID int64) (int, error) {
	if len(optionIDs) > 1 {
		return 0, &ValidationError{Field: "options", Reason: "poll accepts a single option"}
	}

	var added int
	err := s.transactor.RunInTransaction(ctx, func(_ repositories.PollRepository, options repositories.OptionRepository) error {
		pollOptions, err := options.GetManyByPollIDs(ctx, []uuid.UUID{poll.ID})
		if err != nil {
			return err
		}
		if !hasEnabledOption(pollOptions, optionIDs[0]) {
			return nil
		}

		if _, err := options.RemoveVote(ctx, poll.ID, optionIDs, userID); err != nil {
			return err
		}

		added, err = options.AddVote(ctx, poll.ID, optionIDs, userID)
		return err
	})

	return added, err
}

func hasEnabledOption(options []*models.Option, optionID uuid.UUID) bool {
	for _, option := range options {
		if option.ID == optionID && option.Enabled {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
