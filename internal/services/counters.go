package services

import (
	"context"
	"post_polls/internal/db/models"
)

// RefreshVoteCounters recomputes the stored vote counter of every poll from its
// enabled options and returns the number of polls whose counter changed.
func (s *pollService) RefreshVoteCounters(ctx context.Context) (int, error) {
	polls, err := s.pollRepository.GetMany(ctx, models.PollFilter{})
	if err != nil {
		return 0, storeError("get polls", err)
	}
	if len(polls) == 0 {
		return 0, nil
	}

	options, err := s.optionRepository.GetManyByPollIDs(ctx, pollIDs(polls))
	if err != nil {
		return 0, storeError("get options", err)
	}

	updated := 0
	for i, info := range Aggregate(polls, options, 0) {
		votes := int64(info.Votes)
		if polls[i].Votes == votes {
			continue
		}

		if err := s.pollRepository.UpdateVotes(ctx, info.ID, votes); err != nil {
			s.logger.Errorw("failed to update poll votes", "poll_id", info.ID, "error", err)
			return updated, storeError("update poll votes", err)
		}
		updated++
	}

	s.logger.Infow("vote counters refreshed", "polls", len(polls), "updated", updated)
	return updated, nil
}
