package services

import (
	"context"
	"post_polls/internal/db/models"
	"post_polls/internal/db/repositories"

	"github.com/google/uuid"
)

type EditResult struct {
	Retained int              `json:"retained"`
	Disabled int              `json:"disabled"`
	Created  []*models.Option `json:"created"`
}

// EditOptions makes the enabled options of an open poll equal values. Enabled
// options whose value is still wanted are kept with their votes, the others are
// disabled and keep their vote history, and values with no enabled match get
// fresh options. A value that only matches a disabled option gets a fresh one
// too: retired options are never enabled again.
func (s *pollService) EditOptions(ctx context.Context, pollID uuid.UUID, values []string) (EditResult, error) {
	if len(values) == 0 {
		return EditResult{}, &ValidationError{Field: "options", Reason: "no poll options specified"}
	}
	values, err := normalizeValues(values)
	if err != nil {
		return EditResult{}, err
	}

	var result EditResult
	err = s.transactor.RunInTransaction(ctx, func(polls repositories.PollRepository, options repositories.OptionRepository) error {
		poll, err := polls.GetOneAvailable(ctx, pollID)
		if err != nil {
			return err
		}
		if poll == nil {
			return ErrNotFound
		}

		existing, err := options.GetManyByPollIDs(ctx, []uuid.UUID{pollID})
		if err != nil {
			return err
		}

		retained, missing := matchOptions(existing, values)

		keepIDs := make([]uuid.UUID, 0, len(retained))
		for _, option := range retained {
			keepIDs = append(keepIDs, option.ID)
		}

		disabled, err := options.DisableExcept(ctx, pollID, keepIDs)
		if err != nil {
			return err
		}

		created := newOptions(pollID, missing, len(existing), s.now())
		if err := options.CreateMany(ctx, created); err != nil {
			return err
		}

		result = EditResult{Retained: len(retained), Disabled: disabled, Created: created}
		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to edit options", "poll_id", pollID, "error", err)
		return EditResult{}, storeError("edit options", err)
	}

	s.logger.Infow("options edited", "poll_id", pollID, "retained", result.Retained, "disabled", result.Disabled, "created", len(result.Created))
	return result, nil
}

// matchOptions pairs each wanted value with an enabled option of the same value.
// An option is paired at most once, so repeated values need as many options.
// Values left without a pair are returned as missing, in the order given.
func matchOptions(existing []*models.Option, values []string) (retained []*models.Option, missing []string) {
	free := make(map[string][]*models.Option)
	for _, option := range existing {
		if option.Enabled {
			free[option.Value] = append(free[option.Value], option)
		}
	}

	for _, value := range values {
		candidates := free[value]
		if len(candidates) == 0 {
			missing = append(missing, value)
			continue
		}
		retained = append(retained, candidates[0])
		free[value] = candidates[1:]
	}

	return retained, missing
}
