package services

import (
	"post_polls/internal/db/models"

	"github.com/google/uuid"
)

type OptionTally struct {
	ID      uuid.UUID `json:"id"`
	Value   string    `json:"value"`
	Votes   int       `json:"votes"`
	IsVoted bool      `json:"is_voted"`
}

// PollInfo is the read model of a poll with its live tallies. Options holds the
// enabled options only, in creation order.
type PollInfo struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Multi     bool          `json:"multi"`
	Target    models.Target `json:"target"`
	Available bool          `json:"available"`
	Votes     int           `json:"votes"`
	Options   []OptionTally `json:"options"`
	IsVoted   bool          `json:"is_voted"`
}

// Aggregate folds options into their polls and computes the tallies seen by
// userID. Every poll yields exactly one PollInfo, in the order given, even when
// none of its options is enabled. Disabled options and options of polls not in
// polls are ignored.
func Aggregate(polls []*models.Poll, options []*models.Option, userID int64) []PollInfo {
	byPoll := make(map[uuid.UUID][]*models.Option, len(polls))
	for _, option := range options {
		if !option.Enabled {
			continue
		}
		byPoll[option.PollID] = append(byPoll[option.PollID], option)
	}

	infos := make([]PollInfo, 0, len(polls))
	for _, poll := range polls {
		infos = append(infos, tally(poll, byPoll[poll.ID], userID))
	}

	return infos
}

func tally(poll *models.Poll, options []*models.Option, userID int64) PollInfo {
	info := PollInfo{
		ID:        poll.ID,
		Title:     poll.Title,
		Multi:     poll.Multi,
		Target:    poll.Target(),
		Available: poll.Available,
		Options:   make([]OptionTally, 0, len(options)),
	}

	for _, option := range options {
		optionTally := OptionTally{
			ID:      option.ID,
			Value:   option.Value,
			Votes:   len(option.Votes),
			IsVoted: option.HasVote(userID),
		}

		info.Votes += optionTally.Votes
		info.IsVoted = info.IsVoted || optionTally.IsVoted
		info.Options = append(info.Options, optionTally)
	}

	return info
}
