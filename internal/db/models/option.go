package models

import (
	"time"

	"github.com/google/uuid"
)

type Option struct {
	tableName struct{} `pg:"poll_options"`

	ID        uuid.UUID `json:"id" pg:"id,pk,type:uuid"`
	PollID    uuid.UUID `json:"poll_id" pg:"type:uuid,notnull"`
	Position  int       `json:"-" pg:",notnull,use_zero"`
	Value     string    `json:"value" pg:",notnull"`
	Votes     []int64   `json:"votes" pg:",array,notnull,use_zero"`
	Enabled   bool      `json:"enabled" pg:",notnull,use_zero"`
	CreatedAt time.Time `json:"created_at" pg:",notnull"`
}

// HasVote reports whether userID is in the option's vote set. The zero user id
// stands for an absent user and never matches.
func (o *Option) HasVote(userID int64) bool {
	if userID == 0 {
		return false
	}
	for _, id := range o.Votes {
		if id == userID {
			return true
		}
	}
	return false
}
