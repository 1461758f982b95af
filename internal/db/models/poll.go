package models

import (
	"time"

	"github.com/google/uuid"
)

type TargetModel string

func (m TargetModel) String() string {
	return string(m)
}

const (
	TargetModelPost TargetModel = "Post"
)

var targetModels = []TargetModel{TargetModelPost}

// IsValid reports whether m is one of the entity kinds a poll can be bound to.
func (m TargetModel) IsValid() bool {
	for _, model := range targetModels {
		if model == m {
			return true
		}
	}
	return false
}

type Target struct {
	Model TargetModel `json:"model"`
	Item  int64       `json:"item"`
}

type Poll struct {
	ID          uuid.UUID   `json:"id" pg:"id,pk,type:uuid"`
	UserID      int64       `json:"user_id" pg:",notnull"`
	Title       string      `json:"title" pg:",notnull"`
	Multi       bool        `json:"multi" pg:",notnull,use_zero"`
	TargetModel TargetModel `json:"-" pg:",notnull"`
	TargetItem  int64       `json:"-" pg:",notnull"`
	Available   bool        `json:"available" pg:",notnull,use_zero"`
	Votes       int64       `json:"-" pg:",notnull,use_zero"`
	CreatedAt   time.Time   `json:"created_at" pg:",notnull"`
	Options     []*Option   `json:"options,omitempty" pg:"rel:has-many"`
}

func (p *Poll) Target() Target {
	return Target{Model: p.TargetModel, Item: p.TargetItem}
}

// PollFilter selects polls. Empty fields do not restrict the selection.
type PollFilter struct {
	IDs         []uuid.UUID
	UserID      *int64
	TargetModel TargetModel
	TargetItems []int64
	Available   *bool
}
