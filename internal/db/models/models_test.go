package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetModel_IsValid(t *testing.T) {
	assert.True(t, TargetModelPost.IsValid())
	assert.False(t, TargetModel("Comment").IsValid())
	assert.False(t, TargetModel("").IsValid())
}

func TestOption_HasVote(t *testing.T) {
	option := &Option{Votes: []int64{0, 7}}

	assert.True(t, option.HasVote(7))
	assert.False(t, option.HasVote(9))
	assert.False(t, option.HasVote(0))
}

func TestPoll_Target(t *testing.T) {
	poll := &Poll{TargetModel: TargetModelPost, TargetItem: 42}
	assert.Equal(t, Target{Model: TargetModelPost, Item: 42}, poll.Target())
}
