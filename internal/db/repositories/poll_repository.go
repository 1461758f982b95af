package repositories

//go:generate mockgen -source=poll_repository.go -destination=mocks/poll_repository.go -package=mock_repositories

import (
	"context"
	"errors"
	"post_polls/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

// ErrOpenPollExists is returned by Create when the target item already has an
// open poll.
var ErrOpenPollExists = errors.New("target item already has an open poll")

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(ctx context.Context, poll *models.Poll) error
	GetOne(ctx context.Context, pollID uuid.UUID) (*models.Poll, error)
	GetOneAvailable(ctx context.Context, pollID uuid.UUID) (*models.Poll, error)
	GetMany(ctx context.Context, filter models.PollFilter) ([]*models.Poll, error)
	GetManyWithOptionsByUserID(ctx context.Context, userID int64) ([]*models.Poll, error)
	Close(ctx context.Context, pollID uuid.UUID) (int, error)
	UpdateVotes(ctx context.Context, pollID uuid.UUID, votes int64) error
}

func NewPollRepository(db orm.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(ctx context.Context, poll *models.Poll) error {
	_, err := r.db.ModelContext(ctx, poll).Insert()
	if isUniqueViolation(err) {
		return ErrOpenPollExists
	}
	return err
}

// GetOne returns nil without an error when no poll has the given id.
func (r *pollRepository) GetOne(ctx context.Context, pollID uuid.UUID) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Where("id = ?", pollID).
		Select()

	return noRows(poll, err)
}

func (r *pollRepository) GetOneAvailable(ctx context.Context, pollID uuid.UUID) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.ModelContext(ctx, poll).
		Where("id = ?", pollID).
		Where("available = TRUE").
		Select()

	return noRows(poll, err)
}

func (r *pollRepository) GetMany(ctx context.Context, filter models.PollFilter) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	q := r.db.ModelContext(ctx, &polls)
	if len(filter.IDs) > 0 {
		q = q.Where("id IN (?)", pg.In(filter.IDs))
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.TargetModel != "" {
		q = q.Where("target_model = ?", filter.TargetModel)
	}
	if len(filter.TargetItems) > 0 {
		q = q.Where("target_item IN (?)", pg.In(filter.TargetItems))
	}
	if filter.Available != nil {
		q = q.Where("available = ?", *filter.Available)
	}

	err := q.Order("created_at ASC", "id ASC").Select()

	return polls, err
}

func (r *pollRepository) GetManyWithOptionsByUserID(ctx context.Context, userID int64) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.ModelContext(ctx, &polls).
		Relation("Options", func(q *orm.Query) (*orm.Query, error) {
			return q.Order("position ASC"), nil
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC", "id ASC").
		Select()

	return polls, err
}

// Close marks the poll unavailable and returns the number of matched polls.
// Closing an already closed poll still matches it.
func (r *pollRepository) Close(ctx context.Context, pollID uuid.UUID) (int, error) {
	res, err := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Set("available = FALSE").
		Where("id = ?", pollID).
		Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

func (r *pollRepository) UpdateVotes(ctx context.Context, pollID uuid.UUID, votes int64) error {
	_, err := r.db.ModelContext(ctx, (*models.Poll)(nil)).
		Set("votes = ?", votes).
		Where("id = ?", pollID).
		Update()

	return err
}

func noRows(poll *models.Poll, err error) (*models.Poll, error) {
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return poll, nil
}
