package repositories

//go:generate mockgen -source=option_repository.go -destination=mocks/option_repository.go -package=mock_repositories

import (
	"context"
	"post_polls/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

type optionRepository struct {
	repository
}

type OptionRepository interface {
	CreateMany(ctx context.Context, options []*models.Option) error
	GetManyByPollIDs(ctx context.Context, pollIDs []uuid.UUID) ([]*models.Option, error)
	AddVote(ctx context.Context, pollID uuid.UUID, optionIDs []uuid.UUID, userID int64) (int, error)
	RemoveVote(ctx context.Context, pollID uuid.UUID, exceptIDs []uuid.UUID, userID int64) (int, error)
	DisableExcept(ctx context.Context, pollID uuid.UUID, keepIDs []uuid.UUID) (int, error)
}

func NewOptionRepository(db orm.DB) OptionRepository {
	return &optionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *optionRepository) CreateMany(ctx context.Context, options []*models.Option) error {
	if len(options) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, &options).Insert()
	return err
}

// GetManyByPollIDs returns every option of the given polls, disabled ones
// included, in creation order within each poll.
func (r *optionRepository) GetManyByPollIDs(ctx context.Context, pollIDs []uuid.UUID) ([]*models.Option, error) {
	options := make([]*models.Option, 0)
	if len(pollIDs) == 0 {
		return options, nil
	}

	err := r.db.ModelContext(ctx, &options).
		Where("poll_id IN (?)", pg.In(pollIDs)).
		Order("position ASC", "created_at ASC").
		Select()

	return options, err
}

// AddVote inserts userID into the vote set of every enabled option of the poll
// listed in optionIDs. The insert happens inside one UPDATE so concurrent votes
// on the same option are serialised by the row lock. Options that already hold
// the user are left untouched and are not counted.
func (r *optionRepository) AddVote(ctx context.Context, pollID uuid.UUID, optionIDs []uuid.UUID, userID int64) (int, error) {
	if len(optionIDs) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*models.Option)(nil)).
		Set("votes = array_append(votes, ?::bigint)", userID).
		Where("poll_id = ?", pollID).
		Where("id IN (?)", pg.In(optionIDs)).
		Where("enabled = TRUE").
		Where("NOT (?::bigint = ANY(votes))", userID).
		Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

// RemoveVote takes userID out of every enabled option of the poll except the
// ones in exceptIDs.
func (r *optionRepository) RemoveVote(ctx context.Context, pollID uuid.UUID, exceptIDs []uuid.UUID, userID int64) (int, error) {
	q := r.db.ModelContext(ctx, (*models.Option)(nil)).
		Set("votes = array_remove(votes, ?::bigint)", userID).
		Where("poll_id = ?", pollID).
		Where("enabled = TRUE").
		Where("?::bigint = ANY(votes)", userID)
	if len(exceptIDs) > 0 {
		q = q.Where("id NOT IN (?)", pg.In(exceptIDs))
	}

	res, err := q.Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

// DisableExcept soft-retires every enabled option of the poll whose id is not
// in keepIDs. Vote sets are left as they are.
func (r *optionRepository) DisableExcept(ctx context.Context, pollID uuid.UUID, keepIDs []uuid.UUID) (int, error) {
	q := r.db.ModelContext(ctx, (*models.Option)(nil)).
		Set("enabled = FALSE").
		Where("poll_id = ?", pollID).
		Where("enabled = TRUE")
	if len(keepIDs) > 0 {
		q = q.Where("id NOT IN (?)", pg.In(keepIDs))
	}

	res, err := q.Update()
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}
