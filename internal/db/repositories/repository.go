package repositories

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mock_repositories

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const uniqueViolationCode = "23505"

type repository struct {
	db orm.DB
}

type Transactor interface {
	// RunInTransaction calls fn with repositories bound to a single transaction.
	// The transaction is committed when fn returns nil and rolled back otherwise.
	RunInTransaction(ctx context.Context, fn func(polls PollRepository, options OptionRepository) error) error
}

type transactor struct {
	db *pg.DB
}

func NewTransactor(db *pg.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) RunInTransaction(ctx context.Context, fn func(polls PollRepository, options OptionRepository) error) error {
	return t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(NewPollRepository(tx), NewOptionRepository(tx))
	})
}

func isUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolationCode
	}
	return false
}
