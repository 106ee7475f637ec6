// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// UnitOfWork groups the repositories bound to one transaction. Every
// write an operation makes goes through the same unit so the request
// boundary can commit or roll back all of it.
type UnitOfWork interface {
	Transaction

	Users() UserRepositoryIface
	Profiles() ProfileRepositoryIface
	Jobs() JobRepositoryIface
	Applications() ApplicationRepositoryIface
	Interviews() InterviewRepositoryIface
	Resumes() ResumeRepositoryIface
	Events() ApplicationEventRepositoryIface
}

// Store opens units of work.
type Store interface {
	// Begin starts a transactional unit.
	Begin(ctx context.Context) (UnitOfWork, error)
	// Session returns a non-transactional unit for read-only work. Commit
	// and Rollback are no-ops.
	Session(ctx context.Context) UnitOfWork
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying database instance.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Begin(ctx context.Context) (UnitOfWork, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return &gormUnitOfWork{db: tx, tx: &gormTransaction{tx: tx}}, nil
}

func (s *GormStore) Session(ctx context.Context) UnitOfWork {
	return &gormUnitOfWork{db: s.db.WithContext(ctx)}
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx   *gorm.DB
	done bool
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	if t.done {
		return errors.New("transaction already finished")
	}
	t.done = true
	return t.tx.Commit().Error
}

// Rollback reverts the transaction. Calling it after Commit is a no-op.
func (t *gormTransaction) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback().Error
}

type gormUnitOfWork struct {
	db *gorm.DB
	tx *gormTransaction
}

func (u *gormUnitOfWork) Commit() error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit()
}

func (u *gormUnitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback()
}

func (u *gormUnitOfWork) Users() UserRepositoryIface {
	return NewUserRepository(u.db)
}

func (u *gormUnitOfWork) Profiles() ProfileRepositoryIface {
	return NewProfileRepository(u.db)
}

func (u *gormUnitOfWork) Jobs() JobRepositoryIface {
	return NewJobRepository(u.db)
}

func (u *gormUnitOfWork) Applications() ApplicationRepositoryIface {
	return NewApplicationRepository(u.db)
}

func (u *gormUnitOfWork) Interviews() InterviewRepositoryIface {
	return NewInterviewRepository(u.db)
}

func (u *gormUnitOfWork) Resumes() ResumeRepositoryIface {
	return NewResumeRepository(u.db)
}

func (u *gormUnitOfWork) Events() ApplicationEventRepositoryIface {
	return NewApplicationEventRepository(u.db)
}

// WithinTransaction runs fn inside a unit of work, committing when fn
// returns nil and rolling back otherwise.
func WithinTransaction(ctx context.Context, store Store, fn func(uow UnitOfWork) error) (err error) {
	uow, err := store.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback()
			panic(p)
		}
		if err != nil {
			slog.DebugContext(ctx, "Rolling back transaction", "error", err)
			if rbErr := uow.Rollback(); rbErr != nil {
				slog.ErrorContext(ctx, "Failed to roll back transaction", "error", rbErr)
			}
		}
	}()

	if err = fn(uow); err != nil {
		return err
	}
	if err = uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
