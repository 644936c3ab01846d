// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern: one transaction per business operation, with repositories
// bound to that transaction and aggregate tracking for post-commit
// processing.
package postgres

import (
	"context"

	"ceaseletter/internal/adapters/out/postgres/blogrepo"
	"ceaseletter/internal/adapters/out/postgres/orderrepo"
	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent operations never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the order and
// blog post repositories. Repositories obtained from it run inside the
// active transaction; outside Begin/Commit they fall back to the shared
// connection for immediate execution.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an already-open unit of work
// is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. After commit the unit of work is spent.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After rollback the unit of work is
// spent. Handlers call it via defer, so rolling back after a successful
// commit must be harmless; gorm treats it as an invalid-transaction error,
// which the deferred call ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// BlogPostRepository returns a blog post repository bound to the current
// transaction when one is active.
func (uow *GormUnitOfWork) BlogPostRepository() ports.BlogPostRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return blogrepo.NewGormBlogPostRepository(db, uow)
}

// TrackAggregate registers an aggregate modified within this unit of work.
// Repositories call it on Add and Update; the collected aggregates are
// available for post-transaction processing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
