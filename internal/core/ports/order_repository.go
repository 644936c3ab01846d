// Package ports defines the interfaces through which the application core
// talks to the outside world: persistence on the driven side, and the mail
// carrier and address verifier the dispatch flow reports results from.
package ports

import (
	"context"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"
)

// OrderRepository persists the Order aggregate. Implementations must preserve
// the aggregate's field semantics: the form snapshot and letter text are
// written once, and the events column is replaced wholesale with the
// aggregate's append-only trail (which only ever grows).
type OrderRepository interface {
	// Add saves a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID. Returns *errs.ObjectNotFoundError when
	// the id is unknown, so callers can distinguish 404 from 409 conditions.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first. Used by the dispatch worker to drain the queue.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
