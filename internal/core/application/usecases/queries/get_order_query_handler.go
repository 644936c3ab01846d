package queries

import (
	"context"

	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/core/ports"
)

// GetOrderQueryHandler reads a single order through the repository rather
// than raw SQL: the detail view needs the full aggregate, form snapshot and
// event trail included, which only the repository's mapping reconstructs.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle retrieves the order. Returns *errs.ObjectNotFoundError for an
// unknown id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Get(ctx, query.OrderID())
}
