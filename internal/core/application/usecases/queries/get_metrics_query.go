package queries

import (
	"errors"

	"ceaseletter/internal/pkg/guard"
)

var ErrGetMetricsQueryIsNotConstructed = errors.New(
	"GetMetricsQuery must be created via NewGetMetricsQuery constructor",
)

// GetMetricsQuery retrieves order volume counters for the admin dashboard.
type GetMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMetricsQuery creates a parameterless metrics query.
func NewGetMetricsQuery() GetMetricsQuery {
	return GetMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetMetricsQueryIsNotConstructed)
}

// GetMetricsQueryResponse carries order volume counters. Today and Last7Days
// are based on creation time in UTC; ByStatus maps wire status names to
// counts and omits statuses with no orders.
type GetMetricsQueryResponse struct {
	Total     int
	Today     int
	Last7Days int
	ByStatus  map[string]int
}
