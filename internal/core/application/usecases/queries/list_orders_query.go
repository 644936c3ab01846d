// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregates and their invariant machinery.
package queries

import (
	"errors"
	"strings"
	"time"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	// DefaultListOrdersLimit is the page size when the caller does not ask
	// for one.
	DefaultListOrdersLimit = 25

	// MaxListOrdersLimit caps the page size regardless of what the caller asks.
	MaxListOrdersLimit = 100
)

// ListOrdersQuery retrieves a filtered, paginated page of orders for the
// admin dashboard, newest first.
type ListOrdersQuery struct {
	search string
	status order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. The search term matches order id,
// customer email, and collector name case-insensitively as substrings; pass
// order.Unknown as status to skip the status filter. Out-of-range limit and
// offset values are clamped, not rejected.
func NewListOrdersQuery(search string, status order.Status, limit, offset int) ListOrdersQuery {
	if limit <= 0 {
		limit = DefaultListOrdersLimit
	}
	if limit > MaxListOrdersLimit {
		limit = MaxListOrdersLimit
	}
	if offset < 0 {
		offset = 0
	}

	return ListOrdersQuery{
		search: strings.TrimSpace(search),
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the substring filter, possibly empty.
func (q ListOrdersQuery) Search() string { return q.search }

// Status returns the status filter; order.Unknown means all statuses.
func (q ListOrdersQuery) Status() order.Status { return q.status }

// Limit returns the clamped page size.
func (q ListOrdersQuery) Limit() int { return q.limit }

// Offset returns the clamped page offset.
func (q ListOrdersQuery) Offset() int { return q.offset }

// OrderSummary is one row of the admin order listing. The form snapshot,
// letter text, and audit events are deliberately left out; they are served by
// the single-order lookup.
type OrderSummary struct {
	ID             kernel.UUID
	Status         order.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CustomerEmail  string
	CollectorName  string
	TrackingNumber string
	Notes          string
	LastError      string
}

// ListOrdersQueryResponse is a page of orders plus the totals the dashboard
// needs for pagination controls.
type ListOrdersQueryResponse struct {
	Items   []OrderSummary
	Total   int
	HasMore bool
}
