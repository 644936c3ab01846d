package queries

import (
	"errors"
	"strings"

	"ceaseletter/internal/core/domain/model/order"
	"ceaseletter/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersHeader is the column order of the CSV export. Kept in one
// place so the header row and the per-row field order cannot drift apart.
var ExportOrdersHeader = []string{
	"id",
	"status",
	"createdAt",
	"updatedAt",
	"customerEmail",
	"collectorName",
	"trackingNumber",
	"notes",
	"lastError",
}

// ExportOrdersQuery retrieves every matching order as flat string rows for
// the CSV export. It reuses the listing filters but never paginates.
type ExportOrdersQuery struct {
	search string
	status order.Status

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates an export query with the same filter
// semantics as NewListOrdersQuery.
func NewExportOrdersQuery(search string, status order.Status) ExportOrdersQuery {
	return ExportOrdersQuery{
		search: strings.TrimSpace(search),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// Search returns the substring filter, possibly empty.
func (q ExportOrdersQuery) Search() string { return q.search }

// Status returns the status filter; order.Unknown means all statuses.
func (q ExportOrdersQuery) Status() order.Status { return q.status }
