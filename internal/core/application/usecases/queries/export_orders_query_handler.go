package queries

import (
	"context"
	"time"

	"ceaseletter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportOrdersQueryHandler streams all matching orders as string rows in
// ExportOrdersHeader column order, newest first.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler for CSV exports.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle executes the export. Timestamps are rendered in RFC 3339 UTC.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([][]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := buildOrderFilter(query.Search(), query.Status())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			created_at,
			updated_at,
			customer_email,
			collector_name,
			tracking_number,
			notes,
			last_error
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([][]string, 0)
	for rows.Next() {
		var id uuid.UUID
		var status int
		var createdAt, updatedAt time.Time
		var email, collector, tracking, notes, lastError string

		err = rows.Scan(
			&id,
			&status,
			&createdAt,
			&updatedAt,
			&email,
			&collector,
			&tracking,
			&notes,
			&lastError,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, []string{
			id.String(),
			order.Status(status).String(),
			createdAt.UTC().Format(time.RFC3339),
			updatedAt.UTC().Format(time.RFC3339),
			email,
			collector,
			tracking,
			notes,
			lastError,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
