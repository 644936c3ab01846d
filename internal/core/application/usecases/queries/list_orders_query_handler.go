package queries

import (
	"context"
	"strings"

	"ceaseletter/internal/core/domain/model/kernel"
	"ceaseletter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves the admin order listing straight from the
// orders table, using the denormalized customer_email and collector_name
// columns so no JSON payloads are touched.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered newest first by creation
// time; Total counts all matches ignoring pagination, and HasMore reports
// whether another page exists past this one.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := buildOrderFilter(query.Search(), query.Status())

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE `+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

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
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]OrderSummary, 0)
	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&summary.CustomerEmail,
			&summary.CollectorName,
			&summary.TrackingNumber,
			&summary.Notes,
			&summary.LastError,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status)
		items = append(items, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Items:   items,
		Total:   int(total),
		HasMore: query.Offset()+query.Limit() < int(total),
	}, nil
}

// buildOrderFilter translates the optional search and status filters into a
// WHERE fragment with its bind arguments.
func buildOrderFilter(search string, status order.Status) (string, []any) {
	where := "1=1"
	args := make([]any, 0, 4)

	if search != "" {
		pattern := likePattern(search)
		where += " AND (id::text ILIKE ? OR customer_email ILIKE ? OR collector_name ILIKE ?)"
		args = append(args, pattern, pattern, pattern)
	}

	if status != order.Unknown {
		where += " AND status = ?"
		args = append(args, int(status))
	}

	return where, args
}

// likeEscaper neutralizes the LIKE metacharacters so a search term always
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains-pattern for ILIKE from a raw search term.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
