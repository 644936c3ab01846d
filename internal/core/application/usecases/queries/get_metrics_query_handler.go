package queries

import (
	"context"
	"time"

	"ceaseletter/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetMetricsQueryHandler aggregates order counters with a single grouped
// scan over the orders table.
type GetMetricsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetMetricsQueryHandler creates a handler for dashboard metrics.
// Pass nil for now to use the wall clock.
func NewGetMetricsQueryHandler(db *gorm.DB, now func() time.Time) GetMetricsQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetMetricsQueryHandler{db: db, now: now}
}

// Handle executes the metrics query. Day boundaries are computed in UTC to
// match the stored timestamps.
func (h GetMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetMetricsQuery,
) (GetMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMetricsQueryResponse{}, err
	}

	nowUTC := h.now().UTC()
	todayStart := nowUTC.Truncate(24 * time.Hour)
	weekStart := nowUTC.Add(-7 * 24 * time.Hour)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= ?),
			COUNT(*) FILTER (WHERE created_at >= ?)
		FROM orders
		GROUP BY status
	`, todayStart, weekStart).Rows()
	if err != nil {
		return GetMetricsQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetMetricsQueryResponse{ByStatus: make(map[string]int)}
	for rows.Next() {
		var status, count, today, week int

		if err = rows.Scan(&status, &count, &today, &week); err != nil {
			return GetMetricsQueryResponse{}, err
		}

		resp.Total += count
		resp.Today += today
		resp.Last7Days += week
		resp.ByStatus[order.Status(status).String()] = count
	}

	if err = rows.Err(); err != nil {
		return GetMetricsQueryResponse{}, err
	}

	return resp, nil
}
