package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler counts orders per status directly in SQL.
// Feeds the periodic stats job; not exposed over HTTP.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order stats queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns one row per status that has
// at least one order, sorted by status name.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) ([]OrderStatCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]OrderStatCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat OrderStatCount
		if err := rows.Scan(&stat.Status, &stat.Count); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
