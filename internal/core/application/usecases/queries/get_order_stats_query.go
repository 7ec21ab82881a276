package queries

import (
	"errors"

	"quickdish/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves order counts grouped by status.
// Used by the background stats job to report system activity.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for order counts by status.
// This is a parameterless query that aggregates over all orders.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatsQueryIsNotConstructed if validation fails.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// OrderStatCount is one row of the stats read model: a status flag
// and the number of orders currently in it.
type OrderStatCount struct {
	Status string
	Count  int64
}
