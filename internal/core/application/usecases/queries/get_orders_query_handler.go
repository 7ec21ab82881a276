package queries

import (
	"context"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database, bypassing
// the aggregate layer. The role decides the base predicate; the optional
// filters are appended only when present.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(merchantID, order.RoleMerchant, nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query and projects each matching order into
// an OrderView with its resolved status payload and line items.
// Results are sorted by order ID for consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, args := h.buildListSQL(query)

	views := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type orderRow struct {
		id           uuid.UUID
		customerID   uuid.UUID
		restaurantID uuid.UUID
		orderedAt    time.Time
		pricePaid    decimal.Decimal
		status       string
	}

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var r orderRow
		if err = rows.Scan(&r.id, &r.customerID, &r.restaurantID,
			&r.orderedAt, &r.pricePaid, &r.status); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, r := range orderRows {
		flag, flagErr := order.StatusFlagFromString(r.status)
		if flagErr != nil {
			return nil, flagErr
		}

		status, statusErr := resolveStatusView(ctx, h.db, r.id, flag)
		if statusErr != nil {
			return nil, statusErr
		}

		items, itemsErr := loadOrderItems(ctx, h.db, r.id)
		if itemsErr != nil {
			return nil, itemsErr
		}

		orderID, idErr := kernel.UUIDFromBytes(r.id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(r.customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		restaurantID, idErr := kernel.UUIDFromBytes(r.restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		views = append(views, OrderView{
			ID:           orderID,
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			OrderedAt:    r.orderedAt,
			PricePaid:    r.pricePaid,
			Status:       status,
			Items:        items,
		})
	}

	return views, nil
}

// buildListSQL builds the role-specific listing statement. Filters become
// predicates only when present; an absent filter adds nothing to the
// statement.
func (h GetOrdersQueryHandler) buildListSQL(query GetOrdersQuery) (string, []any) {
	var (
		sql  string
		args []any
	)

	switch query.Role() {
	case order.RoleCustomer:
		sql = `
			SELECT
				id,
				customer_id,
				restaurant_id,
				ordered_at,
				price_paid,
				status
			FROM orders
			WHERE customer_id = ?`
		args = append(args, query.ActorID().Bytes())

	case order.RoleMerchant:
		sql = `
			SELECT
				orders.id,
				orders.customer_id,
				orders.restaurant_id,
				orders.ordered_at,
				orders.price_paid,
				orders.status
			FROM orders
			JOIN restaurants ON restaurants.id = orders.restaurant_id
			WHERE restaurants.merchant_id = ?`
		args = append(args, query.ActorID().Bytes())
	}

	if filter := query.RestaurantFilter(); filter != nil {
		sql += ` AND orders.restaurant_id = ?`
		args = append(args, filter.Bytes())
	}

	if filter := query.StatusFilter(); filter != nil {
		sql += ` AND orders.status = ?`
		args = append(args, filter.String())
	}

	sql += ` ORDER BY orders.id`

	return sql, args
}
