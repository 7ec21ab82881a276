package queries

import (
	"context"
	"database/sql"
	"errors"

	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStatusQueryHandler resolves one order's status payload after
// checking that the actor may see it. Existence is not hidden: a missing
// order is NotFound for everyone, ownership failures are Unauthorized.
type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

// Handle loads the order, authorizes the actor, and resolves the status
// satellite into a StatusView.
func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (StatusView, error) {
	if err := query.Validate(); err != nil {
		return StatusView{}, err
	}

	var (
		customerID   uuid.UUID
		restaurantID uuid.UUID
		status       string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT customer_id, restaurant_id, status FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&customerID, &restaurantID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StatusView{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return StatusView{}, err
	}

	if err := h.authorize(ctx, query, customerID, restaurantID); err != nil {
		return StatusView{}, err
	}

	flag, err := order.StatusFlagFromString(status)
	if err != nil {
		return StatusView{}, err
	}

	return resolveStatusView(ctx, h.db, query.OrderID().Bytes(), flag)
}

func (h GetOrderStatusQueryHandler) authorize(
	ctx context.Context,
	query GetOrderStatusQuery,
	customerID uuid.UUID,
	restaurantID uuid.UUID,
) error {
	switch query.Role() {
	case order.RoleCustomer:
		if query.ActorID().Bytes() != customerID {
			return errs.NewUnauthorizedError("customer does not own the order")
		}

	case order.RoleMerchant:
		var owned int
		row := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(1) FROM restaurants WHERE merchant_id = ? AND id = ?
		`, query.ActorID().Bytes(), restaurantID).Row()
		if err := row.Scan(&owned); err != nil {
			return err
		}
		if owned == 0 {
			return errs.NewUnauthorizedError("merchant does not own the order")
		}
	}

	return nil
}
