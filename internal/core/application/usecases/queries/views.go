// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusView is the flattened read model of an order's status. Flag is
// always set; the payload fields of the other statuses stay nil.
type StatusView struct {
	Flag        order.StatusFlag
	PreparedAt  *time.Time
	ReadyAt     *time.Time
	SettledAt   *time.Time
	CancelledBy *order.CancelledBy
	CancelledAt *time.Time
	Reason      *string
}

// OrderItemView is one order line in the read model.
type OrderItemView struct {
	ID            kernel.UUID
	MenuID        kernel.UUID
	Quantity      int
	ExtraRequests string
	OptionIDs     []kernel.UUID
}

// OrderView is the presentation-ready projection of an order: header
// fields, resolved status payload, and line items with their selected
// options.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	OrderedAt    time.Time
	PricePaid    decimal.Decimal
	Status       StatusView
	Items        []OrderItemView
}

// resolveStatusView loads the satellite record matching the order's status
// flag. A missing satellite is a broken invariant, never a user error, and
// surfaces as an InconsistentStateError.
func resolveStatusView(ctx context.Context, db *gorm.DB, orderID uuid.UUID, flag order.StatusFlag) (StatusView, error) {
	view := StatusView{Flag: flag}

	switch flag {
	case order.StatusOrdered:
		// The initial status has no satellite record.
		return view, nil

	case order.StatusPreparing:
		var preparedAt time.Time
		row := db.WithContext(ctx).Raw(`
			SELECT prepared_at FROM preparing_orders WHERE order_id = ?
		`, orderID).Row()
		if err := row.Scan(&preparedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return StatusView{}, errs.NewInconsistentStateError("can't find the preparing order")
			}
			return StatusView{}, err
		}
		view.PreparedAt = &preparedAt
		return view, nil

	case order.StatusReady:
		var readyAt time.Time
		row := db.WithContext(ctx).Raw(`
			SELECT ready_at FROM ready_orders WHERE order_id = ?
		`, orderID).Row()
		if err := row.Scan(&readyAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return StatusView{}, errs.NewInconsistentStateError("can't find the ready order")
			}
			return StatusView{}, err
		}
		view.ReadyAt = &readyAt
		return view, nil

	case order.StatusSettled:
		var settledAt time.Time
		row := db.WithContext(ctx).Raw(`
			SELECT settled_at FROM settled_orders WHERE order_id = ?
		`, orderID).Row()
		if err := row.Scan(&settledAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return StatusView{}, errs.NewInconsistentStateError("can't find the settled order")
			}
			return StatusView{}, err
		}
		view.SettledAt = &settledAt
		return view, nil

	case order.StatusCancelled:
		var (
			cancelledBy string
			cancelledAt time.Time
			reason      string
		)
		row := db.WithContext(ctx).Raw(`
			SELECT cancelled_by, cancelled_at, reason FROM cancelled_orders WHERE order_id = ?
		`, orderID).Row()
		if err := row.Scan(&cancelledBy, &cancelledAt, &reason); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return StatusView{}, errs.NewInconsistentStateError("can't find the cancelled order")
			}
			return StatusView{}, err
		}
		by, err := order.CancelledByFromString(cancelledBy)
		if err != nil {
			return StatusView{}, err
		}
		view.CancelledBy = &by
		view.CancelledAt = &cancelledAt
		view.Reason = &reason
		return view, nil

	default:
		return StatusView{}, errs.NewInconsistentStateErrorWithCause("order status",
			flag.Validate())
	}
}

// loadOrderItems loads the line items and their selected option ids for
// one order, in insertion order.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderItemView, error) {
	items := make([]OrderItemView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_id,
			quantity,
			extra_requests
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			menuID        uuid.UUID
			quantity      int
			extraRequests string
		)
		if err = rows.Scan(&id, &menuID, &quantity, &extraRequests); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemView{
			ID:            itemID,
			MenuID:        itemMenuID,
			Quantity:      quantity,
			ExtraRequests: extraRequests,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		optionIDs, err := loadItemOptionIDs(ctx, db, items[i].ID.Bytes())
		if err != nil {
			return nil, err
		}
		items[i].OptionIDs = optionIDs
	}

	return items, nil
}

func loadItemOptionIDs(ctx context.Context, db *gorm.DB, itemID uuid.UUID) ([]kernel.UUID, error) {
	optionIDs := make([]kernel.UUID, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT option_id FROM order_options WHERE order_item_id = ? ORDER BY option_id
	`, itemID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		optionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		optionIDs = append(optionIDs, optionID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return optionIDs, nil
}
