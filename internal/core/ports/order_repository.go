// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are written once at creation and from then on only their status
// moves; satellite records accumulate, they are never rewritten.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items and
	// selected options. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// items, options, and current status payload resolved.
	// Returns ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus persists the aggregate's current status, guarded by the
	// status the caller read before applying the transition. The write
	// succeeds only while the stored status still equals fromStatus;
	// a concurrent transition in between makes it fail with a
	// ValueIsInvalidError instead of overwriting the newer status.
	// The satellite record for the new status is inserted in the same
	// transaction.
	UpdateStatus(ctx context.Context, aggregate *order.Order, fromStatus order.StatusFlag) error
}
