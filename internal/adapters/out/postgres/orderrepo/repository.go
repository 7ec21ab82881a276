package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items and selected options.
// Orders start in the initial status, which has no satellite row.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs, optionDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}

	if len(optionDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&optionDTOs).Error; err != nil {
			return err
		}
	}

	if satellite := satelliteFromStatus(dto.ID, aggregate.Status()); satellite != nil {
		if err := r.db.WithContext(ctx).Create(satellite).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items, options, and status payload.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	flag, err := order.StatusFlagFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	status, err := r.loadStatus(ctx, dto.ID, flag)
	if err != nil {
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&itemDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	optionsByItem := make(map[uuid.UUID][]OrderOptionDTO)
	for _, itemDTO := range itemDTOs {
		var optionDTOs []OrderOptionDTO
		if err := r.db.WithContext(ctx).
			Order("option_id").
			Find(&optionDTOs, "order_item_id = ?", itemDTO.ID).Error; err != nil {
			return nil, err
		}
		optionsByItem[itemDTO.ID] = optionDTOs
	}

	return toDomain(dto, itemDTOs, optionsByItem, status)
}

// UpdateStatus moves the order's status column to the aggregate's current
// status, guarded by the status the caller read before applying the
// transition. The satellite row for the new status is written alongside.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	fromStatus order.StatusFlag,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := fromStatus.Validate(); err != nil {
		return err
	}

	newStatus := aggregate.Status().Flag().String()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), fromStatus.String()).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("order %s is no longer in status %s", aggregate.ID(), fromStatus))
	}

	if satellite := satelliteFromStatus(aggregate.ID().Bytes(), aggregate.Status()); satellite != nil {
		if err := r.db.WithContext(ctx).Create(satellite).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// loadStatus resolves the status payload for the given flag from its
// satellite table. A missing satellite for a non-initial status means the
// stored data contradicts itself.
func (r *GormOrderRepository) loadStatus(
	ctx context.Context,
	orderID uuid.UUID,
	flag order.StatusFlag,
) (order.Status, error) {
	switch flag {
	case order.StatusOrdered:
		return order.Ordered{}, nil

	case order.StatusPreparing:
		var dto PreparingOrderDTO
		if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewInconsistentStateError("can't find the preparing order")
			}
			return nil, err
		}
		return order.Preparing{PreparedAt: dto.PreparedAt}, nil

	case order.StatusReady:
		var dto ReadyOrderDTO
		if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewInconsistentStateError("can't find the ready order")
			}
			return nil, err
		}
		return order.Ready{ReadyAt: dto.ReadyAt}, nil

	case order.StatusSettled:
		var dto SettledOrderDTO
		if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewInconsistentStateError("can't find the settled order")
			}
			return nil, err
		}
		return order.Settled{SettledAt: dto.SettledAt}, nil

	case order.StatusCancelled:
		var dto CancelledOrderDTO
		if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errs.NewInconsistentStateError("can't find the cancelled order")
			}
			return nil, err
		}

		by, err := order.CancelledByFromString(dto.CancelledBy)
		if err != nil {
			return nil, err
		}
		return order.Cancelled{
			By:          by,
			CancelledAt: dto.CancelledAt,
			Reason:      dto.Reason,
		}, nil

	default:
		return nil, errs.NewValueIsInvalidError("order status")
	}
}
