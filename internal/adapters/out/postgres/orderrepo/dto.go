// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order aggregate spans several tables: the order row
// itself, its line items, the options selected per item, and one satellite
// row per status transition the order has gone through.
package orderrepo

import (
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column stores the wire form of the status flag; the payload of
// non-initial statuses lives in the satellite tables.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	OrderedAt    time.Time
	PricePaid    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status       string          `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item of an order.
type OrderItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	MenuID        uuid.UUID `gorm:"type:uuid"`
	Quantity      int
	ExtraRequests string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderOptionDTO represents one option selected on a line item.
type OrderOptionDTO struct {
	OrderItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OptionID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for selected option entities.
func (OrderOptionDTO) TableName() string {
	return "order_options"
}

// PreparingOrderDTO is the satellite record written when an order enters the
// preparing status.
type PreparingOrderDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PreparedAt time.Time
}

// TableName specifies the database table name for preparing satellites.
func (PreparingOrderDTO) TableName() string {
	return "preparing_orders"
}

// ReadyOrderDTO is the satellite record written when an order becomes ready.
type ReadyOrderDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReadyAt time.Time
}

// TableName specifies the database table name for ready satellites.
func (ReadyOrderDTO) TableName() string {
	return "ready_orders"
}

// SettledOrderDTO is the satellite record written when an order is settled.
type SettledOrderDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SettledAt time.Time
}

// TableName specifies the database table name for settled satellites.
func (SettledOrderDTO) TableName() string {
	return "settled_orders"
}

// CancelledOrderDTO is the satellite record written when an order is
// cancelled. It keeps who cancelled, when, and the free-text reason.
type CancelledOrderDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CancelledBy string
	CancelledAt time.Time
	Reason      string
}

// TableName specifies the database table name for cancelled satellites.
func (CancelledOrderDTO) TableName() string {
	return "cancelled_orders"
}

// fromDomain converts an order aggregate to its relational representation:
// the order row, its item rows, and the selected option rows.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO, []OrderOptionDTO) {
	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		OrderedAt:    aggregate.OrderedAt(),
		PricePaid:    aggregate.PricePaid().Amount(),
		Status:       aggregate.Status().Flag().String(),
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	var optionDTOs []OrderOptionDTO
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       dto.ID,
			MenuID:        item.MenuID().Bytes(),
			Quantity:      item.Quantity(),
			ExtraRequests: item.ExtraRequests(),
		})
		for _, selected := range item.Options() {
			optionDTOs = append(optionDTOs, OrderOptionDTO{
				OrderItemID: item.ID().Bytes(),
				OptionID:    selected.OptionID().Bytes(),
			})
		}
	}

	return dto, itemDTOs, optionDTOs
}

// satelliteFromStatus builds the satellite row for the given status payload.
// The initial ordered status has no satellite; nil is returned for it.
func satelliteFromStatus(orderID uuid.UUID, status order.Status) any {
	switch s := status.(type) {
	case order.Preparing:
		return &PreparingOrderDTO{OrderID: orderID, PreparedAt: s.PreparedAt}
	case order.Ready:
		return &ReadyOrderDTO{OrderID: orderID, ReadyAt: s.ReadyAt}
	case order.Settled:
		return &SettledOrderDTO{OrderID: orderID, SettledAt: s.SettledAt}
	case order.Cancelled:
		return &CancelledOrderDTO{
			OrderID:     orderID,
			CancelledBy: s.By.String(),
			CancelledAt: s.CancelledAt,
			Reason:      s.Reason,
		}
	default:
		return nil
	}
}

// toDomain converts the relational rows back into an order aggregate.
// The item option rows must already be grouped by item id.
func toDomain(
	dto OrderDTO,
	itemDTOs []OrderItemDTO,
	optionsByItem map[uuid.UUID][]OrderOptionDTO,
	status order.Status,
) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	pricePaid, err := kernel.NewMoney(dto.PricePaid)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO, optionsByItem[itemDTO.ID])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, restaurantID, dto.OrderedAt, pricePaid, status, items)
}

func itemToDomain(dto OrderItemDTO, optionDTOs []OrderOptionDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.SelectedOption, 0, len(optionDTOs))
	for _, optionDTO := range optionDTOs {
		optionID, optionErr := kernel.UUIDFromBytes(optionDTO.OptionID[:])
		if optionErr != nil {
			return order.Item{}, optionErr
		}

		selected, optionErr := order.NewSelectedOption(optionID)
		if optionErr != nil {
			return order.Item{}, optionErr
		}
		options = append(options, selected)
	}

	return order.NewItem(id, menuID, dto.Quantity, dto.ExtraRequests, options)
}
