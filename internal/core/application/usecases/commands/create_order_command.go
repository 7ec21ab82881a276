package commands

import (
	"errors"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateOrderItem is one proposed order line as the caller submits it:
// catalog references by id, a quantity, and optional free-text requests.
// Quantity and option membership are validated against the catalog by the
// handler, not here, so the error can name the offending menu.
type CreateOrderItem struct {
	MenuID        kernel.UUID
	Quantity      int
	ExtraRequests string
	OptionIDs     []kernel.UUID
}

// CreateOrderCommand represents a customer's request to place a new order
// at a restaurant. The order id is generated by the caller so the new
// order's identity is known before the command is handled.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, restaurantID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that all identifiers are valid and at least one item is given.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-generated identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the proposed order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.MenuID.Validate(); err != nil {
			return err
		}
		for _, optionID := range item.OptionIDs {
			if err := optionID.Validate(); err != nil {
				return err
			}
		}
	}

	c.items = make([]CreateOrderItem, len(items))
	copy(c.items, items)
	return nil
}
