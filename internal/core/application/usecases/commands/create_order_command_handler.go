package commands

import (
	"context"
	"time"

	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the catalog references in the command, delegates validation and
// pricing to the order assembler, and persists the result atomically.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order with its items and options is now persisted in ORDERED status
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	assembler  services.OrderAssembler
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assembler:  services.NewOrderAssembler(),
	}
}

// Handle processes the order placement command.
//
// All catalog resolution and validation runs inside one transaction, and
// no row is written until every item has validated: a failure on a later
// item leaves nothing behind. Catalog misses surface as ObjectNotFoundError
// and structural violations as ValueIsInvalidError, each naming the entity.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()

	rest, err := restaurantRepo.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	// Items are resolved and validated one at a time, in payload order, so
	// the first violation is reported before any later item is touched.
	total := kernel.ZeroMoney()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		menu, err := restaurantRepo.GetMenu(ctx, item.MenuID)
		if err != nil {
			return err
		}

		customizations, err := restaurantRepo.GetMenuCustomizations(ctx, menu.ID())
		if err != nil {
			return err
		}

		options := make([]services.ResolvedOption, 0, len(item.OptionIDs))
		for _, optionID := range item.OptionIDs {
			option, customization, err := restaurantRepo.GetOptionWithCustomization(ctx, optionID)
			if err != nil {
				return err
			}
			options = append(options, services.ResolvedOption{
				Option:        option,
				Customization: customization,
			})
		}

		orderItem, price, err := h.assembler.AssembleItem(rest, services.ItemSelection{
			Menu:           menu,
			Quantity:       item.Quantity,
			ExtraRequests:  item.ExtraRequests,
			Options:        options,
			Customizations: customizations,
		})
		if err != nil {
			return err
		}

		items = append(items, orderItem)
		total = total.Add(price)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), rest.ID(),
		time.Now().UTC(), total, items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
