package commands

import (
	"context"
	"time"
)

// UpdateOrderStatusCommandHandler handles role-gated order status
// transitions: load, authorize, apply the transition table, persist.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, actorID, order.RoleCustomer,
//	    order.NewCancelUpdate("changed my mind"))
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions. Requires a UoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
//
// The order and the owning restaurant are loaded in the same transaction
// that writes the new status. The write is guarded by the status the order
// had when it was loaded, so two concurrent transitions cannot both apply;
// the loser fails instead of silently overwriting.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().GetRestaurant(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.AuthorizeActor(cmd.ActorID(), cmd.Role(), rest.MerchantID()); err != nil {
		return err
	}

	fromStatus := aggregate.Status().Flag()
	if err = aggregate.ApplyUpdate(cmd.Role(), cmd.Update(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, fromStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
