package http

import (
	"time"

	"quickdish/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	MenuID        string   `json:"menu_id"`
	Quantity      int      `json:"quantity"`
	ExtraRequests string   `json:"extra_requests"`
	OptionIDs     []string `json:"option_ids"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	RestaurantID string                   `json:"restaurant_id"`
	Items        []CreateOrderItemRequest `json:"items"`
}

// CreateOrderResponse returns the identity of the freshly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:id/status.
// Action is one of "cancel", "settle", "prepare", "ready"; Reason is only
// meaningful for cancellations.
type UpdateOrderStatusRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// StatusResponse is the flattened status payload of one order. Only the
// fields matching the current status are set.
type StatusResponse struct {
	Status      string     `json:"status"`
	PreparedAt  *time.Time `json:"prepared_at,omitempty"`
	ReadyAt     *time.Time `json:"ready_at,omitempty"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
	CancelledBy *string    `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
}

// OrderItemResponse is one order line in a listing.
type OrderItemResponse struct {
	ID            string   `json:"id"`
	MenuID        string   `json:"menu_id"`
	Quantity      int      `json:"quantity"`
	ExtraRequests string   `json:"extra_requests"`
	OptionIDs     []string `json:"option_ids"`
}

// OrderResponse is one order in a listing.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	RestaurantID string              `json:"restaurant_id"`
	OrderedAt    time.Time           `json:"ordered_at"`
	PricePaid    string              `json:"price_paid"`
	Status       StatusResponse      `json:"status"`
	Items        []OrderItemResponse `json:"items"`
}

// statusResponseFromView flattens a status read model into its wire form.
func statusResponseFromView(view queries.StatusView) StatusResponse {
	response := StatusResponse{
		Status:      view.Flag.String(),
		PreparedAt:  view.PreparedAt,
		ReadyAt:     view.ReadyAt,
		SettledAt:   view.SettledAt,
		CancelledAt: view.CancelledAt,
		Reason:      view.Reason,
	}

	if view.CancelledBy != nil {
		by := view.CancelledBy.String()
		response.CancelledBy = &by
	}

	return response
}

// orderResponseFromView maps an order read model into its wire form.
func orderResponseFromView(view queries.OrderView) OrderResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		optionIDs := make([]string, 0, len(item.OptionIDs))
		for _, optionID := range item.OptionIDs {
			optionIDs = append(optionIDs, optionID.String())
		}

		items = append(items, OrderItemResponse{
			ID:            item.ID.String(),
			MenuID:        item.MenuID.String(),
			Quantity:      item.Quantity,
			ExtraRequests: item.ExtraRequests,
			OptionIDs:     optionIDs,
		})
	}

	return OrderResponse{
		ID:           view.ID.String(),
		CustomerID:   view.CustomerID.String(),
		RestaurantID: view.RestaurantID.String(),
		OrderedAt:    view.OrderedAt,
		PricePaid:    view.PricePaid.String(),
		Status:       statusResponseFromView(view.Status),
		Items:        items,
	}
}
