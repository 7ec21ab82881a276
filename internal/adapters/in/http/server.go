// Package http exposes the ordering use cases over an echo server.
// Identity arrives in upstream-verified headers: X-User-Id carries the
// actor's UUID, X-User-Role carries CUSTOMER or MERCHANT. The package maps
// domain errors to status codes and never leaks internal failures.
package http

import (
	"errors"
	"net/http"

	"quickdish/internal/core/application/usecases/commands"
	"quickdish/internal/core/application/usecases/queries"
	"quickdish/internal/core/domain/model/kernel"
	"quickdish/internal/core/domain/model/order"
	"quickdish/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names for the upstream-verified identity.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Server implements the HTTP surface of the ordering service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       *commands.CreateOrderCommandHandler
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderStatusHandler    queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler *commands.CreateOrderCommandHandler,
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
	}
}

// RegisterRoutes mounts the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/api/v1/orders/:id/status", s.GetOrderStatus)
	e.PATCH("/api/v1/orders/:id/status", s.UpdateOrderStatus)
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary		Place a new order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-User-Id	header	string	true	"Customer id"
//	@Param			X-User-Role	header	string	true	"Must be CUSTOMER"
//	@Param			body	body	CreateOrderRequest	true	"Order payload"
//	@Success		201	{object}	CreateOrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if role != order.RoleCustomer {
		return writeError(ctx, errs.NewUnauthorizedError("only customers can place orders"))
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := itemsFromRequest(request.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, restaurantID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
//
//	@Summary		List the actor's orders
//	@Tags			orders
//	@Produce		json
//	@Param			X-User-Id	header	string	true	"Actor id"
//	@Param			X-User-Role	header	string	true	"CUSTOMER or MERCHANT"
//	@Param			restaurant_id	query	string	false	"Filter by restaurant"
//	@Param			status	query	string	false	"Filter by status flag"
//	@Success		200	{array}	OrderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/api/v1/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var restaurantFilter *kernel.UUID
	if raw := ctx.QueryParam("restaurant_id"); raw != "" {
		id, filterErr := kernel.UUIDFromString(raw)
		if filterErr != nil {
			return writeError(ctx, filterErr)
		}
		restaurantFilter = &id
	}

	var statusFilter *order.StatusFlag
	if raw := ctx.QueryParam("status"); raw != "" {
		flag, filterErr := order.StatusFlagFromString(raw)
		if filterErr != nil {
			return writeError(ctx, filterErr)
		}
		statusFilter = &flag
	}

	query, err := queries.NewGetOrdersQuery(actorID, role, restaurantFilter, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, orderResponseFromView(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatus handles GET /api/v1/orders/:id/status.
//
//	@Summary		Read one order's status
//	@Tags			orders
//	@Produce		json
//	@Param			X-User-Id	header	string	true	"Actor id"
//	@Param			X-User-Role	header	string	true	"CUSTOMER or MERCHANT"
//	@Param			id	path	string	true	"Order id"
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/orders/{id}/status [get]
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderStatusQuery(orderID, actorID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponseFromView(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
//
//	@Summary		Move an order through its lifecycle
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-User-Id	header	string	true	"Actor id"
//	@Param			X-User-Role	header	string	true	"CUSTOMER or MERCHANT"
//	@Param			id	path	string	true	"Order id"
//	@Param			body	body	UpdateOrderStatusRequest	true	"Requested transition"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/orders/{id}/status [patch]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	update, err := updateFromRequest(request)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, role, update)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorFromRequest extracts the verified identity headers.
func actorFromRequest(ctx echo.Context) (kernel.UUID, order.Role, error) {
	actorID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown, err
	}

	role, err := order.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown, err
	}

	return actorID, role, nil
}

// itemsFromRequest maps the request items into command items.
func itemsFromRequest(requested []CreateOrderItemRequest) ([]commands.CreateOrderItem, error) {
	items := make([]commands.CreateOrderItem, 0, len(requested))
	for _, item := range requested {
		menuID, err := kernel.UUIDFromString(item.MenuID)
		if err != nil {
			return nil, err
		}

		optionIDs := make([]kernel.UUID, 0, len(item.OptionIDs))
		for _, raw := range item.OptionIDs {
			optionID, optionErr := kernel.UUIDFromString(raw)
			if optionErr != nil {
				return nil, optionErr
			}
			optionIDs = append(optionIDs, optionID)
		}

		items = append(items, commands.CreateOrderItem{
			MenuID:        menuID,
			Quantity:      item.Quantity,
			ExtraRequests: item.ExtraRequests,
			OptionIDs:     optionIDs,
		})
	}

	return items, nil
}

// updateFromRequest maps the requested action into a status update.
func updateFromRequest(request UpdateOrderStatusRequest) (order.StatusUpdate, error) {
	kind, err := order.UpdateKindFromString(request.Action)
	if err != nil {
		return order.StatusUpdate{}, err
	}

	switch kind {
	case order.UpdateCancel:
		return order.NewCancelUpdate(request.Reason), nil
	case order.UpdateSettle:
		return order.NewSettleUpdate(), nil
	case order.UpdateMarkPreparing:
		return order.NewMarkPreparingUpdate(), nil
	case order.UpdateMarkReady:
		return order.NewMarkReadyUpdate(), nil
	default:
		return order.StatusUpdate{}, errs.NewValueIsInvalidError("status update")
	}
}

// writeError maps domain errors onto HTTP status codes. Broken invariants
// and unexpected failures become an opaque 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
