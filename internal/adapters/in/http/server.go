// Package http exposes the order lifecycle over a JSON REST API.
// It coordinates between HTTP handlers and application use cases; all domain
// decisions live in the command and query handlers.
package http

import (
	"net/http"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the API's HTTP handlers.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	acceptOrderHandler      commands.AcceptOrderCommandHandler
	acceptByCodeHandler     commands.AcceptOrderByCodeCommandHandler
	setOrderStatusHandler   commands.SetOrderStatusCommandHandler
	pickupOrderHandler      commands.PickupOrderCommandHandler
	pickupByCodeHandler     commands.PickupOrderByCodeCommandHandler
	ensurePickupCodeHandler commands.EnsurePickupCodeCommandHandler
	purgeOrdersHandler      commands.PurgeOrdersCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	acceptByCodeHandler commands.AcceptOrderByCodeCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	pickupOrderHandler commands.PickupOrderCommandHandler,
	pickupByCodeHandler commands.PickupOrderByCodeCommandHandler,
	ensurePickupCodeHandler commands.EnsurePickupCodeCommandHandler,
	purgeOrdersHandler commands.PurgeOrdersCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		acceptByCodeHandler:     acceptByCodeHandler,
		setOrderStatusHandler:   setOrderStatusHandler,
		pickupOrderHandler:      pickupOrderHandler,
		pickupByCodeHandler:     pickupByCodeHandler,
		ensurePickupCodeHandler: ensurePickupCodeHandler,
		purgeOrdersHandler:      purgeOrdersHandler,
		listOrdersHandler:       listOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders", s.PurgeOrders)

	api.GET("/orders/:id/pickup-code", s.GetPickupCode)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/pickup", s.PickupOrder)
	api.POST("/orders/:id/status", s.SetOrderStatus)

	api.POST("/accept/by-code", s.AcceptByCode)
	api.POST("/pickup/by-code", s.PickupByCode)
}

// ListOrders handles GET /api/orders - retrieves all displayable orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := ListOrdersResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	details, err := request.toDetails()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// PurgeOrders handles DELETE /api/orders - removes the entire collection.
func (s *Server) PurgeOrders(ctx echo.Context) error {
	removed, err := s.purgeOrdersHandler.Handle(ctx.Request().Context(), commands.NewPurgeOrdersCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PurgeResponse{Success: true, Removed: removed})
}

// GetPickupCode handles GET /api/orders/:id/pickup-code - returns the order's
// pickup code, assigning one first if the order does not have it yet.
func (s *Server) GetPickupCode(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEnsurePickupCodeCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	withCode, err := s.ensurePickupCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PickupCodeResponse{
		ID:         withCode.ID().String(),
		PickupCode: withCode.PickupCode().String(),
	})
}

// AcceptOrder handles POST /api/orders/:id/accept - marks the order Accepted.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMutationResponse(accepted))
}

// AcceptByCode handles POST /api/accept/by-code - locates the order by its
// pickup code and moves it to Accepted if it has not progressed past Pending.
func (s *Server) AcceptByCode(ctx echo.Context) error {
	var request CodeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderByCodeCommand(request.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptByCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMutationResponse(accepted))
}

// SetOrderStatus handles POST /api/orders/:id/status - overwrites the order's
// status with the supplied label.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request StatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err = ctx.Validate(&request); err != nil {
		return writeError(ctx, err)
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMutationResponse(updated))
}

// PickupOrder handles POST /api/orders/:id/pickup - verifies the supplied
// code and marks the order Picked.
func (s *Server) PickupOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request CodeRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err = ctx.Validate(&request); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickupOrderCommand(id, request.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	picked, err := s.pickupOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMutationResponse(picked))
}

// PickupByCode handles POST /api/pickup/by-code - locates the order by its
// pickup code and marks it Picked.
func (s *Server) PickupByCode(ctx echo.Context) error {
	var request CodeRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&request); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPickupOrderByCodeCommand(request.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	picked, err := s.pickupByCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMutationResponse(picked))
}
