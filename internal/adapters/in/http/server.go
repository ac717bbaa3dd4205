package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server exposes the fulfillment use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	adjustStockHandler      commands.AdjustStockCommandHandler
	transferStockHandler    commands.TransferStockCommandHandler
	paymentDecisionHandler  commands.RecordPaymentDecisionCommandHandler
	advanceStatusHandler    commands.AdvanceOrderStatusCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	markDeliveredHandler    commands.MarkDeliveredCommandHandler
	addDriverHandler        commands.AddDriverCommandHandler
	updateDriverDutyHandler commands.UpdateDriverDutyCommandHandler

	// Query handlers
	getStockHandler      queries.GetStockQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	trackOrderHandler    queries.TrackOrderQueryHandler
	getAllDriversHandler queries.GetAllDriversQueryHandler
	getKPIStatsHandler   queries.GetKPIStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	adjustStockHandler commands.AdjustStockCommandHandler,
	transferStockHandler commands.TransferStockCommandHandler,
	paymentDecisionHandler commands.RecordPaymentDecisionCommandHandler,
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	addDriverHandler commands.AddDriverCommandHandler,
	updateDriverDutyHandler commands.UpdateDriverDutyCommandHandler,
	getStockHandler queries.GetStockQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getKPIStatsHandler queries.GetKPIStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		adjustStockHandler:      adjustStockHandler,
		transferStockHandler:    transferStockHandler,
		paymentDecisionHandler:  paymentDecisionHandler,
		advanceStatusHandler:    advanceStatusHandler,
		assignDriverHandler:     assignDriverHandler,
		markDeliveredHandler:    markDeliveredHandler,
		addDriverHandler:        addDriverHandler,
		updateDriverDutyHandler: updateDriverDutyHandler,
		getStockHandler:         getStockHandler,
		getOrdersHandler:        getOrdersHandler,
		trackOrderHandler:       trackOrderHandler,
		getAllDriversHandler:    getAllDriversHandler,
		getKPIStatsHandler:      getKPIStatsHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance. Tracking is
// public; everything else requires a bearer token, and the back-office
// surface additionally requires a staff role.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.GET("/orders/:orderId/track", s.TrackOrder)

	authed := api.Group("", RequireAuth(jwtSecret))
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.GetOrders)
	authed.PATCH("/orders/:orderId/status", s.AdvanceOrderStatus)
	authed.GET("/stats", s.GetKPIStats)

	staff := authed.Group("", RequireStaff())
	staff.PATCH("/orders/:orderId/payment", s.RecordPaymentDecision)
	staff.POST("/orders/:orderId/assign", s.AssignDriver)
	staff.POST("/orders/:orderId/delivered", s.MarkDelivered)
	staff.GET("/stock/:location", s.GetStock)
	staff.POST("/stock/adjust", s.AdjustStock)
	staff.POST("/stock/transfer", s.TransferStock)
	staff.GET("/drivers", s.GetAllDrivers)
	staff.POST("/drivers", s.AddDriver)
	staff.PATCH("/drivers/:driverId/duty", s.UpdateDriverDuty)
}

// CreateOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	customer, err := order.NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.CustomerAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(customer, items, method, req.Receipt)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - order summaries, scoped by role.
// Staff see everything; customers only their own orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(callerRole(ctx), callerEmail(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// TrackOrder handles GET /api/v1/orders/:orderId/track - the public
// tracking timeline for one order.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	tracking, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tracking)
}

// RecordPaymentDecision handles PATCH /api/v1/orders/:orderId/payment -
// approves or rejects a bank-transfer payment under review.
func (s *Server) RecordPaymentDecision(ctx echo.Context) error {
	var req PaymentDecisionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	decision, err := order.ParsePaymentStatus(req.Decision)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentDecisionCommand(orderID, decision)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.paymentDecisionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/:orderId/status - moves
// an order along its lifecycle. Customers may only cancel their own
// pending orders; the core enforces the role rules.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	target, err := order.ParseStatus(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target, callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderId/assign - dispatches a
// processing order with an available driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var req AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID, err := kernel.ParseOrderID(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:orderId/delivered - completes
// an in-transit order and frees its driver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStock handles GET /api/v1/stock/:location - ledger records for one
// distribution center.
func (s *Server) GetStock(ctx echo.Context) error {
	location, err := kernel.ParseRDC(ctx.Param("location"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetStockQuery(location)
	if err != nil {
		return respondError(ctx, err)
	}

	records, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, records)
}

// AdjustStock handles POST /api/v1/stock/adjust - applies a signed delta
// to one ledger record.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req AdjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	location, err := kernel.ParseRDC(req.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(location, req.ProductID, req.Delta)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.adjustStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransferStock handles POST /api/v1/stock/transfer - moves quantity
// between two centers atomically.
func (s *Server) TransferStock(ctx echo.Context) error {
	var req TransferStockRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	from, err := kernel.ParseRDC(req.From)
	if err != nil {
		return respondError(ctx, err)
	}

	to, err := kernel.ParseRDC(req.To)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransferStockCommand(from, to, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.transferStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllDrivers handles GET /api/v1/drivers - the driver registry.
func (s *Server) GetAllDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, drivers)
}

// AddDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) AddDriver(ctx echo.Context) error {
	var req AddDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAddDriverCommand(kernel.NewUUID(), req.Name, req.Phone, req.VehicleNo, req.LicenseNo)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateDriverDuty handles PATCH /api/v1/drivers/:driverId/duty - toggles
// a driver between Available and OffDuty.
func (s *Server) UpdateDriverDuty(ctx echo.Context) error {
	var req DriverDutyRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return respondError(ctx, err)
	}

	target, err := driver.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverDutyCommand(driverID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDriverDutyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKPIStats handles GET /api/v1/stats - the admin dashboard aggregates.
func (s *Server) GetKPIStats(ctx echo.Context) error {
	query, err := queries.NewGetKPIStatsQuery(callerRole(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getKPIStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}
