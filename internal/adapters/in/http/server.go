package http

import (
	"context"
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Handler interfaces keep the server decoupled from concrete use case types.
type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	updateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	getOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       createOrderHandler
	updateOrderStatusHandler updateOrderStatusHandler

	// Query handlers
	getOrderHandler getOrderHandler

	roleGate services.RoleGate
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler createOrderHandler,
	updateOrderStatusHandler updateOrderStatusHandler,
	getOrderHandler getOrderHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		roleGate:                 services.NewRoleGate(),
	}
}

// authorizeStaff evaluates the role gate for mutating endpoints. The gate is
// checked before the body is bound or validated: a caller who is denied gets
// 403 regardless of what else is wrong with the request.
func (s *Server) authorizeStaff(role services.Role) error {
	if !s.roleGate.Authorize(services.RoleStaff, role) {
		return errs.NewAccessForbiddenError("staff role required")
	}
	return nil
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	role := roleFrom(params.XUserRole)
	if err := s.authorizeStaff(role); err != nil {
		return s.mapError(ctx, err)
	}

	var newOrder servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Detail: "invalid request body",
		})
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, newItem := range newOrder.Items {
		item, err := order.NewItem(
			newItem.ProductId,
			newItem.Quantity,
			decimal.NewFromFloat(newItem.Price),
		)
		if err != nil {
			return s.mapError(ctx, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		newOrder.CustomerReference,
		items,
		role,
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - advances an order.
func (s *Server) UpdateOrderStatus(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.UpdateOrderStatusParams,
) error {
	role := roleFrom(params.XUserRole)
	if err := s.authorizeStaff(role); err != nil {
		return s.mapError(ctx, err)
	}

	var statusUpdate servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&statusUpdate); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Detail: "invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.mapError(ctx, err)
	}

	newStatus, err := order.StatusFromString(string(statusUpdate.NewStatus))
	if err != nil {
		return s.mapError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, role)
	if err != nil {
		return s.mapError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.mapError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	items := make([]servers.OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.InexactFloat64(),
		})
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:                response.ID.Bytes(),
		CustomerReference: response.CustomerReference,
		Items:             items,
		Status:            servers.OrderStatus(response.Status),
		CreatedAt:         response.CreatedAt,
		UpdatedAt:         response.UpdatedAt,
	})
}

// mapError translates domain and application errors to HTTP responses.
// Unknown errors are reported as 500 without leaking internals.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAccessForbidden):
		return ctx.JSON(http.StatusForbidden, servers.Error{Detail: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{Detail: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{Detail: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Detail: "internal server error",
		})
	}
}

// toOrderResponse maps an order aggregate to its API representation.
func toOrderResponse(aggregate *order.Order) servers.Order {
	domainItems := aggregate.Items()
	items := make([]servers.OrderItem, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price().InexactFloat64(),
		})
	}

	return servers.Order{
		Id:                aggregate.ID().Bytes(),
		CustomerReference: aggregate.CustomerReference(),
		Items:             items,
		Status:            servers.OrderStatus(aggregate.Status().String()),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// roleFrom extracts the role signal from the optional header parameter.
func roleFrom(headerValue *string) services.Role {
	if headerValue == nil {
		return ""
	}
	return services.Role(*headerValue)
}
