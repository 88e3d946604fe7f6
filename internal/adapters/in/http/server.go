// Package http implements the inbound HTTP adapter. Server translates API
// requests into commands and queries and maps domain errors onto the API's
// error taxonomy: 404 for anything the caller cannot see, 400 for rejected
// status transitions, 422 for field validation failures.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"orders/internal/adapters/in/http/auth"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the generated ServerInterface. It coordinates between
// HTTP handlers and application use cases. Write operations return the
// resulting order by re-reading it through the single-order query, keeping
// commands write-only.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body.")
	}

	lineItems, err := mapLineItems(body.LineItems)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	status := order.Unknown
	if body.Status != nil {
		status, err = order.ParseStatus(string(*body.Status))
		if err != nil {
			return writeDomainError(ctx, err)
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, identity.UserID, identity.DisplayName, lineItems, body.TotalAmount, status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, identity)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return writeDomainError(ctx, parseErr)
		}
		status = &parsed
	}

	var from, to *time.Time
	if params.From != nil {
		from = &params.From.Time
	}
	if params.To != nil {
		to = &params.To.Time
	}

	page := 1
	if params.Page != nil {
		page = *params.Page
	}

	query, err := queries.NewListOrdersQuery(identity.UserID, status, from, to, page)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := servers.OrderList{
		Data: make([]servers.Order, 0, len(result.Orders)),
		Meta: servers.PageMeta{
			CurrentPage: result.Page,
			LastPage:    result.LastPage,
			PerPage:     result.PageSize,
			Total:       result.Total,
		},
	}
	for _, o := range result.Orders {
		response.Data = append(response.Data, toAPIOrder(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return orderNotFound(ctx)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, identity)
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return orderNotFound(ctx)
	}

	var body servers.UpdateOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body.")
	}

	lineItems, err := mapLineItems(body.LineItems)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, identity.UserID, identity.DisplayName, lineItems, body.TotalAmount)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, identity)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return orderNotFound(ctx)
	}

	var body servers.StatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body.")
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, identity.UserID, status)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, identity)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	identity, err := auth.FromContext(ctx)
	if err != nil {
		return unauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return orderNotFound(ctx)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, identity.UserID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Error{Message: "Deleted."})
}

// respondWithOrder reads the order through the single-order query and writes
// it with the given status code.
func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID, identity auth.Identity) error {
	query, err := queries.NewGetOrderQuery(orderID, identity.UserID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(code, toAPIOrder(result))
}

// mapLineItems converts API line items into domain value objects, which
// enforce the per-item validation rules.
func mapLineItems(items []servers.LineItem) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		lineItem, err := order.NewLineItem(item.ProductName, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, lineItem)
	}
	return lineItems, nil
}

func toAPIOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.LineItem, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		items = append(items, servers.LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return servers.Order{
		Id:           o.ID.Bytes(),
		CustomerName: o.CustomerName,
		Status:       servers.OrderStatus(o.Status),
		TotalAmount:  o.TotalAmount,
		LineItems:    items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// writeDomainError maps domain and application errors onto API responses.
// The order of checks mirrors the error taxonomy: invisibility first,
// transition rejections second, validation failures last.
func writeDomainError(ctx echo.Context, err error) error {
	var invalidTransition *order.InvalidTransitionError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return orderNotFound(ctx)

	case errors.As(err, &invalidTransition):
		return ctx.JSON(http.StatusBadRequest, servers.Error{Message: invalidTransition.Error()})

	case errors.Is(err, order.ErrCompletedOrderImmutable):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Message: "Completed orders cannot be updated.",
			Errors:  map[string][]string{"order": {"Completed orders cannot be updated."}},
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Message: "The given data was invalid.",
			Errors:  fieldErrors(err),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Message: "Internal server error."})
	}
}

// fieldErrors flattens an error tree into per-field message lists. Joined
// constructor errors contribute one entry per failing field.
func fieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)
	collectFieldErrors(err, fields)

	if len(fields) == 0 {
		fields["body"] = []string{err.Error()}
	}
	return fields
}

func collectFieldErrors(err error, fields map[string][]string) {
	switch e := err.(type) {
	case *errs.ValueIsRequiredError:
		fields[e.ParamName] = append(fields[e.ParamName],
			fmt.Sprintf("The %s field is required.", e.ParamName))
		return
	case *errs.ValueIsInvalidError:
		message := fmt.Sprintf("The %s field is invalid.", e.ParamName)
		if e.Cause != nil {
			message = fmt.Sprintf("The %s field is invalid: %s.", e.ParamName, e.Cause)
		}
		fields[e.ParamName] = append(fields[e.ParamName], message)
		return
	case *errs.ValueIsOutOfRangeError:
		fields[e.ParamName] = append(fields[e.ParamName],
			fmt.Sprintf("The %s field is out of range.", e.ParamName))
		return
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			collectFieldErrors(sub, fields)
		}
	case interface{ Unwrap() error }:
		if sub := e.Unwrap(); sub != nil {
			collectFieldErrors(sub, fields)
		}
	}
}

func unauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{Message: "Unauthenticated."})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{Message: "Order not found."})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Message: message})
}
