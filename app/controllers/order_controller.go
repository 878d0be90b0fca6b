package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/bind"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
)

// OrderController maps the order endpoints onto the order service and
// translates the service error taxonomy into HTTP statuses.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type createOrderRequest struct {
	OrderDescription string  `json:"orderDescription" validate:"required,max=100"`
	ProductIDs       *[]uint `json:"productIds"`
}

type updateOrderRequest struct {
	OrderDescription *string `json:"orderDescription" validate:"nullable,max=100"`
	ProductIDs       *[]uint `json:"productIds"`
}

// List handles GET /api/order.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch orders failed", "error", err)
		response.Internal(w, "Failed to fetch orders")
		return
	}

	response.JSON(w, orders)
}

// Get handles GET /api/order/{id}.
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := c.service.Get(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, "Order not found")
	case errors.Is(err, services.ErrInvalidArgument):
		response.BadRequest(w, "Invalid id")
	case err != nil:
		logger.WithCtx(r.Context()).Error("fetch order failed", "order_id", id, "error", err)
		response.Internal(w, "Failed to fetch order")
	default:
		response.JSON(w, order)
	}
}

// Create handles POST /api/orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	errs, err := bind.JSON(r, &body)
	if err != nil || len(errs) > 0 || body.ProductIDs == nil {
		response.BadRequest(w, "orderDescription and productIds are required")
		return
	}

	order, svcErr := c.service.Create(r.Context(), body.OrderDescription, *body.ProductIDs)
	switch {
	case errors.Is(svcErr, services.ErrInvalidArgument):
		response.BadRequest(w, "orderDescription and productIds are required")
	case svcErr != nil:
		logger.WithCtx(r.Context()).Error("create order failed", "error", svcErr)
		response.Internal(w, "Failed to create order")
	default:
		response.Created(w, order)
	}
}

// Update handles PUT /api/orders/{id}.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var body updateOrderRequest
	errs, err := bind.JSON(r, &body)
	if err != nil || len(errs) > 0 {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// An empty description means "leave it untouched", matching how the
	// frontend omits unchanged fields.
	desc := body.OrderDescription
	if desc != nil && strings.TrimSpace(*desc) == "" {
		desc = nil
	}

	order, svcErr := c.service.Update(r.Context(), id, desc, body.ProductIDs)
	switch {
	case errors.Is(svcErr, services.ErrNotFound):
		response.NotFound(w, "Order not found")
	case errors.Is(svcErr, services.ErrInvalidArgument):
		response.BadRequest(w, "Invalid request body")
	case svcErr != nil:
		logger.WithCtx(r.Context()).Error("update order failed", "order_id", id, "error", svcErr)
		response.Internal(w, "Failed to update order")
	default:
		response.JSON(w, order)
	}
}

// Delete handles DELETE /api/orders/{id}.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	err := c.service.Delete(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w, "Order not found")
	case errors.Is(err, services.ErrInvalidArgument):
		response.BadRequest(w, "Invalid id")
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete order failed", "order_id", id, "error", err)
		response.Internal(w, "Failed to delete order")
	default:
		response.NoContent(w)
	}
}

// parseID reads the {id} path parameter as a positive integer.
// Writes a 400 and returns ok=false when it is malformed.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
