package handlers

import (
	"encoding/json"
	"net/http"

	apporder "github.com/naturalbakery/shop/internal/application/order"
	"github.com/naturalbakery/shop/internal/ports/inbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// OrderHandlers handles order API requests
type OrderHandlers struct {
	orders inbound.OrderService
	logger *zap.Logger
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService inbound.OrderService, logger *zap.Logger) *OrderHandlers {
	return &OrderHandlers{
		orders: orderService,
		logger: logger.Named("order-handlers"),
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var cmd apporder.CreateOrderCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("Invalid JSON payload"))
		return
	}

	receipt, err := h.orders.CreateOrder(r.Context(), cmd)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Order created successfully",
		"order_id":     receipt.OrderID,
		"total_amount": receipt.TotalAmount,
	})
}

// ListOrders handles GET /api/orders and GET /api/admin/orders (admin)
func (h *OrderHandlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// GetOrder handles GET /api/orders/{id} and GET /api/admin/orders/{id}
// (admin)
func (h *OrderHandlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	order, items, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order": order,
		"items": items,
	})
}

// ListCustomers handles GET /api/admin/customers (admin)
func (h *OrderHandlers) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.orders.ListCustomers(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"customers": customers})
}
