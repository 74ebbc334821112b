// Package order provides the application layer for order placement and
// the admin order console.
package order

import (
	"context"

	"github.com/naturalbakery/shop/internal/domain/order"
	"github.com/naturalbakery/shop/internal/domain/user"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"github.com/naturalbakery/shop/pkg/errors"
	"go.uber.org/zap"
)

// Service implements order use cases.
type Service struct {
	orders      outbound.OrderRepository
	ingredients outbound.IngredientRepository
	users       outbound.UserRepository
	logger      *zap.Logger
}

// NewService creates a new order service.
func NewService(
	orders outbound.OrderRepository,
	ingredients outbound.IngredientRepository,
	users outbound.UserRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		orders:      orders,
		ingredients: ingredients,
		users:       users,
		logger:      logger.Named("order-service"),
	}
}

// CreateOrderCommand is a new order request. Item prices are never
// accepted from the client; they are priced server side.
type CreateOrderCommand struct {
	CustomerName  string       `json:"customer_name"`
	CustomerEmail string       `json:"customer_email"`
	CustomerPhone string       `json:"customer_phone"`
	Notes         string       `json:"notes"`
	Items         []order.Line `json:"items"`
}

// Receipt is returned to the client after a successful order.
type Receipt struct {
	OrderID     uint    `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

// CreateOrder prices every line against the current catalog, computes
// the total and persists the order with its items in one transaction.
func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*Receipt, error) {
	if cmd.CustomerName == "" || cmd.CustomerEmail == "" {
		return nil, errors.NewValidationError(order.ErrMissingCustomer.Error())
	}
	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError(order.ErrNoItems.Error())
	}

	ids := make([]uint, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, errors.NewValidationError("item quantity must be positive")
		}
		ids = append(ids, line.IngredientID)
	}

	priced, err := s.priceLines(ctx, ids, cmd.Items)
	if err != nil {
		return nil, err
	}

	o := &order.Order{
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		CustomerPhone: cmd.CustomerPhone,
		Notes:         cmd.Notes,
		TotalAmount:   order.Total(priced),
	}

	items := make([]order.Item, 0, len(priced))
	for _, line := range priced {
		items = append(items, order.Item{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Subtotal:     line.Subtotal,
		})
	}

	if err := s.orders.CreateWithItems(ctx, o, items); err != nil {
		return nil, errors.NewDatabaseError("create order", err)
	}

	s.logger.Info("Order created",
		zap.Uint("order_id", o.ID),
		zap.Float64("total_amount", o.TotalAmount),
		zap.Int("item_count", len(items)),
	)

	return &Receipt{OrderID: o.ID, TotalAmount: o.TotalAmount}, nil
}

// priceLines reads each referenced ingredient once and snapshots its
// current unit price into the line. An unknown id aborts the whole order.
func (s *Service) priceLines(ctx context.Context, ids []uint, lines []order.Line) ([]order.PricedLine, error) {
	byID, err := s.ingredients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewDatabaseError("price order items", err)
	}

	priced := make([]order.PricedLine, 0, len(lines))
	for _, line := range lines {
		ingredient, ok := byID[line.IngredientID]
		if !ok {
			return nil, errors.NewIngredientNotFoundError(line.IngredientID)
		}
		priced = append(priced, order.PricedLine{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			UnitPrice:    ingredient.PricePerUnit,
			Subtotal:     ingredient.PricePerUnit * line.Quantity,
		})
	}
	return priced, nil
}

// ListOrders returns all orders, newest first, each with its item count.
func (s *Service) ListOrders(ctx context.Context) ([]order.Summary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list orders", err)
	}
	return orders, nil
}

// GetOrder returns an order and its line items with ingredient names
// resolved for display.
func (s *Service) GetOrder(ctx context.Context, id uint) (*order.Order, []order.ItemDetail, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if err == order.ErrOrderNotFound {
			return nil, nil, errors.NewOrderNotFoundError(id)
		}
		return nil, nil, errors.NewDatabaseError("fetch order", err)
	}

	items, err := s.orders.ItemsByOrderID(ctx, id)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("fetch order items", err)
	}

	return o, items, nil
}

// ListCustomers returns every registered account as a public projection.
func (s *Service) ListCustomers(ctx context.Context) ([]user.Public, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list customers", err)
	}

	customers := make([]user.Public, 0, len(users))
	for _, u := range users {
		customers = append(customers, u.Public())
	}
	return customers, nil
}
