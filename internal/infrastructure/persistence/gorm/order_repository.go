package gorm

import (
	"context"
	"errors"

	"github.com/naturalbakery/shop/internal/domain/order"
	"github.com/naturalbakery/shop/internal/ports/outbound"
	"gorm.io/gorm"
)

// OrderRepository implements order persistence using GORM
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) outbound.OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems inserts the order row and all its items in a single
// transaction, so a failed item insert rolls the order back too.
func (r *OrderRepository) CreateWithItems(ctx context.Context, o *order.Order, items []order.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := OrderToModel(o)
		model.CreatedAt = o.CreatedAt

		if err := tx.Create(model).Error; err != nil {
			return err
		}

		itemModels := make([]OrderItemModel, len(items))
		for i, item := range items {
			itemModels[i] = OrderItemModel{
				OrderID:      model.ID,
				IngredientID: item.IngredientID,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				Subtotal:     item.Subtotal,
			}
		}
		if err := tx.Create(&itemModels).Error; err != nil {
			return err
		}

		o.ID = model.ID
		o.CreatedAt = model.CreatedAt
		return nil
	})
}

// orderSummaryRow carries the list query result including the joined item
// count.
type orderSummaryRow struct {
	OrderModel
	ItemCount int
}

// List returns all orders newest first, each with its item count.
func (r *OrderRepository) List(ctx context.Context) ([]order.Summary, error) {
	var rows []orderSummaryRow

	err := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Select("orders.*, COUNT(order_items.id) AS item_count").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Group("orders.id").
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]order.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = order.Summary{
			Order:     ModelToOrder(&row.OrderModel),
			ItemCount: row.ItemCount,
		}
	}
	return summaries, nil
}

// FindByID finds an order by ID
func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, result.Error
	}

	o := ModelToOrder(&model)
	return &o, nil
}

// ItemsByOrderID returns the order's items joined with ingredient display
// fields.
func (r *OrderRepository) ItemsByOrderID(ctx context.Context, orderID uint) ([]order.ItemDetail, error) {
	var models []OrderItemModel

	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]order.ItemDetail, len(models))
	for i, m := range models {
		items[i] = order.ItemDetail{
			Item: order.Item{
				ID:           m.ID,
				OrderID:      m.OrderID,
				IngredientID: m.IngredientID,
				Quantity:     m.Quantity,
				UnitPrice:    m.UnitPrice,
				Subtotal:     m.Subtotal,
			},
			IngredientName: m.Ingredient.Name,
			IngredientUnit: m.Ingredient.Unit,
		}
	}
	return items, nil
}
