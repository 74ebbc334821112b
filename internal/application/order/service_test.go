package order_test

import (
	"context"
	"testing"

	apporder "github.com/naturalbakery/shop/internal/application/order"
	"github.com/naturalbakery/shop/internal/domain/order"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"github.com/naturalbakery/shop/pkg/errors"
	"github.com/naturalbakery/shop/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*apporder.Service, *gorm.DB) {
	t.Helper()

	db := testutils.SetupTestDB(t)
	svc := apporder.NewService(
		gormRepo.NewOrderRepository(db),
		gormRepo.NewIngredientRepository(db),
		gormRepo.NewUserRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func TestCreateOrderComputesTotalFromCatalogPrices(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)
	butter := testutils.SeedIngredient(t, db, "無塩バター", "乳製品", "g", 3)

	receipt, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items: []order.Line{
			{IngredientID: flour.ID, Quantity: 2},
			{IngredientID: butter.ID, Quantity: 100},
		},
	})
	require.NoError(t, err)

	// 2kg x 200 + 100g x 3
	assert.Equal(t, 700.0, receipt.TotalAmount)
	assert.NotZero(t, receipt.OrderID)

	o, items, err := svc.GetOrder(ctx, receipt.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 700.0, o.TotalAmount)
	require.Len(t, items, 2)
	assert.Equal(t, 200.0, items[0].UnitPrice)
	assert.Equal(t, 400.0, items[0].Subtotal)
	assert.Equal(t, "強力粉", items[0].IngredientName)
	assert.Equal(t, "kg", items[0].IngredientUnit)
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)

	receipt, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items:         []order.Line{{IngredientID: flour.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// A later price change must not alter the stored snapshot.
	require.NoError(t, db.Model(&gormRepo.IngredientModel{}).
		Where("id = ?", flour.ID).
		Update("price_per_unit", 999).Error)

	o, items, err := svc.GetOrder(ctx, receipt.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, o.TotalAmount)
	require.Len(t, items, 1)
	assert.Equal(t, 200.0, items[0].UnitPrice)
	assert.Equal(t, 400.0, items[0].Subtotal)
}

func TestCreateOrderUnknownIngredientPersistsNothing(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)

	_, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items: []order.Line{
			{IngredientID: flour.ID, Quantity: 2},
			{IngredientID: 9999, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeIngredientNotFound))
	assert.Contains(t, err.Error(), "Ingredient 9999 not found")

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&gormRepo.OrderModel{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&gormRepo.OrderItemModel{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items:         []order.Line{},
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	_, err = svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerEmail: "taro@example.com",
		Items:         []order.Line{{IngredientID: 1, Quantity: 1}},
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))

	_, err = svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items:         []order.Line{{IngredientID: 1, Quantity: 0}},
	})
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestListOrdersNewestFirstWithItemCounts(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	flour := testutils.SeedIngredient(t, db, "強力粉", "粉類", "kg", 200)

	first, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "一番",
		CustomerEmail: "first@example.com",
		Items:         []order.Line{{IngredientID: flour.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "二番",
		CustomerEmail: "second@example.com",
		Items: []order.Line{
			{IngredientID: flour.ID, Quantity: 1},
			{IngredientID: flour.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	ids := []uint{orders[0].ID, orders[1].ID}
	assert.Contains(t, ids, first.OrderID)
	assert.Contains(t, ids, second.OrderID)

	for _, o := range orders {
		if o.ID == second.OrderID {
			assert.Equal(t, 2, o.ItemCount)
		} else {
			assert.Equal(t, 1, o.ItemCount)
		}
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.GetOrder(context.Background(), 42)
	assert.True(t, errors.Is(err, errors.CodeOrderNotFound))
}
