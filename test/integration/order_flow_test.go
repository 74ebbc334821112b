//go:build integration

// Package integration contains tests that run against real backing
// services via testcontainers. Run with: go test -tags=integration ./test/integration/...
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	apporder "github.com/naturalbakery/shop/internal/application/order"
	"github.com/naturalbakery/shop/internal/domain/order"
	gormRepo "github.com/naturalbakery/shop/internal/infrastructure/persistence/gorm"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type OrderFlowSuite struct {
	suite.Suite
	container testcontainers.Container
	db        *gorm.DB
	svc       *apporder.Service
}

func (s *OrderFlowSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       "naturalbakery_test",
				"POSTGRES_USER":     "test_user",
				"POSTGRES_PASSWORD": "test_password",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	dsn := fmt.Sprintf("host=%s port=%s user=test_user password=test_password dbname=naturalbakery_test sslmode=disable",
		host, port.Port())

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(gormRepo.AutoMigrate(db))

	s.svc = apporder.NewService(
		gormRepo.NewOrderRepository(db),
		gormRepo.NewIngredientRepository(db),
		gormRepo.NewUserRepository(db),
		zap.NewNop(),
	)
}

func (s *OrderFlowSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *OrderFlowSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE order_items, orders, ingredients RESTART IDENTITY CASCADE").Error)
}

func (s *OrderFlowSuite) seedFlour() gormRepo.IngredientModel {
	flour := gormRepo.IngredientModel{Name: "強力粉", Category: "粉類", Unit: "kg", PricePerUnit: 200}
	s.Require().NoError(s.db.Create(&flour).Error)
	return flour
}

func (s *OrderFlowSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	flour := s.seedFlour()

	receipt, err := s.svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items:         []order.Line{{IngredientID: flour.ID, Quantity: 2}},
	})
	s.Require().NoError(err)
	s.Equal(400.0, receipt.TotalAmount)

	o, items, err := s.svc.GetOrder(ctx, receipt.OrderID)
	s.Require().NoError(err)
	s.Equal(400.0, o.TotalAmount)
	s.Require().Len(items, 1)
	s.Equal("強力粉", items[0].IngredientName)
}

func (s *OrderFlowSuite) TestUnknownIngredientRollsBack() {
	ctx := context.Background()
	flour := s.seedFlour()

	_, err := s.svc.CreateOrder(ctx, apporder.CreateOrderCommand{
		CustomerName:  "山田太郎",
		CustomerEmail: "taro@example.com",
		Items: []order.Line{
			{IngredientID: flour.ID, Quantity: 1},
			{IngredientID: 9999, Quantity: 1},
		},
	})
	s.Require().Error(err)

	var count int64
	s.Require().NoError(s.db.Model(&gormRepo.OrderModel{}).Count(&count).Error)
	s.Zero(count)
}

func TestOrderFlowSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderFlowSuite))
}
