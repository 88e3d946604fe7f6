package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroTotals() {
	query := queries.NewGetOrderStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Counts)
	suite.Equal(int64(0), result.Total)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsPerStatusAcrossOwners() {
	firstOwner := kernel.NewUUID()
	secondOwner := kernel.NewUUID()

	suite.createOrder(firstOwner, order.Pending)
	suite.createOrder(firstOwner, order.Pending)
	suite.createOrder(secondOwner, order.Processing)
	suite.createOrder(secondOwner, order.Completed)

	query := queries.NewGetOrderStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(4), result.Total)

	counts := map[string]int64{}
	for _, c := range result.Counts {
		counts[c.Status] = c.Count
	}
	suite.Equal(int64(2), counts["pending"])
	suite.Equal(int64(1), counts["processing"])
	suite.Equal(int64(1), counts["completed"])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_ExcludesDeletedOrders() {
	ownerID := kernel.NewUUID()
	suite.createOrder(ownerID, order.Pending)
	deleted := suite.createOrder(ownerID, order.Pending)

	err := suite.orderRepo.Delete(context.Background(), deleted.ID(), ownerID)
	suite.Require().NoError(err)

	query := queries.NewGetOrderStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderStatsQuery constructor")
}

func (suite *GetOrderStatsQueryHandlerTestSuite) createOrder(ownerID kernel.UUID, status order.Status) *order.Order {
	widget, err := order.NewLineItem("Widget", 2, 100)
	suite.Require().NoError(err)
	gadget, err := order.NewLineItem("Gadget", 1, 50)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), ownerID, "Ada Lovelace",
		[]order.LineItem{widget, gadget}, 250.00, status)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
