package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence,
// owner scoping and soft-delete behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	ownerID    kernel.UUID
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.ownerID = kernel.NewUUID()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertLineItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID(), suite.ownerID)
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.True(suite.ownerID.IsEqual(retrievedOrder.OwnerID()))
	suite.Equal("Ada Lovelace", retrievedOrder.CustomerName())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.InDelta(250.00, retrievedOrder.TotalAmount(), 0.001)

	items := retrievedOrder.LineItems()
	suite.Require().Len(items, 2)
	suite.Equal("Widget", items[0].ProductName())
	suite.Equal(2, items[0].Quantity())
	suite.InDelta(100.00, items[0].UnitPrice(), 0.001)
	suite.Equal("Gadget", items[1].ProductName())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID(), suite.ownerID)

	suite.Require().Error(err)
	suite.Nil(retrievedOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ForeignOwner_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	otherOwner := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID(), otherOwner)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(retrievedOrder)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	retrievedOrder, err := txRepo.GetForUpdate(ctx, testOrder.ID(), suite.ownerID)

	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	replacement, err := order.NewLineItem("Sprocket", 3, 40)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.UpdateDetails("Grace Hopper", []order.LineItem{replacement}, 120.00))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID(), suite.ownerID)
	suite.Require().NoError(err)

	suite.Equal("Grace Hopper", retrievedOrder.CustomerName())
	suite.InDelta(120.00, retrievedOrder.TotalAmount(), 0.001)

	items := retrievedOrder.LineItems()
	suite.Require().Len(items, 1)
	suite.Equal("Sprocket", items[0].ProductName())

	suite.assertLineItemCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Processing))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID(), suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrievedOrder.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingOrder_HidesFromReads() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID(), suite.ownerID))

	_, err := suite.repository.Get(ctx, testOrder.ID(), suite.ownerID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// The row survives with a deletion marker; only scoped reads lose it.
	var total int64
	suite.Require().NoError(suite.db.Unscoped().Model(&orderrepo.OrderDTO{}).Count(&total).Error)
	suite.Equal(int64(1), total)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_Repeated_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID(), suite.ownerID))

	err := suite.repository.Delete(ctx, testOrder.ID(), suite.ownerID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ForeignOwner_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Delete(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Still visible to its owner.
	_, err = suite.repository.Get(ctx, testOrder.ID(), suite.ownerID)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeletedOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(suite.ownerID)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID(), suite.ownerID))

	suite.Require().NoError(testOrder.ChangeStatus(order.Processing))
	err := suite.repository.Update(ctx, testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(ownerID kernel.UUID) *order.Order {
	widget, err := order.NewLineItem("Widget", 2, 100)
	suite.Require().NoError(err)
	gadget, err := order.NewLineItem("Gadget", 1, 50)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), ownerID, "Ada Lovelace",
		[]order.LineItem{widget, gadget}, 250.00, order.Pending,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertLineItemCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
