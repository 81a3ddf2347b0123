package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency for tests
// that exercise the repository outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OrderRepositoryIntegrationTestSuite tests the GORM order repository
// against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// SetupSuite initializes the PostgreSQL container and database connection.
func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

// SetupTest ensures clean database state before each test.
func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container.
func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := createTestOrder(suite.T())

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal("cust-1", retrieved.CustomerReference())
	suite.Equal(order.Pending, retrieved.Status())

	items := retrieved.Items()
	suite.Require().Len(items, 1)
	suite.Equal("p1", items[0].ProductID())
	suite.Equal(2, items[0].Quantity())
	suite.True(items[0].Price().Equal(decimal.RequireFromString("9.99")))

	suite.WithinDuration(testOrder.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
	suite.WithinDuration(testOrder.UpdatedAt(), retrieved.UpdatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_MultipleItems() {
	ctx := context.Background()

	item1, err := order.NewItem("p1", 2, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)
	item2, err := order.NewItem("p2", 1, decimal.RequireFromString("120.50"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), "cust-2", []order.Item{item1, item2})
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	items := retrieved.Items()
	suite.Require().Len(items, 2)

	products := map[string]int{}
	for _, item := range items {
		products[item.ProductID()] = item.Quantity()
	}
	suite.Equal(map[string]int{"p1": 2, "p2": 1}, products)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusChange() {
	ctx := context.Background()
	testOrder := createTestOrder(suite.T())

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.ChangeStatus(order.Confirmed)
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.True(retrieved.UpdatedAt().After(retrieved.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testOrder := createTestOrder(suite.T())

	err := suite.repo.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates a valid pending order for testing purposes.
func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("p1", 2, decimal.RequireFromString("9.99"))
	if err != nil {
		t.Fatal(err)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), "cust-1", []order.Item{item})
	if err != nil {
		t.Fatal(err)
	}

	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
