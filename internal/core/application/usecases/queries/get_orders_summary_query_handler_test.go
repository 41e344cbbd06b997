package queries_test

import (
	"context"
	"testing"
	"time"

	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersSummaryQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersSummaryQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeroTotals() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetOrdersSummaryQuery())

	suite.Require().NoError(err)
	suite.Empty(result.Counts)
	suite.Zero(result.Total)
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) TestHandle_MixedStatuses_CountsPerStatus() {
	ctx := context.Background()

	// 3 created, 2 shipped, 1 delivered
	statuses := []order.Status{
		order.Created, order.Created, order.Created,
		order.Shipped, order.Shipped,
		order.Delivered,
	}
	for _, status := range statuses {
		o, err := order.NewOrderWithStatus(kernel.NewOrderID(), status)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	result, err := suite.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())

	suite.Require().NoError(err)
	suite.Equal(int64(6), result.Total)
	suite.Len(result.Counts, 3)

	countsByStatus := make(map[string]int64)
	for _, sc := range result.Counts {
		countsByStatus[sc.Status] = sc.Count
	}
	suite.Equal(int64(3), countsByStatus[order.Created.String()])
	suite.Equal(int64(2), countsByStatus[order.Shipped.String()])
	suite.Equal(int64(1), countsByStatus[order.Delivered.String()])

	// Statuses with no orders are omitted entirely.
	suite.NotContains(countsByStatus, order.Processing.String())
}

func (suite *GetOrdersSummaryQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())

	suite.Require().Error(err)
}

func TestGetOrdersSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersSummaryQueryHandlerTestSuite))
}
