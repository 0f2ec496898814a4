package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, shipments").Error)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SkipsTerminalStatuses() {
	ctx := context.Background()

	pending := suite.addOrder(ctx)
	processed := suite.addOrder(ctx)
	suite.advance(ctx, processed, order.Processed)
	completed := suite.addOrder(ctx)
	suite.advance(ctx, completed, order.Processed)
	suite.advance(ctx, completed, order.Shipped)
	suite.advance(ctx, completed, order.Completed)
	cancelled := suite.addOrder(ctx)
	suite.advance(ctx, cancelled, order.Cancelled)

	resp, err := suite.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)
	suite.Len(resp, 2)

	ids := make([]string, 0, len(resp))
	for _, r := range resp {
		ids = append(ids, r.ID.String())
	}
	suite.Contains(ids, pending.ID().String())
	suite.Contains(ids, processed.ID().String())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_NoActiveOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	resp, err := suite.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(resp)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetActiveOrdersQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) addOrder(ctx context.Context) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, 15_000)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	return o
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) advance(
	ctx context.Context, o *order.Order, target order.Status,
) {
	var info *order.ShipmentInfo
	if target == order.Shipped {
		info = &order.ShipmentInfo{CourierName: "JNE"}
	}
	suite.Require().NoError(o.TransitionTo(target, info))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
