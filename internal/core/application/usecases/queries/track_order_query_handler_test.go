package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackOrderQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	handler    queries.TrackOrderQueryHandler
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.TrackingEventDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewTrackOrderQueryHandler(db)
}

func (suite *TrackOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, tracking_events").Error
	suite.Require().NoError(err)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFoundError() {
	orderID, err := kernel.ParseOrderID("CBC99999")
	suite.Require().NoError(err)

	query, err := queries.NewTrackOrderQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Nil(result)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_FreshOrder_ShowsPlaceholdersAndFirstStageOnly() {
	aggregate := newCardOrder(&suite.Suite, 42, "nimal@example.com", time.Now())
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))

	result, err := suite.handler.Handle(context.Background(), suite.trackQuery("cbc00042"))

	suite.Require().NoError(err)
	suite.Equal("CBC00042", result.OrderID)
	suite.Equal("Pending", result.Status)
	suite.Equal(queries.ETADefault, result.ETA)
	suite.Equal(order.DefaultOriginRDC, result.Origin)
	suite.Equal("12 Galle Rd, Colombo", result.Destination)

	suite.Equal(order.DriverNamePending, result.Driver.Name)
	suite.Equal(order.DriverFieldPlaceholder, result.Driver.Phone)
	suite.Equal(order.DriverFieldPlaceholder, result.Driver.VehicleNo)

	suite.Require().Len(result.Timeline, 5)
	suite.Equal("Order Placed", result.Timeline[0].Status)
	suite.True(result.Timeline[0].Completed)
	suite.Require().NotNil(result.Timeline[0].Date)
	suite.WithinDuration(aggregate.PlacedAt(), *result.Timeline[0].Date, time.Second)

	for _, stage := range result.Timeline[1:] {
		suite.False(stage.Completed, "stage %s", stage.Status)
		suite.False(stage.Current, "stage %s", stage.Status)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_PromisedDate_OverridesDefaultETA() {
	aggregate := newCardOrder(&suite.Suite, 42, "nimal@example.com", time.Now())
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))

	promised := time.Date(2026, time.September, 12, 12, 0, 0, 0, time.UTC)
	err := suite.db.Exec(
		"UPDATE orders SET estimated_delivery = ? WHERE order_id = ?",
		promised, "CBC00042",
	).Error
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), suite.trackQuery("CBC00042"))

	suite.Require().NoError(err)
	suite.Equal("Sat Sep 12 2026", result.ETA)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_InTransitOrder_MarksCurrentStage() {
	now := time.Now()
	aggregate := newCardOrder(&suite.Suite, 42, "nimal@example.com", now)
	suite.Require().NoError(aggregate.AdvanceTo(order.Processing, now))

	info, err := order.NewDriverInfo("Kasun Silva", "0719876543", "WP-AB-4455")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AssignDriver(info, now))
	suite.Require().NoError(aggregate.AdvanceTo(order.InTransit, now))

	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))

	result, err := suite.handler.Handle(context.Background(), suite.trackQuery("CBC00042"))

	suite.Require().NoError(err)
	suite.Equal("In transit", result.Status)
	suite.Equal("Kasun Silva", result.Driver.Name)
	suite.Equal("0719876543", result.Driver.Phone)
	suite.Equal("WP-AB-4455", result.Driver.VehicleNo)

	completed := make([]bool, 0, 5)
	for _, stage := range result.Timeline {
		completed = append(completed, stage.Completed)
	}
	suite.Equal([]bool{true, true, true, true, false}, completed)

	suite.True(result.Timeline[3].Current)
	suite.False(result.Timeline[4].Current)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_DeliveredOrder_CompletesAllStages() {
	now := time.Now()
	aggregate := newCardOrder(&suite.Suite, 42, "nimal@example.com", now)

	info, err := order.NewDriverInfo("Kasun Silva", "0719876543", "WP-AB-4455")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AssignDriver(info, now))
	suite.Require().NoError(aggregate.MarkDelivered(now))

	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))

	result, err := suite.handler.Handle(context.Background(), suite.trackQuery("CBC00042"))

	suite.Require().NoError(err)
	suite.Equal("Delivered", result.Status)
	for _, stage := range result.Timeline {
		suite.True(stage.Completed, "stage %s", stage.Status)
		suite.False(stage.Current, "stage %s", stage.Status)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_CanceledOrder_ShowsNoProgressBeyondPlacement() {
	now := time.Now()
	aggregate := newCardOrder(&suite.Suite, 42, "nimal@example.com", now)
	suite.Require().NoError(aggregate.Cancel(now))

	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))

	result, err := suite.handler.Handle(context.Background(), suite.trackQuery("CBC00042"))

	suite.Require().NoError(err)
	suite.Equal("Canceled", result.Status)
	suite.True(result.Timeline[0].Completed)
	for _, stage := range result.Timeline[1:] {
		suite.False(stage.Completed, "stage %s", stage.Status)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TrackOrderQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewTrackOrderQuery constructor")
}

func (suite *TrackOrderQueryHandlerTestSuite) trackQuery(raw string) queries.TrackOrderQuery {
	orderID, err := kernel.ParseOrderID(raw)
	suite.Require().NoError(err)

	query, err := queries.NewTrackOrderQuery(orderID)
	suite.Require().NoError(err)
	return query
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
