package bidrepo_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/bidrepo"
	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

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

// BidRepositoryIntegrationTestSuite provides integration tests for
// BidRepository using PostgreSQL containers, mainly the unique index that
// enforces one bid per driver per shipment.
type BidRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bidrepo.GormBidRepository
	tracker    *MockAggregateTracker
}

func (suite *BidRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bidrepo.BidDTO{}))
}

func (suite *BidRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bids").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bidrepo.NewGormBidRepository(suite.db, suite.tracker)
}

func (suite *BidRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BidRepositoryIntegrationTestSuite) TestAdd_ValidBid_Success() {
	ctx := context.Background()

	testBid := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 450)
	suite.tracker.On("TrackAggregate", testBid.ID(), testBid).Once()

	err := suite.repository.Add(ctx, testBid)
	suite.Require().NoError(err)

	suite.assertBidCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestAdd_SameDriverSameShipment_ReturnsDuplicateBidError() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	first := suite.createTestBid(shipmentID, driverID, 450)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestBid(shipmentID, driverID, 500)
	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrDuplicateBid)

	suite.assertBidCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestAdd_SameDriverDifferentShipments_Success() {
	ctx := context.Background()

	driverID := kernel.NewUUID()

	first := suite.createTestBid(kernel.NewUUID(), driverID, 450)
	second := suite.createTestBid(kernel.NewUUID(), driverID, 600)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.tracker.On("TrackAggregate", second.ID(), second).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.assertBidCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGet_NonExistentBid_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BidRepositoryIntegrationTestSuite) TestUpdate_AcceptedBid_Persists() {
	ctx := context.Background()

	testBid := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 450)
	suite.tracker.On("TrackAggregate", testBid.ID(), testBid).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testBid))

	suite.Require().NoError(testBid.Accept())
	suite.tracker.On("TrackAggregate", testBid.ID(), testBid).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testBid))

	retrieved, err := suite.repository.Get(ctx, testBid.ID())
	suite.Require().NoError(err)
	suite.Equal(bid.StatusAccepted, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetPendingForShipment_FiltersResolvedBids() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()

	pending := suite.createTestBid(shipmentID, kernel.NewUUID(), 450)
	accepted := suite.createTestBid(shipmentID, kernel.NewUUID(), 500)
	other := suite.createTestBid(kernel.NewUUID(), kernel.NewUUID(), 550)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.Update(ctx, accepted))

	result, err := suite.repository.GetPendingForShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID(), result[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) TestGetForShipment_ReturnsNewestFirst() {
	ctx := context.Background()

	shipmentID := kernel.NewUUID()

	first := suite.createTestBid(shipmentID, kernel.NewUUID(), 450)
	time.Sleep(5 * time.Millisecond)
	second := suite.createTestBid(shipmentID, kernel.NewUUID(), 500)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	result, err := suite.repository.GetForShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(second.ID(), result[0].ID())
	suite.Equal(first.ID(), result[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BidRepositoryIntegrationTestSuite) createTestBid(
	shipmentID, driverID kernel.UUID, amount float64,
) *bid.Bid {
	testBid, err := bid.NewBid(kernel.NewUUID(), shipmentID, driverID, amount)
	suite.Require().NoError(err)
	return testBid
}

func (suite *BidRepositoryIntegrationTestSuite) assertBidCount(expected int) {
	var count int64
	err := suite.db.Model(&bidrepo.BidDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestBidRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BidRepositoryIntegrationTestSuite))
}
