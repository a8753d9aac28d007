package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/shipmentrepo"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
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

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence
// behavior, in particular the version predicate on updates.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(shipment.StatusDraft, retrieved.Status())
	suite.Equal(original.Details().ItemDescription, retrieved.Details().ItemDescription)
	suite.Equal(original.Details().WeightKg, retrieved.Details().WeightKg)
	suite.Equal(original.Details().Urgency, retrieved.Details().Urgency)
	suite.Equal(original.Details().Pickup.Address(), retrieved.Details().Pickup.Address())
	suite.Equal(original.Details().Receiver.Name(), retrieved.Details().Receiver.Name())
	suite.Equal(original.Details().VehicleRequirements, retrieved.Details().VehicleRequirements)
	suite.Equal(original.Version(), retrieved.Version())
	suite.Nil(retrieved.AcceptedBidID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	loaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Publish())

	suite.tracker.On("TrackAggregate", loaded.ID(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusBidding, reloaded.Status())
	suite.Equal(original.Version()+1, reloaded.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	original := suite.createTestShipment()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two actors load the same revision.
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Publish())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second write carries the stale version and must lose.
	suite.Require().NoError(second.Publish())
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsVersionError() {
	ctx := context.Background()

	missing := suite.createTestShipment()
	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	pickup, err := kernel.NewLocation(38.7578, 9.0107, "Merkato, Addis Ababa")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewLocation(38.7992, 8.9806, "Kality, Addis Ababa")
	suite.Require().NoError(err)
	receiver, err := shipment.NewReceiverInfo("Abebe Bikila", "+251911000000")
	suite.Require().NoError(err)

	details := shipment.Details{
		Pickup:              pickup,
		Dropoff:             dropoff,
		Receiver:            receiver,
		VehicleRequirements: []identity.VehicleType{identity.VehiclePickup, identity.VehicleTruck},
		ItemDescription:     "furniture",
		WeightKg:            120,
		Urgency:             shipment.UrgencyMedium,
	}

	testShipment, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), details)
	suite.Require().NoError(err)
	return testShipment
}

func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
