package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "freightbid/internal/adapters/out/postgres"
	"freightbid/internal/adapters/out/postgres/bidrepo"
	"freightbid/internal/adapters/out/postgres/paymentrepo"
	"freightbid/internal/adapters/out/postgres/shipmentrepo"
	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work with a real PostgreSQL database. The main
// scenario is two units of work racing to accept different bids on the
// same shipment.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &bidrepo.BidDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, bids, payments").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsShipmentAndBidTogether() {
	ctx := context.Background()

	testShipment := suite.createBiddingShipment(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer uow.Rollback(ctx)

	testBid, err := bid.NewBid(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 450)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.BidRepository().Add(ctx, testBid))

	suite.Require().NoError(uow.Commit(ctx))

	persisted, err := suite.factory.Create().BidRepository().Get(ctx, testBid.ID())
	suite.Require().NoError(err)
	suite.Equal(testBid.ShipmentID(), persisted.ShipmentID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()

	testShipment := suite.createBiddingShipment(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testBid, err := bid.NewBid(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 450)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.BidRepository().Add(ctx, testBid))

	suite.Require().NoError(testShipment.Cancel())
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, testShipment))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.BidRepository().Get(ctx, testBid.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	reloaded, err := reader.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusBidding, reloaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_SecondWriterLoses() {
	ctx := context.Background()

	testShipment := suite.createBiddingShipment(ctx)

	bidOne, err := bid.NewBid(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 450)
	suite.Require().NoError(err)
	bidTwo, err := bid.NewBid(kernel.NewUUID(), testShipment.ID(), kernel.NewUUID(), 500)
	suite.Require().NoError(err)

	seeder := suite.factory.Create()
	suite.Require().NoError(seeder.Begin(ctx))
	suite.Require().NoError(seeder.BidRepository().Add(ctx, bidOne))
	suite.Require().NoError(seeder.BidRepository().Add(ctx, bidTwo))
	suite.Require().NoError(seeder.Commit(ctx))

	// Both units of work load the shipment at the same revision.
	uowOne := suite.factory.Create()
	suite.Require().NoError(uowOne.Begin(ctx))
	shipmentOne, err := uowOne.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	uowTwo := suite.factory.Create()
	suite.Require().NoError(uowTwo.Begin(ctx))
	shipmentTwo, err := uowTwo.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	// First accept wins and commits.
	suite.Require().NoError(shipmentOne.AcceptBid(bidOne.ID()))
	suite.Require().NoError(uowOne.ShipmentRepository().Update(ctx, shipmentOne))
	suite.Require().NoError(uowOne.Commit(ctx))

	// Second accept carries the stale version and fails the predicate.
	suite.Require().NoError(shipmentTwo.AcceptBid(bidTwo.ID()))
	err = uowTwo.ShipmentRepository().Update(ctx, shipmentTwo)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
	suite.Require().NoError(uowTwo.Rollback(ctx))

	reloaded, err := suite.factory.Create().ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusAccepted, reloaded.Status())
	suite.Require().NotNil(reloaded.AcceptedBidID())
	suite.Equal(bidOne.ID(), *reloaded.AcceptedBidID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createBiddingShipment(ctx context.Context) *shipment.Shipment {
	pickup, err := kernel.NewLocation(38.7578, 9.0107, "Merkato, Addis Ababa")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewLocation(38.7992, 8.9806, "Kality, Addis Ababa")
	suite.Require().NoError(err)
	receiver, err := shipment.NewReceiverInfo("Abebe Bikila", "+251911000000")
	suite.Require().NoError(err)

	details := shipment.Details{
		Pickup:          pickup,
		Dropoff:         dropoff,
		Receiver:        receiver,
		ItemDescription: "furniture",
		WeightKg:        120,
		Urgency:         shipment.UrgencyMedium,
		VehicleRequirements: []identity.VehicleType{
			identity.VehiclePickup,
		},
	}

	testShipment, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), details)
	suite.Require().NoError(err)
	suite.Require().NoError(testShipment.Publish())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Commit(ctx))

	return testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
