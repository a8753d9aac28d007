package commands_test

import (
	"testing"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), shipmentID, driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newVerifiedDriver(t, driverID, identity.VehicleTruck), nil).Once()

	target := newBiddingShipment(t, shipmentID, customerID, identity.VehicleTruck)

	shipmentRepo := new(MockShipmentRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Add", mock.Anything, mock.AnythingOfType("*bid.Bid")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Send", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationNewBid && n.RecipientID.IsEqual(customerID)
	})).Return(nil).Once()

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, sink, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	bidRepo.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestSubmitBidCommandHandler_Handle_UnverifiedDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), kernel.NewUUID(), driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newUnverifiedDriver(t, driverID), nil).Once()

	factory := new(MockMarketUoWFactory)

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, new(MockNotificationSink), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitBidCommandHandler_Handle_CustomerForbidden(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), kernel.NewUUID(), customerID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, customerID).
		Return(newCustomer(t, customerID), nil).Once()

	h := commands.NewSubmitBidCommandHandler(
		new(MockMarketUoWFactory), identityStore, new(MockNotificationSink), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestSubmitBidCommandHandler_Handle_ShipmentNotBiddable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), shipmentID, driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newVerifiedDriver(t, driverID, identity.VehicleTruck), nil).Once()

	target := newAcceptedShipment(t, shipmentID, customerID, kernel.NewUUID())

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, new(MockNotificationSink), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrShipmentNotBiddable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSubmitBidCommandHandler_Handle_VehicleMismatch(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), shipmentID, driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newVerifiedDriver(t, driverID, identity.VehicleMotorbike), nil).Once()

	target := newBiddingShipment(t, shipmentID, customerID, identity.VehicleTruck)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, new(MockNotificationSink), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVehicleMismatch)
}

func TestSubmitBidCommandHandler_Handle_DriverWithoutVehicle_NotConstrained(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), shipmentID, driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newDriverWithoutVehicle(t, driverID), nil).Once()

	target := newBiddingShipment(t, shipmentID, customerID, identity.VehicleTruck)

	shipmentRepo := new(MockShipmentRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Add", mock.Anything, mock.AnythingOfType("*bid.Bid")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, sink, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	bidRepo.AssertExpectations(t)
}

func TestSubmitBidCommandHandler_Handle_DuplicateBid(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(kernel.NewUUID(), shipmentID, driverID, 350)
	require.NoError(t, err)

	identityStore := new(MockIdentityStore)
	identityStore.On("FindByID", ctx, driverID).
		Return(newVerifiedDriver(t, driverID, identity.VehicleTruck), nil).Once()

	target := newBiddingShipment(t, shipmentID, customerID)

	shipmentRepo := new(MockShipmentRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockMarketUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Add", mock.Anything, mock.AnythingOfType("*bid.Bid")).
			Return(errs.NewDuplicateBidError(shipmentID.String(), driverID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)

	h := commands.NewSubmitBidCommandHandler(factory, identityStore, sink, discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateBid)
	sink.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
