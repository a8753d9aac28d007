package commands_test

import (
	"testing"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelShipmentCommandHandler_Handle_RejectsOpenBids(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	bidderID := kernel.NewUUID()
	cmd, err := commands.NewCancelShipmentCommand(shipmentID, customerID)
	require.NoError(t, err)

	target := newBiddingShipment(t, shipmentID, customerID)
	open := newPendingLedgerBid(t, kernel.NewUUID(), shipmentID, bidderID, 300)

	shipmentRepo := new(MockShipmentRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockMarketUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("BidRepository").Return(bidRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	shipmentRepo.On("Get", mock.Anything, shipmentID).Return(target, nil).Once()
	shipmentRepo.On("Update", mock.Anything, target).Return(nil).Once()
	bidRepo.On("GetPendingForShipment", mock.Anything, shipmentID).
		Return([]*bid.Bid{open}, nil).Once()
	bidRepo.On("Update", mock.Anything, open).Return(nil).Once()

	factory := new(MockMarketUoWFactory)
	factory.On("Create").Return(uow).Once()

	sink := new(MockNotificationSink)
	sink.On("Send", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationBidRejected && n.RecipientID.IsEqual(bidderID)
	})).Return(nil).Once()

	h := commands.NewCancelShipmentCommandHandler(factory, sink, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, shipment.StatusCancelled, target.Status())
	assert.Equal(t, bid.StatusRejected, open.Status())
	sink.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_AcceptedShipment(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCancelShipmentCommand(shipmentID, customerID)
	require.NoError(t, err)

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

	h := commands.NewCancelShipmentCommandHandler(factory, new(MockNotificationSink), discardLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, shipment.StatusAccepted, target.Status())
}
