package cmd

import (
	"log/slog"

	"freightbid/internal/adapters/out/postgres"
	"freightbid/internal/adapters/out/postgres/identityrepo"
	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	identityStore ports.IdentityStore
	imageStore    ports.ImageStore
	sink          ports.NotificationSink
	gateway       ports.PaymentGateway
	logger        *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	imageStore ports.ImageStore,
	sink ports.NotificationSink,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		identityStore: identityrepo.NewGormIdentityStore(gormDB),
		imageStore:    imageStore,
		sink:          sink,
		gateway:       gateway,
		logger:        logger,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) marketUoWFactory() commands.MarketUoWFactory {
	return FuncMarketUoWFactory(func() commands.MarketUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.identityStore)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreatePublishShipmentCommandHandler() commands.PublishShipmentCommandHandler {
	return commands.NewPublishShipmentCommandHandler(c.shipmentUoWFactory(), c.identityStore, c.sink, c.logger)
}

func (c *CompositionRoot) CreateAddShipmentPhotoCommandHandler() commands.AddShipmentPhotoCommandHandler {
	return commands.NewAddShipmentPhotoCommandHandler(c.shipmentUoWFactory(), c.imageStore, c.logger)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.marketUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateSubmitBidCommandHandler() commands.SubmitBidCommandHandler {
	return commands.NewSubmitBidCommandHandler(c.marketUoWFactory(), c.identityStore, c.sink, c.logger)
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	return commands.NewAcceptBidCommandHandler(c.marketUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateRejectBidCommandHandler() commands.RejectBidCommandHandler {
	return commands.NewRejectBidCommandHandler(c.marketUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(
		c.paymentUoWFactory(), c.identityStore, c.gateway, c.sink, c.logger)
}

func (c *CompositionRoot) CreateHandlePaymentCallbackCommandHandler() commands.HandlePaymentCallbackCommandHandler {
	return commands.NewHandlePaymentCallbackCommandHandler(c.paymentUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.marketUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.marketUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateReconcilePaymentsCommandHandler() commands.ReconcilePaymentsCommandHandler {
	return commands.NewReconcilePaymentsCommandHandler(c.paymentUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerShipmentsQueryHandler() queries.GetCustomerShipmentsQueryHandler {
	return queries.NewGetCustomerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableShipmentsQueryHandler() queries.GetAvailableShipmentsQueryHandler {
	return queries.NewGetAvailableShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentBidsQueryHandler() queries.GetShipmentBidsQueryHandler {
	return queries.NewGetShipmentBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverBidsQueryHandler() queries.GetDriverBidsQueryHandler {
	return queries.NewGetDriverBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentStatusQueryHandler() queries.GetPaymentStatusQueryHandler {
	return queries.NewGetPaymentStatusQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncMarketUoWFactory func() commands.MarketUoW

func (f FuncMarketUoWFactory) Create() commands.MarketUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
