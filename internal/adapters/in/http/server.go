// Package http exposes the marketplace over a REST API. Handlers translate
// requests into commands and queries and map domain errors onto HTTP
// statuses; no business rules live here.
package http

import (
	"net/http"
	"time"

	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createShipmentHandler  commands.CreateShipmentCommandHandler
	updateShipmentHandler  commands.UpdateShipmentCommandHandler
	publishShipmentHandler commands.PublishShipmentCommandHandler
	addPhotoHandler        commands.AddShipmentPhotoCommandHandler
	cancelShipmentHandler  commands.CancelShipmentCommandHandler
	submitBidHandler       commands.SubmitBidCommandHandler
	acceptBidHandler       commands.AcceptBidCommandHandler
	rejectBidHandler       commands.RejectBidCommandHandler
	initiatePaymentHandler commands.InitiatePaymentCommandHandler
	paymentCallbackHandler commands.HandlePaymentCallbackCommandHandler
	startTransitHandler    commands.StartTransitCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler

	getShipmentHandler           queries.GetShipmentQueryHandler
	getCustomerShipmentsHandler  queries.GetCustomerShipmentsQueryHandler
	getAvailableShipmentsHandler queries.GetAvailableShipmentsQueryHandler
	getShipmentBidsHandler       queries.GetShipmentBidsQueryHandler
	getDriverBidsHandler         queries.GetDriverBidsQueryHandler
	getPaymentStatusHandler      queries.GetPaymentStatusQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	publishShipmentHandler commands.PublishShipmentCommandHandler,
	addPhotoHandler commands.AddShipmentPhotoCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	submitBidHandler commands.SubmitBidCommandHandler,
	acceptBidHandler commands.AcceptBidCommandHandler,
	rejectBidHandler commands.RejectBidCommandHandler,
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	paymentCallbackHandler commands.HandlePaymentCallbackCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getCustomerShipmentsHandler queries.GetCustomerShipmentsQueryHandler,
	getAvailableShipmentsHandler queries.GetAvailableShipmentsQueryHandler,
	getShipmentBidsHandler queries.GetShipmentBidsQueryHandler,
	getDriverBidsHandler queries.GetDriverBidsQueryHandler,
	getPaymentStatusHandler queries.GetPaymentStatusQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:        createShipmentHandler,
		updateShipmentHandler:        updateShipmentHandler,
		publishShipmentHandler:       publishShipmentHandler,
		addPhotoHandler:              addPhotoHandler,
		cancelShipmentHandler:        cancelShipmentHandler,
		submitBidHandler:             submitBidHandler,
		acceptBidHandler:             acceptBidHandler,
		rejectBidHandler:             rejectBidHandler,
		initiatePaymentHandler:       initiatePaymentHandler,
		paymentCallbackHandler:       paymentCallbackHandler,
		startTransitHandler:          startTransitHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		getShipmentHandler:           getShipmentHandler,
		getCustomerShipmentsHandler:  getCustomerShipmentsHandler,
		getAvailableShipmentsHandler: getAvailableShipmentsHandler,
		getShipmentBidsHandler:       getShipmentBidsHandler,
		getDriverBidsHandler:         getDriverBidsHandler,
		getPaymentStatusHandler:      getPaymentStatusHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every route except the
// provider callback requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1")

	// Provider callbacks authenticate by signature, not by user token.
	api.POST("/payments/callback", s.HandlePaymentCallback)

	authed := api.Group("", AuthMiddleware(jwtSecret))

	authed.POST("/shipments", s.CreateShipment)
	authed.GET("/shipments", s.GetCustomerShipments)
	authed.GET("/shipments/available", s.GetAvailableShipments)
	authed.GET("/shipments/:id", s.GetShipment)
	authed.PATCH("/shipments/:id", s.UpdateShipment)
	authed.POST("/shipments/:id/publish", s.PublishShipment)
	authed.POST("/shipments/:id/photos", s.AddShipmentPhoto)
	authed.POST("/shipments/:id/cancel", s.CancelShipment)
	authed.POST("/shipments/:id/bids", s.SubmitBid)
	authed.GET("/shipments/:id/bids", s.GetShipmentBids)
	authed.POST("/shipments/:id/bids/:bidId/accept", s.AcceptBid)
	authed.POST("/shipments/:id/payments", s.InitiatePayment)
	authed.GET("/shipments/:id/payments", s.GetPaymentStatus)
	authed.POST("/shipments/:id/transit", s.StartTransit)
	authed.POST("/shipments/:id/delivery", s.ConfirmDelivery)
	authed.GET("/bids", s.GetDriverBids)
	authed.POST("/bids/:id/reject", s.RejectBid)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var request createShipmentRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	details, err := request.toDetails()
	if err != nil {
		return respondError(c, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, actor.ID, details)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: shipmentID.String()})
}

// UpdateShipment handles PATCH /api/v1/shipments/:id.
func (s *Server) UpdateShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var request updateShipmentRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	patch, err := request.toPatch()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, actor.ID, patch)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updateShipmentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PublishShipment handles POST /api/v1/shipments/:id/publish.
func (s *Server) PublishShipment(c echo.Context) error {
	return s.handleShipmentAction(c, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewPublishShipmentCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.publishShipmentHandler.Handle(c.Request().Context(), cmd)
	})
}

// AddShipmentPhoto handles POST /api/v1/shipments/:id/photos. The photo is
// sent as a multipart file field named "file" and streamed to the image
// store.
func (s *Server) AddShipmentPhoto(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer file.Close()

	cmd, err := commands.NewAddShipmentPhotoCommand(shipmentID, actor.ID, fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.addPhotoHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// CancelShipment handles POST /api/v1/shipments/:id/cancel.
func (s *Server) CancelShipment(c echo.Context) error {
	return s.handleShipmentAction(c, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewCancelShipmentCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.cancelShipmentHandler.Handle(c.Request().Context(), cmd)
	})
}

// SubmitBid handles POST /api/v1/shipments/:id/bids.
func (s *Server) SubmitBid(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var request submitBidRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	bidID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBidCommand(bidID, shipmentID, actor.ID, request.Amount)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.submitBidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: bidID.String()})
}

// AcceptBid handles POST /api/v1/shipments/:id/bids/:bidId/accept.
func (s *Server) AcceptBid(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}
	bidID, err := pathUUID(c, "bidId")
	if err != nil {
		return badRequest(c, "invalid bid id")
	}

	cmd, err := commands.NewAcceptBidCommand(shipmentID, bidID, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.acceptBidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectBid handles POST /api/v1/bids/:id/reject.
func (s *Server) RejectBid(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	bidID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid bid id")
	}

	cmd, err := commands.NewRejectBidCommand(bidID, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.rejectBidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// InitiatePayment handles POST /api/v1/shipments/:id/payments.
func (s *Server) InitiatePayment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var request initiatePaymentRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	method, err := payment.MethodFromString(request.Method)
	if err != nil {
		return respondError(c, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewInitiatePaymentCommand(paymentID, shipmentID, actor.ID, method)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.initiatePaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusAccepted, idResponse{ID: paymentID.String()})
}

// HandlePaymentCallback handles POST /api/v1/payments/callback.
func (s *Server) HandlePaymentCallback(c echo.Context) error {
	var request paymentCallbackRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	paymentID, err := kernel.UUIDFromString(request.PaymentID)
	if err != nil {
		return badRequest(c, "invalid payment id")
	}

	cmd, err := commands.NewHandlePaymentCallbackCommand(paymentID, request.ProviderRef, request.Succeeded)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.paymentCallbackHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// StartTransit handles POST /api/v1/shipments/:id/transit.
func (s *Server) StartTransit(c echo.Context) error {
	return s.handleShipmentAction(c, func(shipmentID, actorID kernel.UUID) error {
		cmd, err := commands.NewStartTransitCommand(shipmentID, actorID)
		if err != nil {
			return err
		}
		return s.startTransitHandler.Handle(c.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/shipments/:id/delivery.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var request confirmDeliveryRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(shipmentID, actor.ID, request.PhotoURLs, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}

	if err := s.confirmDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	row, err := s.getShipmentHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponse(row))
}

// GetCustomerShipments handles GET /api/v1/shipments.
func (s *Server) GetCustomerShipments(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetCustomerShipmentsQuery(actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.getCustomerShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponses(rows))
}

// GetAvailableShipments handles GET /api/v1/shipments/available. The
// optional vehicle_type query parameter narrows the feed to shipments the
// driver's vehicle qualifies for.
func (s *Server) GetAvailableShipments(c echo.Context) error {
	if _, ok := actorFromContext(c); !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var vehicleType *identity.VehicleType
	if raw := c.QueryParam("vehicle_type"); raw != "" {
		vt, err := identity.VehicleTypeFromString(raw)
		if err != nil {
			return respondError(c, err)
		}
		vehicleType = &vt
	}

	query, err := queries.NewGetAvailableShipmentsQuery(vehicleType)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.getAvailableShipmentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponses(rows))
}

// GetShipmentBids handles GET /api/v1/shipments/:id/bids.
func (s *Server) GetShipmentBids(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentBidsQuery(shipmentID, actor.ID, actor.Role)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.getShipmentBidsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toBidResponses(rows))
}

// GetDriverBids handles GET /api/v1/bids.
func (s *Server) GetDriverBids(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetDriverBidsQuery(actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	rows, err := s.getDriverBidsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toBidResponses(rows))
}

// GetPaymentStatus handles GET /api/v1/shipments/:id/payments.
func (s *Server) GetPaymentStatus(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	query, err := queries.NewGetPaymentStatusQuery(shipmentID, actor.ID)
	if err != nil {
		return respondError(c, err)
	}

	row, err := s.getPaymentStatusHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPaymentStatusResponse(row))
}

func (s *Server) handleShipmentAction(c echo.Context, action func(shipmentID, actorID kernel.UUID) error) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	if err := action(shipmentID, actor.ID); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param(name))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
