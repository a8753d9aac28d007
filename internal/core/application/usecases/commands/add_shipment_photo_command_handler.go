package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// AddShipmentPhotoCommandHandler uploads a photo to the image store and
// attaches its URL to a draft shipment.
type AddShipmentPhotoCommandHandler struct {
	uowFactory ShipmentUoWFactory
	imageStore ports.ImageStore
	logger     *slog.Logger
}

// NewAddShipmentPhotoCommandHandler creates a handler for photo uploads.
func NewAddShipmentPhotoCommandHandler(
	uowFactory ShipmentUoWFactory,
	imageStore ports.ImageStore,
	logger *slog.Logger,
) AddShipmentPhotoCommandHandler {
	return AddShipmentPhotoCommandHandler{
		uowFactory: uowFactory,
		imageStore: imageStore,
		logger:     logger,
	}
}

// Handle checks ownership and draft status before uploading, then attaches
// the stored URL. If attaching fails after a successful upload, the orphan
// image is removed on a best-effort basis.
func (h *AddShipmentPhotoCommandHandler) Handle(ctx context.Context, cmd AddShipmentPhotoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can add photos")
	}

	url, err := h.imageStore.Upload(ctx, cmd.Name(), cmd.Content())
	if err != nil {
		return err
	}

	if err = aggregate.AddPhoto(url); err != nil {
		h.cleanUp(ctx, url)
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		h.cleanUp(ctx, url)
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		h.cleanUp(ctx, url)
		return err
	}

	return nil
}

func (h *AddShipmentPhotoCommandHandler) cleanUp(ctx context.Context, url string) {
	if err := h.imageStore.Delete(ctx, url); err != nil {
		h.logger.WarnContext(ctx, "orphan photo cleanup failed",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}
