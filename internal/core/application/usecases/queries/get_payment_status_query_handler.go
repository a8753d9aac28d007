package queries

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentStatusQueryHandler reads the latest payment transaction for a
// shipment. Only the paying customer may see it.
type GetPaymentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentStatusQueryHandler creates a handler for payment status
// reads.
func NewGetPaymentStatusQueryHandler(db *gorm.DB) GetPaymentStatusQueryHandler {
	return GetPaymentStatusQueryHandler{db: db}
}

// Handle returns the most recent transaction, or ObjectNotFound when the
// shipment has no payment yet.
func (h GetPaymentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatusQuery,
) (PaymentStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentStatusResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, shipment_id, customer_id, amount, method, status, provider_ref, created_at, updated_at
		FROM payments
		WHERE shipment_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return PaymentStatusResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PaymentStatusResponse{}, err
		}
		return PaymentStatusResponse{}, errs.NewObjectNotFoundError("payment", query.ShipmentID().String())
	}

	var (
		response   PaymentStatusResponse
		id         uuid.UUID
		shipmentID uuid.UUID
		customerID uuid.UUID
	)
	if err = rows.Scan(
		&id,
		&shipmentID,
		&customerID,
		&response.Amount,
		&response.Method,
		&response.Status,
		&response.ProviderRef,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return PaymentStatusResponse{}, err
	}

	if customerID != query.ActorID().Bytes() {
		return PaymentStatusResponse{}, errs.NewForbiddenError(
			query.ActorID().String(), "payment is not visible to this user")
	}

	paymentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return PaymentStatusResponse{}, err
	}
	response.ID = paymentID

	sID, err := kernel.UUIDFromBytes(shipmentID[:])
	if err != nil {
		return PaymentStatusResponse{}, err
	}
	response.ShipmentID = sID

	return response, nil
}
