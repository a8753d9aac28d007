// Package paymentrepo implements the payment repository using GORM and
// PostgreSQL. Writes carry the same version predicate as shipments so a
// provider callback and the reconciliation sweep cannot both finalize the
// same transaction.
package paymentrepo

import (
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database model for payment transactions.
type PaymentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64
	Method      string
	Status      string `gorm:"index"`
	ProviderRef string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	Version     int64
}

// TableName returns the table name for GORM.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Transaction) PaymentDTO {
	return PaymentDTO{
		ID:          aggregate.ID().Bytes(),
		ShipmentID:  aggregate.ShipmentID().Bytes(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Amount:      aggregate.Amount(),
		Method:      aggregate.Method().String(),
		Status:      aggregate.Status().String(),
		ProviderRef: aggregate.ProviderRef(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Version:     aggregate.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestoreTransaction(
		id, shipmentID, customerID,
		dto.Amount, method, status, dto.ProviderRef,
		dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}
