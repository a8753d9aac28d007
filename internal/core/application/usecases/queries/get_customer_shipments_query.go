package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrGetCustomerShipmentsQueryIsNotConstructed = errors.New(
	"GetCustomerShipmentsQuery must be created via NewGetCustomerShipmentsQuery constructor",
)

// GetCustomerShipmentsQuery retrieves every shipment owned by a customer.
type GetCustomerShipmentsQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerShipmentsQuery creates a query for a customer's shipments.
func NewGetCustomerShipmentsQuery(customerID kernel.UUID) (GetCustomerShipmentsQuery, error) {
	q := GetCustomerShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetCustomerShipmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerShipmentsQueryIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (q GetCustomerShipmentsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerShipmentsQuery) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.customerID = id
	return nil
}
