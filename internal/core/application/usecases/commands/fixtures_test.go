package commands_test

import (
	"testing"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T, id kernel.UUID) *identity.User {
	t.Helper()

	u, err := identity.RestoreUser(id, "Hana Girma", "+251911000001",
		identity.RoleCustomer, identity.VerificationVerified, nil, 4.8)
	require.NoError(t, err)
	return u
}

func newVerifiedDriver(t *testing.T, id kernel.UUID, vt identity.VehicleType) *identity.User {
	t.Helper()

	u, err := identity.RestoreUser(id, "Dawit Lemma", "+251911000002",
		identity.RoleDriver, identity.VerificationVerified, &vt, 4.5)
	require.NoError(t, err)
	return u
}

func newDriverWithoutVehicle(t *testing.T, id kernel.UUID) *identity.User {
	t.Helper()

	u, err := identity.RestoreUser(id, "Yonas Girma", "+251911000004",
		identity.RoleDriver, identity.VerificationVerified, nil, 4.2)
	require.NoError(t, err)
	return u
}

func newUnverifiedDriver(t *testing.T, id kernel.UUID) *identity.User {
	t.Helper()

	vt := identity.VehicleTruck
	u, err := identity.RestoreUser(id, "Samuel Tesfaye", "+251911000003",
		identity.RoleDriver, identity.VerificationPending, &vt, 0)
	require.NoError(t, err)
	return u
}

func shipmentDetails(t *testing.T, requirements ...identity.VehicleType) shipment.Details {
	t.Helper()

	pickup, err := kernel.NewLocation(38.7578, 9.0107, "Mexico Square, Addis Ababa")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(38.7993, 8.9806, "Akaki Kality, Addis Ababa")
	require.NoError(t, err)
	receiver, err := shipment.NewReceiverInfo("Abebe Bikila", "+251911234567")
	require.NoError(t, err)

	return shipment.Details{
		Pickup:              pickup,
		Dropoff:             dropoff,
		Receiver:            receiver,
		VehicleRequirements: requirements,
		ItemDescription:     "furniture",
		WeightKg:            120,
		Urgency:             shipment.UrgencyMedium,
	}
}

func newBiddingShipment(t *testing.T, id, customerID kernel.UUID, requirements ...identity.VehicleType) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(id, customerID, shipmentDetails(t, requirements...))
	require.NoError(t, err)
	require.NoError(t, s.Publish())
	return s
}

func newAcceptedShipment(t *testing.T, id, customerID, winningBidID kernel.UUID) *shipment.Shipment {
	t.Helper()

	s := newBiddingShipment(t, id, customerID)
	require.NoError(t, s.AcceptBid(winningBidID))
	return s
}

func newPendingLedgerBid(t *testing.T, id, shipmentID, driverID kernel.UUID, amount float64) *bid.Bid {
	t.Helper()

	b, err := bid.NewBid(id, shipmentID, driverID, amount)
	require.NoError(t, err)
	return b
}
