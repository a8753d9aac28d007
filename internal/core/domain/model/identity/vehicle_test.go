package identity_test

import (
	"testing"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleTypeFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected identity.VehicleType
	}{
		{"motorbike", identity.VehicleMotorbike},
		{"pickup", identity.VehiclePickup},
		{"truck", identity.VehicleTruck},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			vt, err := identity.VehicleTypeFromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, vt)
		})
	}
}

func TestVehicleTypeFromString_Unknown_Fails(t *testing.T) {
	_, err := identity.VehicleTypeFromString("bicycle")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVehicleType_Matches(t *testing.T) {
	testCases := []struct {
		name     string
		vehicle  identity.VehicleType
		required []identity.VehicleType
		expected bool
	}{
		{
			name:     "empty requirements admit any vehicle",
			vehicle:  identity.VehicleMotorbike,
			required: nil,
			expected: true,
		},
		{
			name:     "vehicle in the set",
			vehicle:  identity.VehicleTruck,
			required: []identity.VehicleType{identity.VehiclePickup, identity.VehicleTruck},
			expected: true,
		},
		{
			name:     "vehicle outside the set",
			vehicle:  identity.VehicleMotorbike,
			required: []identity.VehicleType{identity.VehicleTruck},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.vehicle.Matches(tc.required))
		})
	}
}

func TestIsVerifiedDriver(t *testing.T) {
	vt := identity.VehicleTruck

	driver, err := identity.RestoreUser(
		kernel.NewUUID(), "Dawit Lemma", "+251922000000",
		identity.RoleDriver, identity.VerificationVerified, &vt, 4.7)
	require.NoError(t, err)
	assert.True(t, driver.IsVerifiedDriver())

	pending, err := identity.RestoreUser(
		kernel.NewUUID(), "Samuel Tesfaye", "+251933000000",
		identity.RoleDriver, identity.VerificationPending, &vt, 0)
	require.NoError(t, err)
	assert.False(t, pending.IsVerifiedDriver())

	customer, err := identity.RestoreUser(
		kernel.NewUUID(), "Hana Girma", "+251911000000",
		identity.RoleCustomer, identity.VerificationVerified, nil, 0)
	require.NoError(t, err)
	assert.False(t, customer.IsVerifiedDriver())
}
