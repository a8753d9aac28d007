package bid_test

import (
	"testing"
	"time"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBid(t *testing.T) *bid.Bid {
	t.Helper()

	b, err := bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 350)
	require.NoError(t, err)
	return b
}

func TestNewBid(t *testing.T) {
	t.Run("creates_pending", func(t *testing.T) {
		id := kernel.NewUUID()
		shipmentID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		b, err := bid.NewBid(id, shipmentID, driverID, 500.50)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, bid.StatusPending, b.Status())
		assert.True(t, b.ID().IsEqual(id))
		assert.True(t, b.ShipmentID().IsEqual(shipmentID))
		assert.True(t, b.DriverID().IsEqual(driverID))
		assert.InDelta(t, 500.50, b.Amount(), 0.001)
		assert.False(t, b.BidTime().IsZero())
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -350} {
			_, err := bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), amount)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects_invalid_ids", func(t *testing.T) {
		var zero kernel.UUID
		_, err := bid.NewBid(zero, kernel.NewUUID(), kernel.NewUUID(), 100)
		require.Error(t, err)

		_, err = bid.NewBid(kernel.NewUUID(), zero, kernel.NewUUID(), 100)
		require.Error(t, err)

		_, err = bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), zero, 100)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var b bid.Bid
		require.ErrorIs(t, b.Validate(), bid.ErrBidIsNotConstructed)
	})
}

func TestRestoreBid(t *testing.T) {
	t.Run("restores_all_fields", func(t *testing.T) {
		id := kernel.NewUUID()
		bidTime := time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC)

		b, err := bid.RestoreBid(id, kernel.NewUUID(), kernel.NewUUID(), 275, bid.StatusAccepted, bidTime)

		require.NoError(t, err)
		assert.Equal(t, bid.StatusAccepted, b.Status())
		assert.Equal(t, bidTime, b.BidTime())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := bid.RestoreBid(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			275, bid.StatusUnknown, time.Now(),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBid_Accept(t *testing.T) {
	t.Run("pending_becomes_accepted", func(t *testing.T) {
		b := newPendingBid(t)

		require.NoError(t, b.Accept())
		assert.Equal(t, bid.StatusAccepted, b.Status())
	})

	t.Run("accepted_cannot_be_accepted_again", func(t *testing.T) {
		b := newPendingBid(t)
		require.NoError(t, b.Accept())

		err := b.Accept()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejected_cannot_be_accepted", func(t *testing.T) {
		b := newPendingBid(t)
		require.NoError(t, b.Reject())

		err := b.Accept()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBid_Reject(t *testing.T) {
	t.Run("pending_becomes_rejected", func(t *testing.T) {
		b := newPendingBid(t)

		require.NoError(t, b.Reject())
		assert.Equal(t, bid.StatusRejected, b.Status())
	})

	t.Run("accepted_cannot_be_rejected", func(t *testing.T) {
		b := newPendingBid(t)
		require.NoError(t, b.Accept())

		err := b.Reject()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatusFromString(t *testing.T) {
	cases := map[string]bid.Status{
		"pending":  bid.StatusPending,
		"accepted": bid.StatusAccepted,
		"rejected": bid.StatusRejected,
	}
	for s, want := range cases {
		got, err := bid.StatusFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := bid.StatusFromString("withdrawn")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
