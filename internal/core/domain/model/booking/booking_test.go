package booking_test

import (
	"fmt"
	"testing"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "tomatoes",
		600, 0, "Hosur farm", "KR Market", time.Now(), 200, kernel.NewUUID())
	require.NoError(t, err)
	return b
}

func newTestBill(t *testing.T, uploaderID kernel.UUID, at time.Time) booking.Bill {
	t.Helper()
	settlement, err := booking.NewSettlement(1790, 0, "Owner/driver pays farmer ₹1790")
	require.NoError(t, err)
	bill, err := booking.NewBill(2000, "bills/sale-123.jpg", uploaderID, at, 200, "10 per kg", settlement)
	require.NoError(t, err)
	return bill
}

// drives a fresh booking to pending_payment with a bill attached
func bookingAwaitingPayment(t *testing.T, driverID kernel.UUID, at time.Time) *booking.Booking {
	t.Helper()
	b := newPendingBooking(t)
	require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, at))
	require.NoError(t, b.RequestTransition(booking.StatusPendingMarket, driverID, at))
	require.NoError(t, b.AttachBill(newTestBill(t, driverID, at), at))
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("should create pending booking with creation history entry", func(t *testing.T) {
		farmerID := kernel.NewUUID()
		ownerID := kernel.NewUUID()
		bookedAt := time.Now()

		b, err := booking.NewBooking(
			kernel.NewUUID(), farmerID, kernel.NewUUID(), "onions",
			600, 6, "Kolar farm", "KR Market", bookedAt, 200, ownerID)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Nil(t, b.Bill())
		assert.Nil(t, b.DispatchDate())
		assert.False(t, b.ReadyForRating())

		require.Len(t, b.History(), 1)
		entry := b.History()[0]
		assert.Equal(t, booking.ActionBookingCreated, entry.Action())
		assert.True(t, entry.ActorID().IsEqual(farmerID))
		assert.Equal(t, auth.RoleFarmer, entry.Role())
		require.NotNil(t, entry.Amount())
		assert.Equal(t, float64(200), *entry.Amount())
		require.NotNil(t, entry.CounterpartyID())
		assert.True(t, entry.CounterpartyID().IsEqual(ownerID))
	})

	t.Run("should reject non positive required weight", func(t *testing.T) {
		_, err := booking.NewBooking(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "onions",
			0, 0, "farm", "market", time.Now(), 200, kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing crop and locations", func(t *testing.T) {
		_, err := booking.NewBooking(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "",
			600, 0, "", "", time.Now(), 200, kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBooking_RequestTransition(t *testing.T) {
	driverID := kernel.NewUUID()
	now := time.Now()

	t.Run("pending to bringing stamps dispatch date", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))

		assert.Equal(t, booking.StatusBringing, b.Status())
		require.NotNil(t, b.DispatchDate())
		assert.Equal(t, now, *b.DispatchDate())

		last := b.History()[len(b.History())-1]
		assert.Equal(t, "status updated to bringing", last.Action())
		assert.Equal(t, auth.RoleDriver, last.Role())
	})

	t.Run("bringing to pending_market", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))

		require.NoError(t, b.RequestTransition(booking.StatusPendingMarket, driverID, now))

		assert.Equal(t, booking.StatusPendingMarket, b.Status())
	})

	t.Run("should reject skipping a step and report the allowed successor", func(t *testing.T) {
		b := newPendingBooking(t)

		err := b.RequestTransition(booking.StatusPendingMarket, driverID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transErr)
		assert.Equal(t, "pending", transErr.Current)
		assert.Equal(t, "bringing", transErr.Allowed)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("should reject requesting an implicit only step", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))
		require.NoError(t, b.RequestTransition(booking.StatusPendingMarket, driverID, now))

		err := b.RequestTransition(booking.StatusPendingPayment, driverID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))

		err := b.RequestTransition(booking.StatusPending, driverID, now)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBooking_AttachBill(t *testing.T) {
	driverID := kernel.NewUUID()
	now := time.Now()

	t.Run("should store bill, reset confirmations and move to pending_payment", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))
		require.NoError(t, b.RequestTransition(booking.StatusPendingMarket, driverID, now))

		require.NoError(t, b.AttachBill(newTestBill(t, driverID, now), now))

		assert.Equal(t, booking.StatusPendingPayment, b.Status())
		require.NotNil(t, b.Bill())
		assert.Equal(t, float64(2000), b.Bill().Amount())
		assert.False(t, b.DriverConfirmed())
		assert.False(t, b.OwnerConfirmed())

		last := b.History()[len(b.History())-1]
		assert.Equal(t, booking.ActionBillUploaded, last.Action())
		require.NotNil(t, last.Amount())
		assert.Equal(t, float64(2000), *last.Amount())
	})

	t.Run("should fail outside pending_market", func(t *testing.T) {
		b := newPendingBooking(t)

		err := b.AttachBill(newTestBill(t, driverID, now), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "upload bill requires status pending_market")
		assert.Nil(t, b.Bill())
	})

	t.Run("should reject zero value bill", func(t *testing.T) {
		b := newPendingBooking(t)
		var bill booking.Bill

		err := b.AttachBill(bill, now)

		assert.Equal(t, booking.ErrBillIsNotConstructed, err)
	})
}

func TestBooking_ConfirmPayment(t *testing.T) {
	driverID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	now := time.Now()

	t.Run("second confirmation completes the booking", func(t *testing.T) {
		b := bookingAwaitingPayment(t, driverID, now)
		deliveredAt := now.Add(time.Hour)

		completed, err := b.ConfirmPayment(auth.RoleDriver, driverID, now)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, booking.StatusPendingPayment, b.Status())

		completed, err = b.ConfirmPayment(auth.RoleOwner, ownerID, deliveredAt)
		require.NoError(t, err)
		assert.True(t, completed)

		assert.Equal(t, booking.StatusCompleted, b.Status())
		require.NotNil(t, b.DeliveryDate())
		assert.Equal(t, deliveredAt, *b.DeliveryDate())
		assert.True(t, b.ReadyForRating())
	})

	t.Run("exactly one completion history entry", func(t *testing.T) {
		b := bookingAwaitingPayment(t, driverID, now)

		_, err := b.ConfirmPayment(auth.RoleOwner, ownerID, now)
		require.NoError(t, err)
		_, err = b.ConfirmPayment(auth.RoleDriver, driverID, now)
		require.NoError(t, err)

		completions := 0
		for _, entry := range b.History() {
			if entry.Action() == booking.ActionBookingCompleted {
				completions++
			}
		}
		assert.Equal(t, 1, completions)
	})

	t.Run("re-confirming an already confirmed role is a no-op", func(t *testing.T) {
		b := bookingAwaitingPayment(t, driverID, now)
		_, err := b.ConfirmPayment(auth.RoleDriver, driverID, now)
		require.NoError(t, err)
		historyLen := len(b.History())

		completed, err := b.ConfirmPayment(auth.RoleDriver, driverID, now)

		require.NoError(t, err)
		assert.False(t, completed)
		assert.Len(t, b.History(), historyLen)
		assert.Equal(t, booking.StatusPendingPayment, b.Status())
	})

	t.Run("should fail outside pending_payment", func(t *testing.T) {
		b := newPendingBooking(t)

		_, err := b.ConfirmPayment(auth.RoleDriver, driverID, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject farmer as confirming role", func(t *testing.T) {
		b := bookingAwaitingPayment(t, driverID, now)

		_, err := b.ConfirmPayment(auth.RoleFarmer, kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBooking_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("should cancel a pending booking", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.Cancel(now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		last := b.History()[len(b.History())-1]
		assert.Equal(t, booking.ActionBookingCancelled, last.Action())
		assert.Equal(t, auth.RoleFarmer, last.Role())
	})

	t.Run("should fail once the driver is underway", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.RequestTransition(booking.StatusBringing, kernel.NewUUID(), now))

		err := b.Cancel(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, booking.StatusBringing, b.Status())
	})

	t.Run("cancellation is terminal", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Cancel(now))

		err := b.RequestTransition(booking.StatusBringing, kernel.NewUUID(), now)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBooking_Rate(t *testing.T) {
	driverID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	now := time.Now()

	completedBooking := func(t *testing.T) *booking.Booking {
		t.Helper()
		b := bookingAwaitingPayment(t, driverID, now)
		_, err := b.ConfirmPayment(auth.RoleDriver, driverID, now)
		require.NoError(t, err)
		_, err = b.ConfirmPayment(auth.RoleOwner, ownerID, now)
		require.NoError(t, err)
		return b
	}

	t.Run("should record rating and clear ready flag", func(t *testing.T) {
		b := completedBooking(t)
		require.True(t, b.ReadyForRating())

		require.NoError(t, b.Rate(5, 4, "smooth trip", now))

		require.NotNil(t, b.Rating())
		assert.Equal(t, 5, b.Rating().DriverRating())
		assert.Equal(t, 4, b.Rating().OwnerRating())
		assert.Equal(t, "smooth trip", b.Rating().Comment())
		assert.False(t, b.ReadyForRating())
	})

	t.Run("should fail before completion", func(t *testing.T) {
		b := newPendingBooking(t)

		err := b.Rate(5, 5, "", now)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail when already rated", func(t *testing.T) {
		b := completedBooking(t)
		require.NoError(t, b.Rate(5, 4, "", now))

		err := b.Rate(3, 3, "", now)

		assert.Equal(t, booking.ErrBookingAlreadyRated, err)
	})

	t.Run("should reject ratings outside 1 to 5", func(t *testing.T) {
		b := completedBooking(t)

		err := b.Rate(6, 4, "", now)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, b.Rating())
		assert.True(t, b.ReadyForRating())
	})
}

func TestSettlement(t *testing.T) {
	t.Run("should reject farmer both getting and paying", func(t *testing.T) {
		_, err := booking.NewSettlement(100, 50, "broken")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow zero-zero settlement", func(t *testing.T) {
		settlement, err := booking.NewSettlement(0, 0, "No further payment needed")

		require.NoError(t, err)
		assert.Zero(t, settlement.FarmerGets())
		assert.Zero(t, settlement.FarmerPays())
	})
}

func TestBooking_HistoryIsAppendOnly(t *testing.T) {
	driverID := kernel.NewUUID()
	now := time.Now()
	b := newPendingBooking(t)

	var actions []string
	record := func() {
		actions = actions[:0]
		for _, entry := range b.History() {
			actions = append(actions, entry.Action())
		}
	}

	require.NoError(t, b.RequestTransition(booking.StatusBringing, driverID, now))
	record()
	require.NoError(t, b.RequestTransition(booking.StatusPendingMarket, driverID, now))

	// earlier entries are unchanged and still in order
	for i, action := range actions {
		assert.Equal(t, action, b.History()[i].Action())
	}
	assert.Equal(t, fmt.Sprintf("status updated to %s", booking.StatusPendingMarket),
		b.History()[len(b.History())-1].Action())
}
