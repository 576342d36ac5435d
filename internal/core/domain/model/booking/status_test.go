package booking_test

import (
	"testing"

	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("should follow the linear forward chain", func(t *testing.T) {
		chain := []booking.Status{
			booking.StatusPending,
			booking.StatusBringing,
			booking.StatusPendingMarket,
			booking.StatusPendingPayment,
			booking.StatusCompleted,
		}

		for i := 0; i < len(chain)-1; i++ {
			next, ok := chain[i].Next()

			require.True(t, ok, "expected successor for %s", chain[i])
			assert.Equal(t, chain[i+1], next)
		}
	})

	t.Run("terminal statuses have no successor", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCompleted, booking.StatusCancelled} {
			_, ok := status.Next()

			assert.False(t, ok)
			assert.True(t, status.IsTerminal())
		}
	})
}

func TestStatus_RequestableNext(t *testing.T) {
	t.Run("only the two pickup side steps are requestable", func(t *testing.T) {
		next, ok := booking.StatusPending.RequestableNext()
		require.True(t, ok)
		assert.Equal(t, booking.StatusBringing, next)

		next, ok = booking.StatusBringing.RequestableNext()
		require.True(t, ok)
		assert.Equal(t, booking.StatusPendingMarket, next)
	})

	t.Run("later steps are implicit only", func(t *testing.T) {
		for _, status := range []booking.Status{
			booking.StatusPendingMarket,
			booking.StatusPendingPayment,
			booking.StatusCompleted,
			booking.StatusCancelled,
		} {
			_, ok := status.RequestableNext()
			assert.False(t, ok, "expected no requestable successor for %s", status)
		}
	})
}

func TestNewStatusFromString(t *testing.T) {
	t.Run("should parse known statuses", func(t *testing.T) {
		for _, name := range []string{
			"pending", "bringing", "pending_market", "pending_payment", "completed", "cancelled",
		} {
			status, err := booking.NewStatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := booking.NewStatusFromString("delivered")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
