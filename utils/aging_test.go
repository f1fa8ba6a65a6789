package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookingtrack/models"
)

func TestAging(t *testing.T) {
	t.Run("counts whole calendar days", func(t *testing.T) {
		created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		now := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 5, Aging(created, models.BookingStatusOpen, now))
	})

	t.Run("truncates time of day before subtracting", func(t *testing.T) {
		// 23:59 -> 00:01 next day is one calendar day even though only
		// two minutes of wall time passed
		created := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		now := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 1, Aging(created, models.BookingStatusOpen, now))
	})

	t.Run("same day is zero", func(t *testing.T) {
		created := time.Date(2026, 3, 1, 0, 1, 0, 0, time.UTC)
		now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 0, Aging(created, models.BookingStatusOpen, now))
	})

	t.Run("normalizes to UTC dates", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		created := time.Date(2026, 3, 2, 5, 0, 0, 0, loc) // 2026-03-01 22:00 UTC
		now := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, 2, Aging(created, models.BookingStatusOpen, now))
	})

	t.Run("closed bookings age zero", func(t *testing.T) {
		created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		now := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, Aging(created, models.BookingStatusClosed, now))
		assert.Equal(t, 0, Aging(created, "close", now))
	})

	t.Run("clock skew never yields negative aging", func(t *testing.T) {
		created := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
		now := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, Aging(created, models.BookingStatusOpen, now))
	})
}

func TestReceivedPercentage(t *testing.T) {
	assert.Equal(t, "0.00%", ReceivedPercentage(0, 0))
	assert.Equal(t, "0.00%", ReceivedPercentage(5, 0))
	assert.Equal(t, "0.00%", ReceivedPercentage(0, 10))
	assert.Equal(t, "50.00%", ReceivedPercentage(5, 10))
	assert.Equal(t, "33.33%", ReceivedPercentage(1, 3))
	assert.Equal(t, "100.00%", ReceivedPercentage(10, 10))
}

func TestDerivePOStatus(t *testing.T) {
	assert.Equal(t, "", DerivePOStatus(0, 10))
	assert.Equal(t, models.POStatusPartial, DerivePOStatus(3, 10))
	assert.Equal(t, models.POStatusCompleted, DerivePOStatus(10, 10))

	// zero ordered quantity never completes
	assert.Equal(t, "", DerivePOStatus(0, 0))
}
