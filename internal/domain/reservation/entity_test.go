//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"agora-server/internal/domain/reservation"
	"agora-server/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	venueID := uuid.New()
	userID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		res, err := reservation.NewReservation(clk, venueID, userID,
			"Taro Yamada", "taro@example.com", "090-0000-0000", 4, now.Add(24*time.Hour))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, venueID, res.VenueID())
		assert.Equal(t, userID, res.UserID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.NotEmpty(t, res.QRToken())
	})

	t.Run("trims contact fields", func(t *testing.T) {
		res, err := reservation.NewReservation(clk, venueID, userID,
			"  Taro  ", " taro@example.com ", "", 1, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "Taro", res.GuestName())
		assert.Equal(t, "taro@example.com", res.GuestEmail())
		assert.Empty(t, res.GuestPhone())
	})

	t.Run("empty guest name", func(t *testing.T) {
		_, err := reservation.NewReservation(clk, venueID, userID,
			"   ", "taro@example.com", "", 2, now.Add(time.Hour))
		assert.ErrorIs(t, err, reservation.ErrGuestNameEmpty)
	})

	t.Run("party size bounds", func(t *testing.T) {
		_, err := reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", 0, now.Add(time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidParty)

		_, err = reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", reservation.MaxPartySize+1, now.Add(time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidParty)

		_, err = reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", reservation.MaxPartySize, now.Add(time.Hour))
		assert.NoError(t, err)
	})

	t.Run("scheduled in the past", func(t *testing.T) {
		_, err := reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", 2, now.Add(-time.Minute))
		assert.ErrorIs(t, err, reservation.ErrScheduledInPast)
	})

	t.Run("distinct opaque tokens", func(t *testing.T) {
		a, err := reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", 2, now.Add(time.Hour))
		require.NoError(t, err)
		b, err := reservation.NewReservation(clk, venueID, userID,
			"Taro", "taro@example.com", "", 2, now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.NotEqual(t, a.QRToken(), b.QRToken())
	})
}
