//go:build unit

package event_test

import (
	"testing"
	"time"

	"agora-server/internal/domain/event"
	"agora-server/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	venueID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		ev, err := event.NewEvent(clk, venueID, "  Live Night  ", " An evening of jazz ", now.Add(48*time.Hour))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, ev.ID())
		assert.Equal(t, venueID, ev.VenueID())
		assert.Equal(t, "Live Night", ev.Title())
		assert.Equal(t, "An evening of jazz", ev.Description())
		assert.Equal(t, now, ev.CreatedAt())
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := event.NewEvent(clk, venueID, "   ", "", now.Add(time.Hour))
		assert.ErrorIs(t, err, event.ErrTitleRequired)
	})

	t.Run("starts in the past", func(t *testing.T) {
		_, err := event.NewEvent(clk, venueID, "Live Night", "", now.Add(-time.Minute))
		assert.ErrorIs(t, err, event.ErrStartsInPast)
	})
}
