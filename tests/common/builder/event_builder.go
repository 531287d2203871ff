//go:build unit || e2e

package builder

import (
	"time"

	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	Title       string
	Description string
	StartsAt    time.Time
	CreatedAt   time.Time
}

func NewEventBuilder() *EventBuilder {
	now := time.Now()
	return &EventBuilder{
		ID:          uuid.New(),
		VenueID:     uuid.New(),
		Title:       "Live Night",
		Description: "An evening of jazz",
		StartsAt:    now.Add(72 * time.Hour),
		CreatedAt:   now,
	}
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	return reqdto.CreateEventRequest{
		Title:       b.Title,
		Description: b.Description,
		StartsAt:    b.StartsAt,
	}
}

func (b *EventBuilder) BuildViewQuery() *queries.EventView {
	return &queries.EventView{
		ID:          b.ID,
		VenueID:     b.VenueID,
		Title:       b.Title,
		Description: b.Description,
		StartsAt:    b.StartsAt,
		CreatedAt:   b.CreatedAt,
	}
}
