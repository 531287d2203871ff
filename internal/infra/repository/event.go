package repository

import (
	"context"

	"agora-server/internal/domain/event"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() shared.EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, dbtx db.DBTX, ev *event.Event) (uuid.UUID, error) {
	const query = `
		INSERT INTO events (id, venue_id, title, description, starts_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		ev.ID(), ev.VenueID(), ev.Title(), ev.Description(), ev.StartsAt(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("venue does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}
	return id, nil
}
