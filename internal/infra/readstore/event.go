package readstore

import (
	"context"

	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	const query = `
		SELECT id, venue_id, title, description, starts_at, created_at
		FROM events
		WHERE id = $1`

	var v queries.EventView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.VenueID, &v.Title, &v.Description, &v.StartsAt, &v.CreatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}
	return &v, nil
}

func (r *EventReadStore) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*queries.EventView, error) {
	const query = `
		SELECT id, venue_id, title, description, starts_at, created_at
		FROM events
		WHERE venue_id = $1
		ORDER BY starts_at ASC`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find events by venue", err)
	}
	return scanEvents(rows)
}

func (r *EventReadStore) FindUpcoming(ctx context.Context, limit int32) ([]*queries.EventView, error) {
	const query = `
		SELECT e.id, e.venue_id, e.title, e.description, e.starts_at, e.created_at
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE e.starts_at > now() AND v.status = 'APPROVED'
		ORDER BY e.starts_at ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find upcoming events", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*queries.EventView, error) {
	defer rows.Close()

	var result []*queries.EventView
	for rows.Next() {
		var v queries.EventView
		if err := rows.Scan(&v.ID, &v.VenueID, &v.Title, &v.Description, &v.StartsAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return result, nil
}
