package readstore

import (
	"context"
	"time"

	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationListColumns = `
	r.id, r.venue_id, v.name, r.guest_name, r.party_size, r.scheduled_at, r.status, r.created_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.venue_id, v.name, r.user_id, r.guest_name, r.guest_email, r.guest_phone,
		       r.party_size, r.scheduled_at, r.status, r.created_at, r.updated_at
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.VenueID, &view.VenueName, &view.UserID, &view.GuestName, &view.GuestEmail,
		&view.GuestPhone, &view.PartySize, &view.ScheduledAt, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &view, nil
}

func (r *ReservationReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.venue_id, v.owner_id, v.name, r.user_id, r.status, r.scheduled_at
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.id = $1`

	var s shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.VenueID, &s.VenueOwnerID, &s.VenueName, &s.UserID, &s.Status, &s.ScheduledAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}
	return &s, nil
}

func (r *ReservationReadStore) HasCheckedInReservation(ctx context.Context, userID, venueID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE user_id = $1 AND venue_id = $2 AND status = 'CHECKED_IN'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, venueID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check visit history", err)
	}
	return exists, nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	return scanReservationListItems(rows)
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.user_id = $1
		  AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user keyset", err)
	}
	return scanReservationListItems(rows)
}

func (r *ReservationReadStore) FindByVenueFirstPage(ctx context.Context, venueID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.venue_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, venueID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by venue", err)
	}
	return scanReservationListItems(rows)
}

func (r *ReservationReadStore) FindByVenueKeyset(ctx context.Context, venueID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	query := `
		SELECT ` + reservationListColumns + `
		FROM reservations r
		JOIN venues v ON v.id = r.venue_id
		WHERE r.venue_id = $1
		  AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, venueID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by venue keyset", err)
	}
	return scanReservationListItems(rows)
}

func scanReservationListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.VenueID, &item.VenueName, &item.GuestName,
			&item.PartySize, &item.ScheduledAt, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
