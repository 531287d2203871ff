package repository

import (
	"context"

	"agora-server/internal/domain/reservation"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() shared.ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations
			(id, venue_id, user_id, guest_name, guest_email, guest_phone, party_size, scheduled_at, status, qr_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var phone *string
	if p := res.GuestPhone(); p != "" {
		phone = &p
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		res.ID(), res.VenueID(), res.UserID(), res.GuestName(), res.GuestEmail(), phone,
		res.PartySize(), res.ScheduledAt(), res.Status().String(), res.QRToken(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("slot already reserved", err, infra.KindDuplicateKey)
		}
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("venue or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

// UpdateStatusIf is the compare-and-set backing every status transition.
// The WHERE clause makes concurrent deciders race on the same row version;
// the loser gets zero rows and must re-read.
func (r *ReservationRepository) UpdateStatusIf(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to reservation.Status) (bool, error) {
	const query = `
		UPDATE reservations
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := dbtx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return tag.RowsAffected() == 1, nil
}
