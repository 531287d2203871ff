package repository

import (
	"context"

	"agora-server/internal/domain/venue"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueRepository struct{}

func NewVenueRepository() shared.VenueRepository {
	return &VenueRepository{}
}

func (r *VenueRepository) Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) (uuid.UUID, error) {
	const query = `
		INSERT INTO venues (id, owner_id, name, city, category, address, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		v.ID(), v.OwnerID(), v.Name(), v.City(), v.Category(), v.Address(), v.Description(), v.Status().String(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("venue owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create venue", err)
	}
	return id, nil
}

// UpdateStatus records the moderating admin only when the venue is approved;
// rejected and suspended venues keep the columns NULL.
func (r *VenueRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, status venue.Status, reviewerID uuid.UUID) error {
	const query = `
		UPDATE venues
		SET status = $2,
		    approved_by = CASE WHEN $2 = 'APPROVED' THEN $3 ELSE NULL END,
		    approved_at = CASE WHEN $2 = 'APPROVED' THEN now() ELSE NULL END,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, venueID, status.String(), reviewerID)
	if err != nil {
		return infra.WrapRepoErr("failed to update venue status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
