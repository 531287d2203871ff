package repository

import (
	"context"

	"agora-server/internal/domain/review"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() shared.ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rv *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, venue_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		rv.ID(), rv.VenueID(), rv.UserID(), rv.Rating().Value(), rv.Comment().String(),
	).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("review already exists for this venue", err, infra.KindDuplicateKey)
		}
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("venue or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}
