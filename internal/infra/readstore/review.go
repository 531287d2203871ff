package readstore

import (
	"context"
	"time"

	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reviewColumns = `
	rv.id, rv.venue_id, rv.user_id, u.name, rv.rating, rv.comment, rv.created_at`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.id = $1`

	var v queries.ReviewView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.VenueID, &v.UserID, &v.UserName, &v.Rating, &v.Comment, &v.CreatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return &v, nil
}

func (r *ReviewReadStore) FindByVenueFirstPage(ctx context.Context, venueID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.venue_id = $1
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, venueID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by venue", err)
	}
	return scanReviews(rows)
}

func (r *ReviewReadStore) FindByVenueKeyset(ctx context.Context, venueID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		WHERE rv.venue_id = $1
		  AND (rv.created_at, rv.id) < ($2, $3)
		ORDER BY rv.created_at DESC, rv.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, venueID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by venue keyset", err)
	}
	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		var v queries.ReviewView
		if err := rows.Scan(&v.ID, &v.VenueID, &v.UserID, &v.UserName, &v.Rating, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}
