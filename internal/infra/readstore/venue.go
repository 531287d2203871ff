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

const venueListColumns = `
	v.id, v.name, v.city, v.category, v.status,
	AVG(rv.rating)::float8 AS rating_avg,
	COUNT(rv.id) AS review_count,
	v.created_at`

type VenueReadStore struct {
	db db.DBTX
}

func NewVenueReadStore(dbtx db.DBTX) *VenueReadStore {
	return &VenueReadStore{db: dbtx}
}

func (r *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	const query = `
		SELECT v.id, v.owner_id, v.name, v.city, v.category, v.address, v.description, v.status,
		       AVG(rv.rating)::float8 AS rating_avg,
		       COUNT(rv.id) AS review_count,
		       v.approved_at, v.created_at, v.updated_at
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		WHERE v.id = $1
		GROUP BY v.id`

	var v queries.VenueView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.City, &v.Category, &v.Address, &v.Description, &v.Status,
		&v.RatingAvg, &v.ReviewCount, &v.ApprovedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue by ID", err)
	}
	return &v, nil
}

func (r *VenueReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	const query = `
		SELECT id, owner_id, name, status
		FROM venues
		WHERE id = $1`

	var s shared.VenueSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.OwnerID, &s.Name, &s.Status)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find venue snapshot", err)
	}
	return &s, nil
}

func (r *VenueReadStore) SearchApprovedFirstPage(ctx context.Context, filter queries.VenueFilter, limit int32) ([]*queries.VenueListItem, error) {
	query := `
		SELECT ` + venueListColumns + `
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		WHERE v.status = 'APPROVED'
		  AND ($1 = '' OR v.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR v.city = $2)
		  AND ($3 = '' OR v.category = $3)
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, query, filter.Query, filter.City, filter.Category, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search venues", err)
	}
	return scanVenueListItems(rows)
}

func (r *VenueReadStore) SearchApprovedKeyset(ctx context.Context, filter queries.VenueFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.VenueListItem, error) {
	query := `
		SELECT ` + venueListColumns + `
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		WHERE v.status = 'APPROVED'
		  AND ($1 = '' OR v.name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR v.city = $2)
		  AND ($3 = '' OR v.category = $3)
		  AND (v.created_at, v.id) < ($4, $5)
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $6`

	rows, err := r.db.Query(ctx, query, filter.Query, filter.City, filter.Category, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search venues keyset", err)
	}
	return scanVenueListItems(rows)
}

func (r *VenueReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.VenueListItem, error) {
	query := `
		SELECT ` + venueListColumns + `
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		WHERE v.owner_id = $1
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find venues by owner", err)
	}
	return scanVenueListItems(rows)
}

func (r *VenueReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.VenueListItem, error) {
	query := `
		SELECT ` + venueListColumns + `
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	return scanVenueListItems(rows)
}

func (r *VenueReadStore) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.VenueListItem, error) {
	query := `
		SELECT ` + venueListColumns + `
		FROM venues v
		LEFT JOIN reviews rv ON rv.venue_id = v.id
		WHERE (v.created_at, v.id) < ($1, $2)
		GROUP BY v.id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues keyset", err)
	}
	return scanVenueListItems(rows)
}

func scanVenueListItems(rows pgx.Rows) ([]*queries.VenueListItem, error) {
	defer rows.Close()

	var result []*queries.VenueListItem
	for rows.Next() {
		var item queries.VenueListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.City, &item.Category, &item.Status,
			&item.RatingAvg, &item.ReviewCount, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venue rows", err)
	}
	return result, nil
}
