package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID, after *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type ReviewViewRepo interface {
	FindByVenueFirstPage(ctx context.Context, venueID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByVenueKeyset(ctx context.Context, venueID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) ListByVenue(ctx context.Context, venueID uuid.UUID, after *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	size := ValidateLimit(limit)

	var (
		rows []*ReviewView
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindByVenueFirstPage(ctx, venueID, int32(size+1))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindByVenueKeyset(ctx, venueID, lastCreatedAt, lastID, int32(size+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > size {
		rows = rows[:size]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
