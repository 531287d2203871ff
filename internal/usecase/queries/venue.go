package queries

import (
	"context"
	"time"

	"agora-server/internal/domain/venue"
	"agora-server/internal/infra"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVenueNotFound = errs.New("venue not found")

type VenueQueries interface {
	// Search lists approved venues only; drafts never leak into discovery.
	Search(ctx context.Context, filter VenueFilter, after *Cursor, limit int) ([]*VenueListItem, *Cursor, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*VenueView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VenueListItem, error)
	ListAll(ctx context.Context, after *Cursor, limit int) ([]*VenueListItem, *Cursor, error)
}

type VenueViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	SearchApprovedFirstPage(ctx context.Context, filter VenueFilter, limit int32) ([]*VenueListItem, error)
	SearchApprovedKeyset(ctx context.Context, filter VenueFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*VenueListItem, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*VenueListItem, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*VenueListItem, error)
	FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*VenueListItem, error)
}

type venueQueriesImpl struct {
	repo VenueViewRepo
}

func NewVenueQueries(repo VenueViewRepo) VenueQueries {
	return &venueQueriesImpl{repo: repo}
}

func (q *venueQueriesImpl) Search(ctx context.Context, filter VenueFilter, after *Cursor, limit int) ([]*VenueListItem, *Cursor, error) {
	size := ValidateLimit(limit)

	var (
		rows []*VenueListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.SearchApprovedFirstPage(ctx, filter, int32(size+1))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.SearchApprovedKeyset(ctx, filter, lastCreatedAt, lastID, int32(size+1))
	}
	if err != nil {
		return nil, nil, err
	}

	return venuePage(rows, size)
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*VenueView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVenueNotFound)
		}
		return nil, err
	}

	// Unapproved venues are visible only to their owner and admins.
	if view.Status != venue.StatusApproved.String() && view.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrVenueNotFound
	}
	return view, nil
}

func (q *venueQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VenueListItem, error) {
	return q.repo.FindByOwnerID(ctx, ownerID)
}

func (q *venueQueriesImpl) ListAll(ctx context.Context, after *Cursor, limit int) ([]*VenueListItem, *Cursor, error) {
	size := ValidateLimit(limit)

	var (
		rows []*VenueListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindAllFirstPage(ctx, int32(size+1))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindAllKeyset(ctx, lastCreatedAt, lastID, int32(size+1))
	}
	if err != nil {
		return nil, nil, err
	}

	return venuePage(rows, size)
}

// venuePage trims the probe row and encodes the next cursor when more
// rows remain.
func venuePage(rows []*VenueListItem, size int) ([]*VenueListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > size {
		rows = rows[:size]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
