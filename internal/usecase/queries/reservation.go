package queries

import (
	"context"
	"time"

	"agora-server/internal/domain/user"
	"agora-server/internal/infra"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrAccessDenied        = errs.New("access denied")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses authorization for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListByVenue(ctx context.Context, actor shared.Actor, venueID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByVenueFirstPage(ctx context.Context, venueID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByVenueKeyset(ctx context.Context, venueID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo      ReservationViewRepo
	venueRepo VenueViewRepo
}

func NewReservationQueries(repo ReservationViewRepo, venueRepo VenueViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, venueRepo: venueRepo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	if err := q.authorize(ctx, actor, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	size := ValidateLimit(limit)

	var (
		rows []*ReservationListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(size+1))
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(size+1))
	}
	if err != nil {
		return nil, nil, err
	}

	return reservationPage(rows, size)
}

func (q *reservationQueriesImpl) ListByVenue(ctx context.Context, actor shared.Actor, venueID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	venueView, err := q.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrVenueNotFound)
		}
		return nil, nil, err
	}
	if venueView.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, nil, ErrAccessDenied
	}

	size := ValidateLimit(limit)

	var rows []*ReservationListItem
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

	return reservationPage(rows, size)
}

// The guest sees their own reservation; venue owners and admins see any
// reservation at their venue.
func (q *reservationQueriesImpl) authorize(ctx context.Context, actor shared.Actor, view *ReservationView) error {
	if actor.ID == view.UserID || actor.IsAdmin() {
		return nil
	}
	if actor.Role == user.RoleBusiness {
		venueView, err := q.venueRepo.FindByID(ctx, view.VenueID)
		if err == nil && venueView.OwnerID == actor.ID {
			return nil
		}
	}
	return ErrAccessDenied
}

func reservationPage(rows []*ReservationListItem, size int) ([]*ReservationListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > size {
		rows = rows[:size]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
