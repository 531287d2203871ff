package queries

import (
	"context"

	"agora-server/internal/infra"
	"agora-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*EventView, error)
	ListUpcoming(ctx context.Context, limit int) ([]*EventView, error)
}

type EventViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*EventView, error)
	FindUpcoming(ctx context.Context, limit int32) ([]*EventView, error)
}

type eventQueriesImpl struct {
	repo EventViewRepo
}

func NewEventQueries(repo EventViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEventNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *eventQueriesImpl) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*EventView, error) {
	return q.repo.FindByVenueID(ctx, venueID)
}

func (q *eventQueriesImpl) ListUpcoming(ctx context.Context, limit int) ([]*EventView, error) {
	return q.repo.FindUpcoming(ctx, int32(ValidateLimit(limit)))
}
