package commands

import (
	"context"
	"log/slog"

	"agora-server/internal/domain/event"
	"agora-server/internal/domain/venue"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/clock"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventCommands interface {
	Create(ctx context.Context, actor shared.Actor, venueID uuid.UUID, req reqdto.CreateEventRequest) (*queries.EventView, error)
}

type eventCommandsImpl struct {
	uow          shared.UnitOfWork
	eventQueries queries.EventQueries
	publisher    events.Publisher
	clock        clock.Clock
}

func NewEventCommands(uow shared.UnitOfWork, eventQueries queries.EventQueries, publisher events.Publisher, clk clock.Clock) EventCommands {
	return &eventCommandsImpl{
		uow:          uow,
		eventQueries: eventQueries,
		publisher:    publisher,
		clock:        clk,
	}
}

func (e *eventCommandsImpl) Create(ctx context.Context, actor shared.Actor, venueID uuid.UUID, req reqdto.CreateEventRequest) (*queries.EventView, error) {
	venueSnapshot, err := e.uow.CommandReads().VenueByID(ctx, venueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if venueSnapshot.OwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if venueSnapshot.Status != venue.StatusApproved.String() {
		return nil, ErrVenueNotApproved
	}

	entity, err := event.NewEvent(e.clock, venueID, req.Title, req.Description, req.StartsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var eventID uuid.UUID
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Events().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		eventID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if pubErr := e.publisher.Publish(ctx, events.TopicEventPublished, map[string]any{
		"event_id": eventID,
		"venue_id": venueID,
	}); pubErr != nil {
		slog.Warn("failed to publish event notification", "event_id", eventID, "error", pubErr.Error())
	}

	return e.eventQueries.GetByID(ctx, eventID)
}
