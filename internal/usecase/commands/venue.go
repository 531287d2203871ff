package commands

import (
	"context"
	"log/slog"

	"agora-server/internal/domain/venue"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateVenueRequest) (*queries.VenueView, error)
	// Moderate is the admin-only approval workflow: PENDING venues become
	// APPROVED or REJECTED, live venues can be SUSPENDED.
	Moderate(ctx context.Context, actor shared.Actor, venueID uuid.UUID, nextStatus string) (*queries.VenueView, error)
}

type venueCommandsImpl struct {
	uow          shared.UnitOfWork
	venueQueries queries.VenueQueries
	publisher    events.Publisher
}

func NewVenueCommands(uow shared.UnitOfWork, venueQueries queries.VenueQueries, publisher events.Publisher) VenueCommands {
	return &venueCommandsImpl{
		uow:          uow,
		venueQueries: venueQueries,
		publisher:    publisher,
	}
}

func (v *venueCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateVenueRequest) (*queries.VenueView, error) {
	entity, err := venue.NewVenue(ownerID, req.Name, req.City, req.Category, req.Address, req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var venueID uuid.UUID
	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Venues().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		venueID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	v.publish(ctx, events.TopicVenueSubmitted, venueID, entity.Status())

	return v.venueQueries.GetByID(ctx, shared.Actor{ID: ownerID}, venueID)
}

func (v *venueCommandsImpl) Moderate(ctx context.Context, actor shared.Actor, venueID uuid.UUID, nextStatus string) (*queries.VenueView, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	next, err := venue.ParseStatus(nextStatus)
	if err != nil || next == venue.StatusPending {
		return nil, ErrStatusInvalid
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Venues().UpdateStatus(ctx, tx.DB(), venueID, next, actor.ID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	v.publish(ctx, events.TopicVenueModerated, venueID, next)

	return v.venueQueries.GetByID(ctx, actor, venueID)
}

func (v *venueCommandsImpl) publish(ctx context.Context, topic string, venueID uuid.UUID, status venue.Status) {
	err := v.publisher.Publish(ctx, topic, map[string]any{
		"venue_id": venueID,
		"status":   status.String(),
	})
	if err != nil {
		slog.Warn("failed to publish venue event", "topic", topic, "venue_id", venueID, "error", err.Error())
	}
}
