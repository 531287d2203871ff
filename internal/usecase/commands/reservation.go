package commands

import (
	"context"
	"log/slog"
	"time"

	"agora-server/internal/domain/reservation"
	"agora-server/internal/domain/venue"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/checkin"
	"agora-server/internal/pkg/clock"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrVenueNotFound       = errs.New("venue not found")
	ErrVenueNotApproved    = errs.New("venue is not approved for bookings")
	ErrAlreadyReserved     = errs.New("slot already reserved")
	ErrNotAccepted         = errs.New("reservation is not accepted")
)

type CheckinTokenResult struct {
	Token     string
	ExpiresAt time.Time
}

type ReservationCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	// Decide moves a reservation to the requested status on behalf of the
	// venue owner. Concurrency is resolved by a compare-and-set on the
	// status column; losers of the race get a TransitionError reflecting
	// the state they actually observed.
	Decide(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, nextStatus string) (*queries.ReservationView, error)
	// CheckinByToken verifies a signed check-in token and moves the
	// reservation from ACCEPTED to CHECKED_IN.
	CheckinByToken(ctx context.Context, actor shared.Actor, token string) (*queries.ReservationView, error)
	IssueCheckinToken(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*CheckinTokenResult, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	codec              *checkin.Codec
	publisher          events.Publisher
	clock              clock.Clock
	tokenTTL           time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	codec *checkin.Codec,
	publisher events.Publisher,
	clk clock.Clock,
	tokenTTL time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		codec:              codec,
		publisher:          publisher,
		clock:              clk,
		tokenTTL:           tokenTTL,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	venueSnapshot, err := r.uow.CommandReads().VenueByID(ctx, req.VenueID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if venueSnapshot.Status != venue.StatusApproved.String() {
		return nil, ErrVenueNotApproved
	}

	entity, err := reservation.NewReservation(
		r.clock,
		req.VenueID, userID,
		req.GuestName, req.GuestEmail, req.GuestPhone,
		req.PartySize,
		req.ScheduledAt,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Reservations().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		reservationID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrAlreadyReserved
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publish(ctx, events.TopicReservationCreated, reservationID, venueSnapshot.ID, reservation.StatusPending)

	return r.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (r *reservationCommandsImpl) Decide(ctx context.Context, actor shared.Actor, reservationID uuid.UUID, nextStatus string) (*queries.ReservationView, error) {
	next, err := reservation.ParseStatus(nextStatus)
	if err != nil {
		return nil, ErrStatusInvalid
	}
	// PENDING is a birth state, never a destination.
	if next == reservation.StatusPending {
		return nil, ErrStatusInvalid
	}

	snapshot, err := r.loadSnapshot(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if snapshot.VenueOwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	from, err := reservation.ParseStatus(snapshot.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !reservation.CanTransition(from, next) {
		return nil, &TransitionError{From: from, To: next}
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, casErr := tx.Reservations().UpdateStatusIf(ctx, tx.DB(), reservationID, from, next)
		if casErr != nil {
			return casErr
		}
		if !ok {
			// Lost the race: report the transition against the current state.
			current, readErr := tx.Reads().ReservationByID(ctx, reservationID)
			if readErr != nil {
				return readErr
			}
			observed, parseErr := reservation.ParseStatus(current.Status)
			if parseErr != nil {
				return parseErr
			}
			return &TransitionError{From: observed, To: next}
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrTransitionForbidden) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publish(ctx, decisionTopic(next), reservationID, snapshot.VenueID, next)

	return r.reservationQueries.GetByIDSystem(ctx, reservationID)
}

func (r *reservationCommandsImpl) CheckinByToken(ctx context.Context, actor shared.Actor, token string) (*queries.ReservationView, error) {
	payload, err := r.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	snapshot, err := r.loadSnapshot(ctx, payload.ReservationID)
	if err != nil {
		return nil, err
	}

	// A token minted for one venue never checks in at another.
	if snapshot.VenueID != payload.VenueID {
		return nil, ErrForbidden
	}
	if snapshot.VenueOwnerID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, casErr := tx.Reservations().UpdateStatusIf(ctx, tx.DB(), snapshot.ID, reservation.StatusAccepted, reservation.StatusCheckedIn)
		if casErr != nil {
			return casErr
		}
		if !ok {
			return ErrNotAccepted
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrNotAccepted) {
			return nil, ErrNotAccepted
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publish(ctx, events.TopicReservationCheckedIn, snapshot.ID, snapshot.VenueID, reservation.StatusCheckedIn)

	return r.reservationQueries.GetByIDSystem(ctx, snapshot.ID)
}

func (r *reservationCommandsImpl) IssueCheckinToken(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) (*CheckinTokenResult, error) {
	snapshot, err := r.loadSnapshot(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if snapshot.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if snapshot.Status != reservation.StatusAccepted.String() {
		return nil, ErrNotAccepted
	}

	token, err := r.codec.Encode(snapshot.ID, snapshot.VenueID, r.tokenTTL)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	payload, err := r.codec.Decode(token)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckinTokenResult{
		Token:     token,
		ExpiresAt: time.Unix(payload.ExpiresAt, 0).UTC(),
	}, nil
}

func (r *reservationCommandsImpl) loadSnapshot(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snapshot, err := r.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (r *reservationCommandsImpl) publish(ctx context.Context, topic string, reservationID, venueID uuid.UUID, status reservation.Status) {
	err := r.publisher.Publish(ctx, topic, map[string]any{
		"reservation_id": reservationID,
		"venue_id":       venueID,
		"status":         status.String(),
		"occurred_at":    r.clock.Now().UTC(),
	})
	if err != nil {
		slog.Warn("failed to publish reservation event", "topic", topic, "reservation_id", reservationID, "error", err.Error())
	}
}

func decisionTopic(next reservation.Status) string {
	switch next {
	case reservation.StatusAccepted:
		return events.TopicReservationAccepted
	case reservation.StatusDeclined:
		return events.TopicReservationDeclined
	case reservation.StatusCheckedIn:
		return events.TopicReservationCheckedIn
	default:
		return events.TopicReservationCreated
	}
}
