//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agora-server/internal/domain/reservation"
	"agora-server/internal/domain/user"
	"agora-server/internal/domain/venue"
	"agora-server/internal/handler/dto/request"
	"agora-server/internal/infra"
	"agora-server/internal/infra/db"
	"agora-server/internal/infra/events"
	"agora-server/internal/pkg/checkin"
	"agora-server/internal/pkg/clock"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"
	"agora-server/tests/common/builder"
	queriesmock "agora-server/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Hand-rolled unit-of-work fakes. The real PostgresUoW needs a pgx pool,
// so command tests swap in an in-memory variant that reuses the same
// repository error kinds.

type fakeReads struct {
	venues       map[uuid.UUID]*shared.VenueSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
	checkedIn    bool
}

func (f *fakeReads) UserByEmail(_ context.Context, _ string) (*shared.UserSnapshot, error) {
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (f *fakeReads) VenueByID(_ context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	if v, ok := f.venues[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
}

func (f *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r, ok := f.reservations[id]; ok {
		return r, nil
	}
	return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
}

func (f *fakeReads) HasCheckedInReservation(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return f.checkedIn, nil
}

type casCall struct {
	from reservation.Status
	to   reservation.Status
}

type fakeReservationRepo struct {
	createID  uuid.UUID
	createErr error
	casOK     bool
	casErr    error
	casCalls  []casCall
	// onCAS runs inside UpdateStatusIf, letting tests mutate state the
	// way a concurrent transaction would.
	onCAS func()
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, _ *reservation.Reservation) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return f.createID, nil
}

func (f *fakeReservationRepo) UpdateStatusIf(_ context.Context, _ db.DBTX, _ uuid.UUID, from, to reservation.Status) (bool, error) {
	f.casCalls = append(f.casCalls, casCall{from: from, to: to})
	if f.onCAS != nil {
		f.onCAS()
	}
	if f.casErr != nil {
		return false, f.casErr
	}
	return f.casOK, nil
}

type fakeTx struct {
	reads        *fakeReads
	reservations *fakeReservationRepo
}

func (f *fakeTx) Users() shared.UserRepository               { return nil }
func (f *fakeTx) Venues() shared.VenueRepository             { return nil }
func (f *fakeTx) Reservations() shared.ReservationRepository { return f.reservations }
func (f *fakeTx) Reviews() shared.ReviewRepository           { return nil }
func (f *fakeTx) Events() shared.EventRepository             { return nil }
func (f *fakeTx) Reads() shared.CommandReads                 { return f.reads }
func (f *fakeTx) DB() db.DBTX                                { return nil }

type fakeUoW struct {
	reads        *fakeReads
	reservations *fakeReservationRepo
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{reads: f.reads, reservations: f.reservations})
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.reads }

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
	uow         *fakeUoW
	clk         *clock.MockClock
	codec       *checkin.Codec
	cmd         commands.ReservationCommands

	owner   shared.Actor
	guest   shared.Actor
	venueID uuid.UUID
	resID   uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.codec = checkin.NewCodec("test-secret", s.clk)

	s.owner = shared.Actor{ID: uuid.New(), Role: user.RoleBusiness}
	s.guest = shared.Actor{ID: uuid.New(), Role: user.RoleUser}
	s.venueID = uuid.New()
	s.resID = uuid.New()

	s.uow = &fakeUoW{
		reads: &fakeReads{
			venues:       map[uuid.UUID]*shared.VenueSnapshot{},
			reservations: map[uuid.UUID]*shared.ReservationSnapshot{},
		},
		reservations: &fakeReservationRepo{createID: s.resID, casOK: true},
	}

	s.cmd = commands.NewReservationCommands(
		s.uow, s.mockQueries, s.codec, events.NoopPublisher{}, s.clk, time.Hour,
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) seedVenue(status venue.Status) {
	s.uow.reads.venues[s.venueID] = &shared.VenueSnapshot{
		ID:      s.venueID,
		OwnerID: s.owner.ID,
		Name:    "Blue Note",
		Status:  status.String(),
	}
}

func (s *ReservationCommandsTestSuite) seedReservation(status reservation.Status) {
	s.uow.reads.reservations[s.resID] = &shared.ReservationSnapshot{
		ID:           s.resID,
		VenueID:      s.venueID,
		VenueOwnerID: s.owner.ID,
		VenueName:    "Blue Note",
		UserID:       s.guest.ID,
		Status:       status.String(),
		ScheduledAt:  s.clk.Now().Add(48 * time.Hour),
	}
}

func (s *ReservationCommandsTestSuite) createRequest() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		VenueID:     s.venueID,
		GuestName:   "Taro Yamada",
		GuestEmail:  "taro@example.com",
		PartySize:   4,
		ScheduledAt: s.clk.Now().Add(48 * time.Hour),
	}
}

// ================================================================================
// Create
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreate() {
	returnView := builder.NewReservationBuilder().BuildViewQuery()
	returnView.ID = s.resID

	s.Run("success: persists a pending reservation at an approved venue", func() {
		s.seedVenue(venue.StatusApproved)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), s.resID).
			Return(returnView, nil).Times(1)

		view, err := s.cmd.Create(context.Background(), s.guest.ID, s.createRequest())

		s.NoError(err)
		s.Equal(s.resID, view.ID)
	})

	s.Run("error: venue does not exist", func() {
		req := s.createRequest()
		req.VenueID = uuid.New()

		_, err := s.cmd.Create(context.Background(), s.guest.ID, req)
		s.ErrorIs(err, commands.ErrVenueNotFound)
	})

	s.Run("error: venue not approved", func() {
		s.seedVenue(venue.StatusPending)

		_, err := s.cmd.Create(context.Background(), s.guest.ID, s.createRequest())
		s.ErrorIs(err, commands.ErrVenueNotApproved)
	})

	s.Run("error: domain validation rejects invalid party size", func() {
		s.seedVenue(venue.StatusApproved)
		req := s.createRequest()
		req.PartySize = 0

		_, err := s.cmd.Create(context.Background(), s.guest.ID, req)
		// The sentinel rides on the error as a mark, so match through errs.
		s.True(errs.Is(err, commands.ErrDomainValidation))
	})

	s.Run("error: duplicate slot maps to already reserved", func() {
		s.seedVenue(venue.StatusApproved)
		s.uow.reservations.createErr = infra.WrapRepoErr("duplicate", errors.New("unique violation"), infra.KindDuplicateKey)
		defer func() { s.uow.reservations.createErr = nil }()

		_, err := s.cmd.Create(context.Background(), s.guest.ID, s.createRequest())
		s.ErrorIs(err, commands.ErrAlreadyReserved)
	})
}

// ================================================================================
// Decide
// ================================================================================

func (s *ReservationCommandsTestSuite) TestDecide() {
	returnView := builder.NewReservationBuilder().WithStatus(reservation.StatusAccepted).BuildViewQuery()
	returnView.ID = s.resID

	s.Run("success: owner accepts a pending reservation via CAS", func() {
		s.seedReservation(reservation.StatusPending)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), s.resID).
			Return(returnView, nil).Times(1)

		view, err := s.cmd.Decide(context.Background(), s.owner, s.resID, "ACCEPTED")

		s.NoError(err)
		s.Equal(reservation.StatusAccepted.String(), view.Status)
		s.Require().Len(s.uow.reservations.casCalls, 1)
		s.Equal(reservation.StatusPending, s.uow.reservations.casCalls[0].from)
		s.Equal(reservation.StatusAccepted, s.uow.reservations.casCalls[0].to)
	})

	s.Run("success: admin may decide for any venue", func() {
		s.seedReservation(reservation.StatusPending)
		admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), s.resID).
			Return(returnView, nil).Times(1)

		_, err := s.cmd.Decide(context.Background(), admin, s.resID, "ACCEPTED")
		s.NoError(err)
	})

	s.Run("error: unknown status string", func() {
		_, err := s.cmd.Decide(context.Background(), s.owner, s.resID, "BANANA")
		s.ErrorIs(err, commands.ErrStatusInvalid)
	})

	s.Run("error: PENDING is never a valid destination", func() {
		s.seedReservation(reservation.StatusPending)

		_, err := s.cmd.Decide(context.Background(), s.owner, s.resID, "PENDING")
		s.ErrorIs(err, commands.ErrStatusInvalid)
	})

	s.Run("error: reservation not found", func() {
		_, err := s.cmd.Decide(context.Background(), s.owner, uuid.New(), "ACCEPTED")
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("error: non-owner business user is forbidden", func() {
		s.seedReservation(reservation.StatusPending)
		stranger := shared.Actor{ID: uuid.New(), Role: user.RoleBusiness}

		_, err := s.cmd.Decide(context.Background(), stranger, s.resID, "ACCEPTED")
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: terminal state rejects further transitions", func() {
		s.seedReservation(reservation.StatusDeclined)

		_, err := s.cmd.Decide(context.Background(), s.owner, s.resID, "ACCEPTED")

		s.ErrorIs(err, commands.ErrTransitionForbidden)
		var transitionErr *commands.TransitionError
		s.Require().ErrorAs(err, &transitionErr)
		s.Equal(reservation.StatusDeclined, transitionErr.From)
		s.Equal(reservation.StatusAccepted, transitionErr.To)
	})

	s.Run("error: CAS loser reports the status it actually observed", func() {
		s.seedReservation(reservation.StatusPending)
		s.uow.reservations.casOK = false
		// Simulate a concurrent accept landing between snapshot and CAS.
		s.uow.reservations.onCAS = func() {
			s.uow.reads.reservations[s.resID].Status = reservation.StatusAccepted.String()
		}
		defer func() {
			s.uow.reservations.casOK = true
			s.uow.reservations.onCAS = nil
		}()

		_, err := s.cmd.Decide(context.Background(), s.owner, s.resID, "DECLINED")

		var transitionErr *commands.TransitionError
		s.Require().ErrorAs(err, &transitionErr)
		s.Equal(reservation.StatusAccepted, transitionErr.From)
		s.Equal(reservation.StatusDeclined, transitionErr.To)
	})
}

// ================================================================================
// CheckinByToken
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCheckinByToken() {
	returnView := builder.NewReservationBuilder().WithStatus(reservation.StatusCheckedIn).BuildViewQuery()
	returnView.ID = s.resID

	mintToken := func() string {
		token, err := s.codec.Encode(s.resID, s.venueID, time.Hour)
		s.Require().NoError(err)
		return token
	}

	s.Run("success: valid token checks in an accepted reservation", func() {
		s.seedReservation(reservation.StatusAccepted)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), s.resID).
			Return(returnView, nil).Times(1)

		view, err := s.cmd.CheckinByToken(context.Background(), s.owner, mintToken())

		s.NoError(err)
		s.Equal(reservation.StatusCheckedIn.String(), view.Status)
		last := s.uow.reservations.casCalls[len(s.uow.reservations.casCalls)-1]
		s.Equal(reservation.StatusAccepted, last.from)
		s.Equal(reservation.StatusCheckedIn, last.to)
	})

	s.Run("error: malformed token surfaces the codec error", func() {
		_, err := s.cmd.CheckinByToken(context.Background(), s.owner, "not-a-token")
		s.ErrorIs(err, checkin.ErrFormatInvalid)
	})

	s.Run("error: token minted for a different venue is forbidden", func() {
		s.seedReservation(reservation.StatusAccepted)
		s.uow.reads.reservations[s.resID].VenueID = uuid.New()
		defer func() { s.uow.reads.reservations[s.resID].VenueID = s.venueID }()

		_, err := s.cmd.CheckinByToken(context.Background(), s.owner, mintToken())
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: non-owner cannot check guests in", func() {
		s.seedReservation(reservation.StatusAccepted)
		stranger := shared.Actor{ID: uuid.New(), Role: user.RoleBusiness}

		_, err := s.cmd.CheckinByToken(context.Background(), stranger, mintToken())
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: reservation no longer accepted", func() {
		s.seedReservation(reservation.StatusCheckedIn)
		s.uow.reservations.casOK = false
		defer func() { s.uow.reservations.casOK = true }()

		_, err := s.cmd.CheckinByToken(context.Background(), s.owner, mintToken())
		s.ErrorIs(err, commands.ErrNotAccepted)
	})
}

// ================================================================================
// IssueCheckinToken
// ================================================================================

func (s *ReservationCommandsTestSuite) TestIssueCheckinToken() {
	s.Run("success: returns a decodable token with the configured TTL", func() {
		s.seedReservation(reservation.StatusAccepted)

		result, err := s.cmd.IssueCheckinToken(context.Background(), s.guest, s.resID)

		s.Require().NoError(err)
		s.Equal(s.clk.Now().Add(time.Hour).UTC(), result.ExpiresAt)

		payload, err := s.codec.Decode(result.Token)
		s.Require().NoError(err)
		s.Equal(s.resID, payload.ReservationID)
		s.Equal(s.venueID, payload.VenueID)
	})

	s.Run("error: only the booking guest may mint the token", func() {
		s.seedReservation(reservation.StatusAccepted)

		_, err := s.cmd.IssueCheckinToken(context.Background(), s.owner, s.resID)
		s.ErrorIs(err, commands.ErrForbidden)
	})

	s.Run("error: pending reservation has no token yet", func() {
		s.seedReservation(reservation.StatusPending)

		_, err := s.cmd.IssueCheckinToken(context.Background(), s.guest, s.resID)
		s.ErrorIs(err, commands.ErrNotAccepted)
	})

	s.Run("error: unknown reservation", func() {
		_, err := s.cmd.IssueCheckinToken(context.Background(), s.guest, uuid.New())
		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}

var _ queries.ReservationQueries = (*queriesmock.MockReservationQueries)(nil)
