//go:build unit || e2e

package builder

import (
	"time"

	"agora-server/internal/domain/reservation"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/pkg/clock"
	"agora-server/internal/usecase/queries"
	"agora-server/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	VenueID     uuid.UUID
	VenueOwner  uuid.UUID
	VenueName   string
	UserID      uuid.UUID
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	PartySize   int
	ScheduledAt time.Time
	Status      reservation.Status
	Now         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:          uuid.New(),
		VenueID:     uuid.New(),
		VenueOwner:  uuid.New(),
		VenueName:   "Blue Note",
		UserID:      uuid.New(),
		GuestName:   "Taro Yamada",
		GuestEmail:  "taro@example.com",
		GuestPhone:  "090-0000-0000",
		PartySize:   4,
		ScheduledAt: now.Add(48 * time.Hour),
		Status:      reservation.StatusPending,
		Now:         now,
	}
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithUser(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	clk := clock.NewMockClock(b.Now)
	return reservation.NewReservation(clk, b.VenueID, b.UserID,
		b.GuestName, b.GuestEmail, b.GuestPhone, b.PartySize, b.ScheduledAt)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		VenueID:     b.VenueID,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  b.GuestPhone,
		PartySize:   b.PartySize,
		ScheduledAt: b.ScheduledAt,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	phone := b.GuestPhone
	return &queries.ReservationView{
		ID:          b.ID,
		VenueID:     b.VenueID,
		VenueName:   b.VenueName,
		UserID:      b.UserID,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		GuestPhone:  &phone,
		PartySize:   int32(b.PartySize),
		ScheduledAt: b.ScheduledAt,
		Status:      b.Status.String(),
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:           b.ID,
		VenueID:      b.VenueID,
		VenueOwnerID: b.VenueOwner,
		VenueName:    b.VenueName,
		UserID:       b.UserID,
		Status:       b.Status.String(),
		ScheduledAt:  b.ScheduledAt,
	}
}
