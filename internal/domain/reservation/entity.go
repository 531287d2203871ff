package reservation

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"agora-server/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrScheduledInPast = errors.New("scheduled time cannot be in the past")
	ErrInvalidParty    = errors.New("party size must be at least 1")
	ErrGuestNameEmpty  = errors.New("guest name is required")
)

const MaxPartySize = 50

// Reservation is one booking of a venue by a guest. Identity is keyed by
// the booking account; the contact fields are denormalized display data
// captured at booking time.
type Reservation struct {
	id          uuid.UUID
	venueID     uuid.UUID
	userID      uuid.UUID
	guestName   string
	guestEmail  string
	guestPhone  string
	partySize   int
	scheduledAt time.Time
	status      Status
	qrToken     string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	clk clock.Clock,
	venueID, userID uuid.UUID,
	guestName, guestEmail, guestPhone string,
	partySize int,
	scheduledAt time.Time,
) (*Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrGuestNameEmpty
	}
	if partySize < 1 || partySize > MaxPartySize {
		return nil, ErrInvalidParty
	}
	if scheduledAt.Before(clk.Now()) {
		return nil, ErrScheduledInPast
	}

	return &Reservation{
		id:          uuid.New(),
		venueID:     venueID,
		userID:      userID,
		guestName:   guestName,
		guestEmail:  strings.TrimSpace(guestEmail),
		guestPhone:  strings.TrimSpace(guestPhone),
		partySize:   partySize,
		scheduledAt: scheduledAt,
		status:      StatusPending,
		qrToken:     newOpaqueToken(),
	}, nil
}

func ReconstructReservation(
	id, venueID, userID uuid.UUID,
	guestName, guestEmail, guestPhone string,
	partySize int,
	scheduledAt time.Time,
	status Status,
	qrToken string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		venueID:     venueID,
		userID:      userID,
		guestName:   guestName,
		guestEmail:  guestEmail,
		guestPhone:  guestPhone,
		partySize:   partySize,
		scheduledAt: scheduledAt,
		status:      status,
		qrToken:     qrToken,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) VenueID() uuid.UUID     { return r.venueID }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) GuestName() string      { return r.guestName }
func (r *Reservation) GuestEmail() string     { return r.guestEmail }
func (r *Reservation) GuestPhone() string     { return r.guestPhone }
func (r *Reservation) PartySize() int         { return r.partySize }
func (r *Reservation) ScheduledAt() time.Time { return r.scheduledAt }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) QRToken() string        { return r.qrToken }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

// newOpaqueToken returns the random per-reservation token embedded in
// the confirmation QR code. Not a credential by itself; check-in always
// goes through the signed token.
func newOpaqueToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(buf)
}
