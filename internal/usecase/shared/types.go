package shared

import (
	"time"

	"agora-server/internal/domain/user"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a command or query.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
}

type VenueSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Status  string
}

// Minimal snapshot for command read operations. VenueOwnerID is joined in
// so transition authorization never needs a second round trip.
type ReservationSnapshot struct {
	ID           uuid.UUID
	VenueID      uuid.UUID
	VenueOwnerID uuid.UUID
	VenueName    string
	UserID       uuid.UUID
	Status       string
	ScheduledAt  time.Time
}
