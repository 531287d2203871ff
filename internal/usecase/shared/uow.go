package shared

import (
	"context"

	"agora-server/internal/domain/event"
	"agora-server/internal/domain/reservation"
	"agora-server/internal/domain/review"
	"agora-server/internal/domain/user"
	"agora-server/internal/domain/venue"
	"agora-server/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Venues() VenueRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Events() EventRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	HasCheckedInReservation(ctx context.Context, userID, venueID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

type VenueRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID, status venue.Status, reviewerID uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// UpdateStatusIf performs a compare-and-set on the status column.
	// Returns false when the row no longer holds the expected status.
	UpdateStatusIf(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to reservation.Status) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rv *review.Review) (uuid.UUID, error)
}

type EventRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, ev *event.Event) (uuid.UUID, error)
}
