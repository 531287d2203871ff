package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// VenueView represents read-optimized venue data including rating aggregates
type VenueView struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	City        string     `json:"city"`
	Category    string     `json:"category"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	RatingAvg   *float64   `json:"rating_avg,omitempty"`
	ReviewCount int64      `json:"review_count"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type VenueListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	RatingAvg   *float64  `json:"rating_avg,omitempty"`
	ReviewCount int64     `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// VenueFilter narrows venue searches. Zero values mean no restriction.
type VenueFilter struct {
	Query    string
	City     string
	Category string
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	UserID      uuid.UUID `json:"user_id"`
	GuestName   string    `json:"guest_name"`
	GuestEmail  string    `json:"guest_email"`
	GuestPhone  *string   `json:"guest_phone,omitempty"`
	PartySize   int32     `json:"party_size"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venue_id"`
	VenueName   string    `json:"venue_name"`
	GuestName   string    `json:"guest_name"`
	PartySize   int32     `json:"party_size"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type EventView struct {
	ID          uuid.UUID `json:"id"`
	VenueID     uuid.UUID `json:"venue_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
}
