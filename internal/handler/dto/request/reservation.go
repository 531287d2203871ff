package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	VenueID     uuid.UUID `json:"venue_id" binding:"required"`
	GuestName   string    `json:"guest_name" binding:"required,max=100"`
	GuestEmail  string    `json:"guest_email" binding:"required,email"`
	GuestPhone  string    `json:"guest_phone" binding:"omitempty,max=32"`
	PartySize   int       `json:"party_size" binding:"required,min=1"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type DecideReservationRequest struct {
	Status string `json:"status" binding:"required"`
}

type CheckinRequest struct {
	Token string `json:"token" binding:"required"`
}
