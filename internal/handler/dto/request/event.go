package request

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=150"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
}
