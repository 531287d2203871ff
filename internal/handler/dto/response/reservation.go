package response

import (
	"time"

	"agora-server/internal/usecase/queries"
)

type ReservationListResponse struct {
	Items      []*queries.ReservationListItem `json:"items"`
	NextCursor string                         `json:"next_cursor,omitempty"`
}

func NewReservationListResponse(items []*queries.ReservationListItem, next *queries.Cursor) ReservationListResponse {
	resp := ReservationListResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []*queries.ReservationListItem{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type CheckinTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
