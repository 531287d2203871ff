package response

import "agora-server/internal/usecase/queries"

type VenueListResponse struct {
	Items      []*queries.VenueListItem `json:"items"`
	NextCursor string                   `json:"next_cursor,omitempty"`
}

func NewVenueListResponse(items []*queries.VenueListItem, next *queries.Cursor) VenueListResponse {
	resp := VenueListResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []*queries.VenueListItem{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
