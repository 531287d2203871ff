package response

import "agora-server/internal/usecase/queries"

type ReviewListResponse struct {
	Items      []*queries.ReviewView `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func NewReviewListResponse(items []*queries.ReviewView, next *queries.Cursor) ReviewListResponse {
	resp := ReviewListResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []*queries.ReviewView{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
