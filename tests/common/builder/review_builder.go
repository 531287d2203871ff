//go:build unit || e2e

package builder

import (
	"time"

	domreview "agora-server/internal/domain/review"
	reqdto "agora-server/internal/handler/dto/request"
	"agora-server/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string
	VenueID   uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Taro Yamada",
		VenueID:   uuid.New(),
		Rating:    5,
		Comment:   "Excellent service!",
		CreatedAt: time.Now(),
	}
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(b.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(b.UserID, b.VenueID, rating, comment), nil
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}

func (b *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        b.ID,
		VenueID:   b.VenueID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Rating:    int32(b.Rating),
		Comment:   b.Comment,
		CreatedAt: b.CreatedAt,
	}
}
