package review

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment is required")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int {
	return r.value
}

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(s) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: trimmed}, nil
}

func (c Comment) String() string {
	return c.value
}

type Review struct {
	id      uuid.UUID
	userID  uuid.UUID
	venueID uuid.UUID
	rating  Rating
	comment Comment
}

func NewReview(userID, venueID uuid.UUID, rating Rating, comment Comment) *Review {
	return &Review{
		id:      uuid.New(),
		userID:  userID,
		venueID: venueID,
		rating:  rating,
		comment: comment,
	}
}

func (r *Review) ID() uuid.UUID      { return r.id }
func (r *Review) UserID() uuid.UUID  { return r.userID }
func (r *Review) VenueID() uuid.UUID { return r.venueID }
func (r *Review) Rating() Rating     { return r.rating }
func (r *Review) Comment() Comment   { return r.comment }
