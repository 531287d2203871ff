//go:build unit

package review_test

import (
	"strings"
	"testing"

	"agora-server/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for v := 1; v <= 5; v++ {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}

	for _, v := range []int{-1, 0, 6, 100} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
}

func TestNewComment(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		c, err := review.NewComment("  great place  ")
		require.NoError(t, err)
		assert.Equal(t, "great place", c.String())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := review.NewComment("   ")
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := review.NewComment(strings.Repeat("a", review.MaxCommentLength))
		assert.NoError(t, err)

		_, err = review.NewComment(strings.Repeat("a", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	userID := uuid.New()
	venueID := uuid.New()

	rating, err := review.NewRating(5)
	require.NoError(t, err)
	comment, err := review.NewComment("Excellent service!")
	require.NoError(t, err)

	r := review.NewReview(userID, venueID, rating, comment)
	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, userID, r.UserID())
	assert.Equal(t, venueID, r.VenueID())
	assert.Equal(t, 5, r.Rating().Value())
	assert.Equal(t, "Excellent service!", r.Comment().String())
}
