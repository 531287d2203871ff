//go:build e2e

package venue_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"agora-server/internal/domain/user"
	"agora-server/internal/handler/dto/request"
	"agora-server/internal/usecase/queries"
	"agora-server/tests/common/authtest"
	"agora-server/tests/common/dbtest"
	"agora-server/tests/common/httptest"
	"agora-server/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	venuesURL         = "/api/venues"
	businessVenuesURL = "/api/business/venues"
	adminVenueURL     = "/api/admin/venues/%s"
	venueReviewsURL   = "/api/venues/%s/reviews"
)

type VenueSuite struct {
	e2e.SharedSuite
}

func (s *VenueSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestVenueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(VenueSuite))
}

func createVenueRequest(name string) request.CreateVenueRequest {
	return request.CreateVenueRequest{
		Name:     name,
		City:     "Tokyo",
		Category: "live_house",
		Address:  "1-2-3 Minato",
	}
}

// =============================================================================
// TestModerationFlow - submission, approval and public visibility
// =============================================================================

func (s *VenueSuite) TestModerationFlow() {
	s.Run("Normal case: approved venue becomes publicly searchable", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleBusiness))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))

		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		// Owner submits; the venue starts pending.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, businessVenuesURL,
			createVenueRequest("Blue Note"), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, "venue submission should succeed: %s", w.Body.String())

		var created queries.VenueView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "PENDING", created.Status)

		// Pending venues stay out of public search.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, venuesURL+"?q=Blue", nil, "")
		var searchRes struct {
			Items []queries.VenueListItem `json:"items"`
		}
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &searchRes))
		require.Empty(t, searchRes.Items)

		// Admin approves.
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminVenueURL, created.ID),
			map[string]any{"status": "APPROVED"}, adminToken)
		require.Equal(t, http.StatusOK, w.Code, "approval should succeed: %s", w.Body.String())

		var approved queries.VenueView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &approved))
		require.Equal(t, "APPROVED", approved.Status)
		require.NotNil(t, approved.ApprovedAt)

		// Now public search finds it.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, venuesURL+"?q=Blue", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		searchRes.Items = nil
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &searchRes))
		require.Len(t, searchRes.Items, 1)
		require.Equal(t, created.ID, searchRes.Items[0].ID)
	})

	s.Run("Error case: business user cannot reach the admin surface", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleBusiness))
		venueID := dbtest.CreateTestVenue(t, s.DB, ownerID, "Blue Note", "PENDING")

		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminVenueURL, venueID),
			map[string]any{"status": "APPROVED"}, ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: unknown moderation status", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleBusiness))
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin))
		venueID := dbtest.CreateTestVenue(t, s.DB, ownerID, "Blue Note", "PENDING")

		adminToken := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(adminVenueURL, venueID),
			map[string]any{"status": "BANANA"}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "STATUS_INVALID")
	})
}

// =============================================================================
// TestReviewEligibility - reviews require a checked-in visit
// =============================================================================

func (s *VenueSuite) TestReviewEligibility() {
	s.Run("Error case: guest without a checked-in visit cannot review", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleBusiness))
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleUser))
		venueID := dbtest.CreateTestVenue(t, s.DB, ownerID, "Blue Note", "APPROVED")
		dbtest.CreateTestReservation(t, s.DB, venueID, guestID, "ACCEPTED", time.Now().Add(48*time.Hour))

		guestToken := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(venueReviewsURL, venueID),
			request.CreateReviewRequest{Rating: 5, Comment: "Have not actually been yet"}, guestToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "FORBIDDEN")
	})

	s.Run("Error case: second review for the same venue conflicts", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleBusiness))
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", string(user.RoleUser))
		venueID := dbtest.CreateTestVenue(t, s.DB, ownerID, "Blue Note", "APPROVED")
		dbtest.CreateTestReservation(t, s.DB, venueID, guestID, "CHECKED_IN", time.Now().Add(-24*time.Hour))

		guestToken := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")
		reviewURL := fmt.Sprintf(venueReviewsURL, venueID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewURL,
			request.CreateReviewRequest{Rating: 5, Comment: "First visit was great"}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, "first review should succeed: %s", w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewURL,
			request.CreateReviewRequest{Rating: 4, Comment: "Trying to review twice"}, guestToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
