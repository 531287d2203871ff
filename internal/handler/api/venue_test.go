//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"agora-server/internal/domain/user"
	"agora-server/internal/domain/venue"
	"agora-server/internal/handler/api"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"
	"agora-server/tests/common/builder"
	"agora-server/tests/common/httptest"
	"agora-server/tests/common/testutil"
	commandsmock "agora-server/tests/mock/commands"
	queriesmock "agora-server/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVenueCommands
	mockQueries  *queriesmock.MockVenueQueries
	handler      *api.VenueHandler
	userID       uuid.UUID
	userRole     user.Role
}

func (s *VenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVenueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVenueQueries(s.mockCtrl)
	s.handler = api.NewVenueHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.userRole = user.RoleBusiness

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", s.userRole)
		c.Next()
	}

	// Setup routes
	s.router.GET("/venues", s.handler.Search)
	s.router.GET("/venues/:id", s.handler.Get)
	s.router.POST("/business/venues", authMiddleware, s.handler.Create)
	s.router.GET("/business/venues", authMiddleware, s.handler.ListMine)
	s.router.PATCH("/admin/venues/:id", authMiddleware, s.handler.Moderate)
	s.router.GET("/admin/venues", authMiddleware, s.handler.ListAll)
}

func (s *VenueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVenueHandlerSuite(t *testing.T) {
	suite.Run(t, new(VenueHandlerTestSuite))
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *VenueHandlerTestSuite) TestSearch() {
	items := []*queries.VenueListItem{
		builder.NewVenueBuilder().BuildListItemQuery(),
		builder.NewVenueBuilder().BuildListItemQuery(),
	}

	s.Run("success: returns venue list without filters", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.VenueFilter{}, (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		venues, ok := response["items"].([]any)
		s.True(ok)
		s.Equal(2, len(venues))
	})

	s.Run("success: forwards filters and pagination", func() {
		url := "/venues?q=blue&city=Tokyo&category=live_house&limit=10&after=cursor123"
		expectedFilter := queries.VenueFilter{Query: "blue", City: "Tokyo", Category: "live_house"}
		expectedCursor := &queries.Cursor{After: "cursor123"}
		nextCursor := &queries.Cursor{After: "next_cursor456"}

		s.mockQueries.EXPECT().Search(gomock.Any(), expectedFilter, expectedCursor, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		venues, ok := response["items"].([]any)
		s.True(ok)
		s.Equal(1, len(venues))
		s.Equal("next_cursor456", response["next_cursor"])
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.VenueFilter{}, (*queries.Cursor)(nil), 0).
			Return(nil, nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, api.CodeServerError)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *VenueHandlerTestSuite) TestGet() {
	venueID := uuid.New()
	url := "/venues/" + venueID.String()

	returnView := builder.NewVenueBuilder().BuildViewQuery()
	returnView.ID = venueID

	s.Run("success: returns 200 OK with VenueView", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), venueID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.VenueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(venueID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/venues/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.CodeValidationError)
	})

	s.Run("error: 404 Not Found for missing venue", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), venueID).
			Return(nil, queries.ErrVenueNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, api.CodeNotFound)
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *VenueHandlerTestSuite) TestCreate() {
	url := "/business/venues"

	reqBody := builder.NewVenueBuilder().BuildCreateRequestDTO()
	returnView := builder.NewVenueBuilder().WithStatus(venue.StatusPending).BuildViewQuery()

	validationCases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: city (required)", mutate: testutil.Field("city", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: category (required)", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
		{name: "name length OK (150 chars)", mutate: testutil.Field("name", strings.Repeat("a", 150)), expectCode: http.StatusCreated},
		{name: "name length invalid (151 chars)", mutate: testutil.Field("name", strings.Repeat("a", 151)), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with a pending venue", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response queries.VenueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(venue.StatusPending.String(), response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, api.CodeValidationError)
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, reqBody).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, api.CodeValidationError)
	})
}

// ================================================================================
// TestModerate
// ================================================================================

func (s *VenueHandlerTestSuite) TestModerate() {
	venueID := uuid.New()
	url := "/admin/venues/" + venueID.String()

	reqBody := map[string]any{"status": "APPROVED"}
	returnView := builder.NewVenueBuilder().WithStatus(venue.StatusApproved).BuildViewQuery()
	returnView.ID = venueID

	s.Run("success: returns 200 OK with the approved venue", func() {
		s.userRole = user.RoleAdmin
		s.mockCommands.EXPECT().Moderate(gomock.Any(), gomock.Any(), venueID, "APPROVED").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response queries.VenueView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(venue.StatusApproved.String(), response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/venues/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, api.CodeValidationError)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "caller is not an admin",
				commandsError:  commands.ErrForbidden,
				expectedStatus: http.StatusForbidden,
				expectedCode:   api.CodeForbidden,
			},
			{
				name:           "unknown status value",
				commandsError:  commands.ErrStatusInvalid,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedCode:   api.CodeStatusInvalid,
			},
			{
				name:           "venue not found",
				commandsError:  commands.ErrVenueNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   api.CodeNotFound,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   api.CodeServerError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Moderate(gomock.Any(), gomock.Any(), venueID, "APPROVED").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *VenueHandlerTestSuite) TestListMine() {
	url := "/business/venues"

	s.Run("success: returns owned venues", func() {
		items := []*queries.VenueListItem{builder.NewVenueBuilder().BuildListItemQuery()}
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		venues, ok := response["items"].([]any)
		s.True(ok)
		s.Equal(1, len(venues))
	})

	s.Run("success: empty list serializes as empty array", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		venues, ok := response["items"].([]any)
		s.True(ok)
		s.Empty(venues)
	})
}
