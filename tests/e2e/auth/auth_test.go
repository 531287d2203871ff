//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"agora-server/internal/domain/user"
	"agora-server/internal/handler/dto/request"
	"agora-server/internal/handler/dto/response"
	"agora-server/tests/common/authtest"
	"agora-server/tests/common/dbtest"
	"agora-server/tests/common/httptest"
	"agora-server/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestSignUp
// =============================================================================

func (s *AuthSuite) TestSignUp() {
	s.Run("Normal case: signup logs the user straight in", func() {
		t := s.T()

		reqBody := request.SignUpRequest{
			Email:    "newuser@example.com",
			Password: "password123",
			Name:     "New User",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, "signup should succeed: %s", w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.NotNil(t, res.User)
		require.Equal(t, "newuser@example.com", res.User.Email)
		require.Equal(t, string(user.RoleUser), res.User.Role)

		accessCookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, accessCookie, "access token cookie should be set")
	})

	s.Run("Normal case: business role signup", func() {
		t := s.T()

		reqBody := request.SignUpRequest{
			Email:    "venue-owner@example.com",
			Password: "password123",
			Name:     "Venue Owner",
			Role:     string(user.RoleBusiness),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, string(user.RoleBusiness), res.User.Role)
	})

	s.Run("Error case: duplicate email conflicts", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleUser))

		reqBody := request.SignUpRequest{
			Email:    "taken@example.com",
			Password: "password123",
			Name:     "Late Comer",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// =============================================================================
// TestLogin
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login returns token pair and user view", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "login@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, "login should succeed: %s", w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie, "refresh token cookie should be set")
	})

	s.Run("Error case: wrong password", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "login@example.com", Password: "wrongpass123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: unknown email", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ghost@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestMe
// =============================================================================

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: returns the authenticated profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var profile struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &profile))
		require.Equal(t, "me@example.com", profile.Email)
		require.Equal(t, string(user.RoleUser), profile.Role)
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRefresh
// =============================================================================

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: refresh cookie yields a new access token", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "refresh@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "refresh@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		cookies := httptest.ExtractCookies(w)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, rw.Code, "refresh should succeed: %s", rw.Body.String())

		var res response.RefreshResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("Error case: refresh without cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: logout clears the session cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "logout@example.com", string(user.RoleUser))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "logout@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}
