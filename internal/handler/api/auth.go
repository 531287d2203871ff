package api

import (
	"net/http"
	"time"

	reqdto "agora-server/internal/handler/dto/request"
	resdto "agora-server/internal/handler/dto/response"
	"agora-server/internal/handler/middleware"
	pkgcookie "agora-server/internal/pkg/cookie"
	"agora-server/internal/pkg/config"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	cookieCfg config.CookieConfig,
	accessTTL, refreshTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cookieCfg,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

// @Summary Sign up
// @Description Register a new account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Signup request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	result, err := h.authCommands.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmailAlreadyUsed):
			respondError(c, http.StatusConflict, CodeValidationError, "Email already registered")
		case errs.Is(err, commands.ErrDomainValidation):
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "Invalid signup data")
		default:
			respondInternalError(c)
		}
		return
	}

	h.setSession(c, result.TokenPair)

	view, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), result.UserID)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        view,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials), errs.Is(err, commands.ErrUserNotFound):
			respondError(c, http.StatusUnauthorized, CodeForbidden, "Invalid email or password")
		case errs.Is(err, commands.ErrUserInactive):
			respondError(c, http.StatusForbidden, CodeForbidden, "Account is inactive")
		default:
			respondInternalError(c)
		}
		return
	}

	h.setSession(c, result.TokenPair)

	view, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), result.UserID)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        view,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := pkgcookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusUnauthorized, CodeForbidden, "Refresh token required")
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, http.StatusUnauthorized, CodeForbidden, "Invalid or expired refresh token")
		return
	}

	h.setSession(c, pair)
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	pkgcookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeForbidden, "User not authenticated")
		return
	}

	view, err := h.userQueries.GetAuthorizedUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "User not found")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AuthHandler) setSession(c *gin.Context, pair *commands.TokenPair) {
	pkgcookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken, h.accessTTL, h.refreshTTL)
}
