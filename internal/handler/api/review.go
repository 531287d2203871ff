package api

import (
	"net/http"

	"agora-server/internal/handler/dto/request"
	resdto "agora-server/internal/handler/dto/response"
	"agora-server/internal/handler/middleware"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary List venue reviews
// @Description List reviews for a venue, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Venue ID"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Router /venues/{id}/reviews [get]
func (h *ReviewHandler) ListByVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	after, limit := pageParams(c)
	items, next, err := h.reviewQueries.ListByVenue(c.Request.Context(), venueID, after, limit)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.NewReviewListResponse(items, next))
}

// @Summary Create review
// @Description Review a venue after a checked-in visit
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body request.CreateReviewRequest true "Review"
// @Success 201 {object} queries.ReviewView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /venues/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternalError(c)
		return
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	var req request.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.reviewCommands.Create(c.Request.Context(), userID, venueID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		case errs.Is(err, commands.ErrReviewNotEligible):
			respondError(c, http.StatusForbidden, CodeForbidden, "A checked-in visit is required to review")
		case errs.Is(err, commands.ErrDuplicateReview):
			respondError(c, http.StatusConflict, CodeValidationError, "You already reviewed this venue")
		case errs.Is(err, commands.ErrDomainValidation):
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "Invalid review data")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
