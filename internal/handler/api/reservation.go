package api

import (
	"net/http"
	"strconv"

	"agora-server/internal/handler/dto/request"
	resdto "agora-server/internal/handler/dto/response"
	"agora-server/internal/handler/middleware"
	"agora-server/internal/pkg/checkin"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a table at an approved venue
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateReservationRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternalError(c)
		return
	}

	var req request.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		case errs.Is(err, commands.ErrVenueNotApproved):
			respondError(c, http.StatusConflict, CodeVenueNotApproved, "Venue is not accepting bookings")
		case errs.Is(err, commands.ErrAlreadyReserved):
			respondError(c, http.StatusConflict, CodeAlreadyReserved, "Slot already reserved")
		case errs.Is(err, commands.ErrDomainValidation):
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "Invalid reservation data")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid reservation ID format")
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Reservation not found")
		case errs.Is(err, queries.ErrAccessDenied):
			respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List own reservations
// @Description List the caller's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternalError(c)
		return
	}

	after, limit := pageParams(c)
	items, next, err := h.reservationQueries.ListByUser(c.Request.Context(), userID, after, limit)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.NewReservationListResponse(items, next))
}

// @Summary Issue check-in token
// @Description Mint the signed check-in token for an accepted reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CheckinTokenResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/checkin-token [get]
func (h *ReservationHandler) CheckinToken(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid reservation ID format")
		return
	}

	result, err := h.reservationCommands.IssueCheckinToken(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Reservation not found")
		case errs.Is(err, commands.ErrForbidden):
			respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
		case errs.Is(err, commands.ErrNotAccepted):
			respondError(c, http.StatusConflict, CodeNotAccepted, "Reservation is not accepted")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckinTokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// @Summary Decide on reservation
// @Description Accept, decline or check in a pending reservation at an owned venue
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body request.DecideReservationRequest true "Target status"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /business/reservations/{id} [patch]
func (h *ReservationHandler) Decide(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid reservation ID format")
		return
	}

	var req request.DecideReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.Decide(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		h.respondDecideError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Check in by token
// @Description Verify a guest's check-in token and complete the visit
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CheckinRequest true "Signed check-in token"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /business/checkin [post]
func (h *ReservationHandler) Checkin(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	var req request.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.CheckinByToken(c.Request.Context(), actor, req.Token)
	if err != nil {
		h.respondCheckinError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List venue reservations
// @Description List reservations at an owned venue, newest first
// @Tags business
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /business/venues/{id}/reservations [get]
func (h *ReservationHandler) ListForVenue(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	after, limit := pageParams(c)
	items, next, err := h.reservationQueries.ListByVenue(c.Request.Context(), actor, venueID, after, limit)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		case errs.Is(err, queries.ErrAccessDenied):
			respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewReservationListResponse(items, next))
}

func (h *ReservationHandler) respondDecideError(c *gin.Context, err error) {
	var transitionErr *commands.TransitionError

	switch {
	case errs.Is(err, commands.ErrStatusInvalid):
		respondError(c, http.StatusUnprocessableEntity, CodeStatusInvalid, "Unknown reservation status")
	case errs.Is(err, commands.ErrReservationNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Reservation not found")
	case errs.Is(err, commands.ErrForbidden):
		respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
	case errs.As(err, &transitionErr):
		respondErrorDetail(c, http.StatusConflict, CodeTransitionForbidden, "Transition not allowed", gin.H{
			"from": transitionErr.From.String(),
			"to":   transitionErr.To.String(),
		})
	default:
		respondInternalError(c)
	}
}

func (h *ReservationHandler) respondCheckinError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, checkin.ErrFormatInvalid):
		respondError(c, http.StatusBadRequest, CodeFormatInvalid, "Malformed check-in token")
	case errs.Is(err, checkin.ErrSignatureInvalid):
		respondError(c, http.StatusUnauthorized, CodeSignatureInvalid, "Check-in token signature mismatch")
	case errs.Is(err, checkin.ErrPayloadInvalid):
		respondError(c, http.StatusBadRequest, CodePayloadInvalid, "Check-in token payload invalid")
	case errs.Is(err, checkin.ErrExpired):
		respondError(c, http.StatusUnauthorized, CodeExpired, "Check-in token expired")
	case errs.Is(err, commands.ErrReservationNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Reservation not found")
	case errs.Is(err, commands.ErrForbidden):
		respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
	case errs.Is(err, commands.ErrNotAccepted):
		respondError(c, http.StatusConflict, CodeNotAccepted, "Reservation is not accepted")
	default:
		respondInternalError(c)
	}
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	var after *queries.Cursor
	if cursor := c.Query("after"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	return after, limit
}
