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

type VenueHandler struct {
	venueCommands commands.VenueCommands
	venueQueries  queries.VenueQueries
}

func NewVenueHandler(venueCommands commands.VenueCommands, venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		venueCommands: venueCommands,
		venueQueries:  venueQueries,
	}
}

// @Summary Search venues
// @Description Search approved venues by name, city and category
// @Tags venues
// @Produce json
// @Param q query string false "Name substring"
// @Param city query string false "City"
// @Param category query string false "Category"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VenueListResponse
// @Router /venues [get]
func (h *VenueHandler) Search(c *gin.Context) {
	filter := queries.VenueFilter{
		Query:    c.Query("q"),
		City:     c.Query("city"),
		Category: c.Query("category"),
	}

	after, limit := pageParams(c)
	items, next, err := h.venueQueries.Search(c.Request.Context(), filter, after, limit)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.NewVenueListResponse(items, next))
}

// @Summary Get venue
// @Description Get venue details with rating aggregates
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} queries.VenueView
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	view, err := h.venueQueries.GetByID(c.Request.Context(), optionalActor(c), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Submit venue
// @Description Register a venue; it stays pending until an admin approves it
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateVenueRequest true "Venue details"
// @Success 201 {object} queries.VenueView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /business/venues [post]
func (h *VenueHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternalError(c)
		return
	}

	var req request.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.venueCommands.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "Invalid venue data")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List own venues
// @Description List venues owned by the caller, any status
// @Tags business
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VenueListResponse
// @Router /business/venues [get]
func (h *VenueHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		respondInternalError(c)
		return
	}

	items, err := h.venueQueries.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.NewVenueListResponse(items, nil))
}

// @Summary Moderate venue
// @Description Approve, reject or suspend a venue
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body request.ModerateVenueRequest true "Target status"
// @Success 200 {object} queries.VenueView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/venues/{id} [patch]
func (h *VenueHandler) Moderate(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		respondInternalError(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	var req request.ModerateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.venueCommands.Moderate(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrForbidden):
			respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
		case errs.Is(err, commands.ErrStatusInvalid):
			respondError(c, http.StatusUnprocessableEntity, CodeStatusInvalid, "Unknown venue status")
		case errs.Is(err, commands.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List all venues
// @Description List venues in every status for the moderation queue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VenueListResponse
// @Router /admin/venues [get]
func (h *VenueHandler) ListAll(c *gin.Context) {
	after, limit := pageParams(c)
	items, next, err := h.venueQueries.ListAll(c.Request.Context(), after, limit)
	if err != nil {
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, resdto.NewVenueListResponse(items, next))
}
