package api

import (
	"net/http"

	"agora-server/internal/handler/dto/request"
	"agora-server/internal/pkg/errs"
	"agora-server/internal/usecase/commands"
	"agora-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventCommands commands.EventCommands
	eventQueries  queries.EventQueries
}

func NewEventHandler(eventCommands commands.EventCommands, eventQueries queries.EventQueries) *EventHandler {
	return &EventHandler{
		eventCommands: eventCommands,
		eventQueries:  eventQueries,
	}
}

// @Summary List upcoming events
// @Description List upcoming events at approved venues
// @Tags events
// @Produce json
// @Param limit query int false "Page size"
// @Success 200 {array} queries.EventView
// @Router /events [get]
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	_, limit := pageParams(c)
	items, err := h.eventQueries.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c)
		return
	}
	if items == nil {
		items = []*queries.EventView{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List venue events
// @Description List events hosted by a venue
// @Tags events
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {array} queries.EventView
// @Router /venues/{id}/events [get]
func (h *EventHandler) ListByVenue(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid venue ID format")
		return
	}

	items, err := h.eventQueries.ListByVenue(c.Request.Context(), venueID)
	if err != nil {
		respondInternalError(c)
		return
	}
	if items == nil {
		items = []*queries.EventView{}
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Publish event
// @Description Publish an event at an owned, approved venue
// @Tags business
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body request.CreateEventRequest true "Event details"
// @Success 201 {object} queries.EventView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /business/venues/{id}/events [post]
func (h *EventHandler) Create(c *gin.Context) {
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

	var req request.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request format")
		return
	}

	view, err := h.eventCommands.Create(c.Request.Context(), actor, venueID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrVenueNotFound):
			respondError(c, http.StatusNotFound, CodeNotFound, "Venue not found")
		case errs.Is(err, commands.ErrForbidden):
			respondError(c, http.StatusForbidden, CodeForbidden, "Access denied")
		case errs.Is(err, commands.ErrVenueNotApproved):
			respondError(c, http.StatusConflict, CodeVenueNotApproved, "Venue is not approved")
		case errs.Is(err, commands.ErrDomainValidation):
			respondError(c, http.StatusUnprocessableEntity, CodeValidationError, "Invalid event data")
		default:
			respondInternalError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
