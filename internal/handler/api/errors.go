package api

import (
	"net/http"

	"agora-server/internal/handler/httperr"
	"agora-server/internal/handler/middleware"
	"agora-server/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes carried alongside the message.
const (
	CodeFormatInvalid       = "FORMAT_INVALID"
	CodeSignatureInvalid    = "SIGNATURE_INVALID"
	CodePayloadInvalid      = "PAYLOAD_INVALID"
	CodeExpired             = "EXPIRED"
	CodeStatusInvalid       = "STATUS_INVALID"
	CodeNotFound            = "NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeTransitionForbidden = "TRANSITION_FORBIDDEN"
	CodeNotAccepted         = "NOT_ACCEPTED"
	CodeAlreadyReserved     = "ALREADY_RESERVED"
	CodeVenueNotApproved    = "VENUE_NOT_APPROVED"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeServerError         = "SERVER_ERROR"
)

func respondError(c *gin.Context, status int, code, msg string) {
	httperr.Abort(c, status, code, msg, nil)
}

func respondErrorDetail(c *gin.Context, status int, code, msg string, detail any) {
	httperr.Abort(c, status, code, msg, detail)
}

func respondInternalError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, CodeServerError, "Internal server error")
}

// getActor pulls the authenticated caller from the request context.
// Returns false only when the route is miswired without RequireAuth.
func getActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}

// optionalActor never fails; anonymous callers get a zero actor.
func optionalActor(c *gin.Context) shared.Actor {
	actor, _ := getActor(c)
	return actor
}
