package httperr

import (
	"github.com/gin-gonic/gin"

	"agora-server/internal/pkg/errs"
)

// Response is the error envelope every endpoint returns.
type Response struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Detail  any    `json:"detail,omitempty"`
}

// Abort writes the envelope and records the error on the context so the
// logging and error middleware can observe it.
func Abort(c *gin.Context, status int, code, msg string, detail any) {
	resp := Response{Status: status, Code: code, Message: msg, Detail: detail}
	if ginErr := c.Error(errs.New(msg)); ginErr != nil {
		ginErr.SetType(gin.ErrorTypePublic)
		ginErr.SetMeta(resp)
	}
	c.AbortWithStatusJSON(status, resp)
}
