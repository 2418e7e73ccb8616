package server

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Details   string            `json:"details,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// abort stops the chain and replies with body, stamped with the request ID.
func abort(c *gin.Context, code int, body ErrorResponse) {
	body.RequestID = c.GetString(requestIDKey)
	c.AbortWithStatusJSON(code, body)
}
