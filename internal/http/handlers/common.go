package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/gateway"
	"github.com/RGA-goaltending/rga/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	env            intconfig.Env
	paymentGateway gateway.PaymentGateway
)

// Configure wires handler package dependencies once at router construction.
func Configure(e intconfig.Env, gw gateway.PaymentGateway) {
	env = e
	paymentGateway = gw
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// requestOrigin resolves the caller origin used to build redirect URLs.
func requestOrigin(c *gin.Context) string {
	if o := c.GetHeader("Origin"); o != "" {
		return o
	}
	return c.GetHeader("Referer")
}
