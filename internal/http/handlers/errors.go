package handlers

import (
	"net/http"

	"github.com/RGA-goaltending/rga/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses. Corrupt-data and
// internal conditions never leak detail to the caller; the specifics live in
// the server log only.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsSignature(err):
		respondError(c, http.StatusBadRequest, "invalid_signature", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsGateway(err):
		respondError(c, http.StatusInternalServerError, "gateway_error", "payment provider unavailable, please try again")
	case domain.IsCorruptData(err):
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong, please contact support")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
