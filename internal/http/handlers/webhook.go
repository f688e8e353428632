package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/domain"
	"github.com/RGA-goaltending/rga/internal/http/middleware"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/payments/webhook
//
// The body must reach signature verification untouched, so it is read raw and
// never bound through JSON middleware. A 5xx answer makes the provider retry
// the delivery; 2xx and 4xx end it.
func PaymentWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unable to read request body", err)
		return
	}

	svc := services.ConfirmationService{
		SlotRepo:    repositories.SlotRepository{DB: intconfig.DB},
		CampRepo:    repositories.CampRepository{DB: intconfig.DB},
		BookingRepo: repositories.BookingRepository{DB: intconfig.DB},
		Gateway:     paymentGateway,
		RequestID:   middleware.GetRequestID(c),
	}

	err = svc.HandleEvent(payload, c.GetHeader("Stripe-Signature"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case domain.IsSignature(err) || domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "event processing failed"})
	}
}
