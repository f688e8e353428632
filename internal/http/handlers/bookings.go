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

func bookingRepo() repositories.BookingRepository {
	return repositories.BookingRepository{DB: intconfig.DB}
}

// GET /api/my-bookings (auth)
func GetMyBookings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	bookings, err := bookingRepo().ListByUserID(userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings/:id/receipt (auth). PDF receipt for the caller's own
// booking; admins may fetch any.
func GetBookingReceiptPDF(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		RespondError(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}

	bookingID := c.Param("id")
	detail, err := bookingRepo().GetDetailByID(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.UserID != userID && middleware.GetUserRole(c) != "admin" {
		RespondError(c, http.StatusForbidden, "not your booking", nil)
		return
	}

	svc := services.ReceiptService{
		BookingRepo: bookingRepo(),
		RequestID:   middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateReceipt(bookingID)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondDomainError(c, err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to render receipt", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
