package handlers

import (
	"net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/http/middleware"
	"github.com/RGA-goaltending/rga/internal/repositories"
	"github.com/RGA-goaltending/rga/internal/services"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	SlotID        string `json:"slotId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	UserID        string `json:"userId"`
}

type campCheckoutRequest struct {
	CampID        string `json:"campId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	UserID        string `json:"userId"`
}

func checkoutService(c *gin.Context) services.CheckoutService {
	return services.CheckoutService{
		SlotRepo:  repositories.SlotRepository{DB: intconfig.DB},
		CampRepo:  repositories.CampRepository{DB: intconfig.DB},
		Gateway:   paymentGateway,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/checkout/sessions
func CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	result, err := checkoutService(c).InitiateCheckout(services.CheckoutInput{
		SlotID:        req.SlotID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		UserID:        req.UserID,
		Origin:        requestOrigin(c),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/checkout/camp-sessions
func CreateCampCheckoutSession(c *gin.Context) {
	var req campCheckoutRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	result, err := checkoutService(c).InitiateCampCheckout(services.CampCheckoutInput{
		CampID:        req.CampID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		UserID:        req.UserID,
		Origin:        requestOrigin(c),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
