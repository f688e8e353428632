package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/RGA-goaltending/rga/internal/config"
	"github.com/RGA-goaltending/rga/internal/gateway"
	h "github.com/RGA-goaltending/rga/internal/http/handlers"
	"github.com/RGA-goaltending/rga/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env, gateway.NewStripeGateway(env.StripeSecretKey, env.StripeWebhookSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Public catalog
		api.GET("/slots", h.GetSlots)
		api.GET("/slots/:id", h.GetSlotByID)
		api.GET("/camps", h.GetCamps)
		api.GET("/packages", h.GetPackages)

		// Checkout
		checkout := api.Group("/checkout")
		checkout.POST("/sessions", h.CreateCheckoutSession)
		checkout.POST("/camp-sessions", h.CreateCampCheckoutSession)

		// Payment provider callback. Signature-verified, never behind auth.
		api.POST("/payments/webhook", h.PaymentWebhook)

		// Authenticated customer area
		me := api.Group("")
		me.Use(middleware.RequireAuth(secret))
		me.GET("/my-bookings", h.GetMyBookings)
		me.GET("/bookings/:id/receipt", h.GetBookingReceiptPDF)

		// Admin inventory management
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(secret), middleware.RequireRole("admin"))
		admin.GET("/slots", h.GetAllSlots)
		admin.POST("/slots", h.CreateSlot)
		admin.DELETE("/slots/:id", h.DeleteSlot)
		admin.GET("/slots/:id/bookings", h.GetSlotBookings)
		admin.GET("/camps", h.GetAllCamps)
		admin.POST("/camps", h.CreateCamp)
		admin.DELETE("/camps/:id", h.DeleteCamp)
		admin.POST("/packages", h.CreatePackage)
		admin.DELETE("/packages/:id", h.DeletePackage)
	}

	return r
}
