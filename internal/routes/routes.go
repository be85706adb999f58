package routes

import (
	"github.com/gin-gonic/gin"

	"brewhaus_back_end/internal/handlers"
	"brewhaus_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret string) {
	auth := middleware.AuthRequired(jwtSecret)

	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	// Catalogue & checkout
	api.GET("/subscription", h.GetSubscriptionTiers)
	api.POST("/subscription", auth, h.CreateSubscription)

	// Webhook Stripe (signé, pas de JWT)
	api.POST("/webhooks/stripe", h.StripeWebhook)

	// Commandes
	api.GET("/orders", auth, h.ListOrders)
	api.GET("/orders/:id", auth, h.GetOrder)

	// Quiz de préférences
	api.GET("/preferences", auth, h.GetPreferences)
	api.PUT("/preferences", auth, h.SavePreferences)

	// Explorateur d'origines
	api.GET("/origins", h.ListOrigins)
	api.GET("/origins/featured", h.FeaturedOrigins)
}
