package routes

import (
	"seoboost-backend/handlers/stripe"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.Engine) {
	subscriptionRoutes := r.Group("/subscriptions")
	subscriptionRoutes.Use(middleware.JWTAuth())
	{
		subscriptionRoutes.POST("", stripe.CreateSubscription)
	}
	// The webhook is authenticated by its Stripe signature, not a JWT
	r.POST("/stripe/webhook", stripe.WebhookHandler)
}
