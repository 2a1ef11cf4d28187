package routes

import (
	"seoboost-backend/handlers/analytics"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine) {
	analyticsRoutes := r.Group("/analytics")
	analyticsRoutes.Use(middleware.JWTAuth())
	{
		analyticsRoutes.GET("", analytics.GetUserAnalytics)
	}
}
