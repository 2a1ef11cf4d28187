package routes

import (
	"seoboost-backend/handlers/dashboard"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.Engine) {
	dashboardRoutes := r.Group("/dashboard")
	dashboardRoutes.Use(middleware.JWTAuth())
	{
		dashboardRoutes.GET("/stats", dashboard.GetStats)
		dashboardRoutes.GET("/recent-products", dashboard.GetRecentProducts)
	}
}
