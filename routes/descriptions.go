package routes

import (
	"seoboost-backend/handlers/descriptions"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func DescriptionsRoutes(r *gin.Engine) {
	descriptionsRoutes := r.Group("/descriptions")
	descriptionsRoutes.Use(middleware.JWTAuth())
	{
		descriptionsRoutes.GET("", descriptions.GetUserDescriptions)
		descriptionsRoutes.GET("/:id", descriptions.GetDescriptionByID)
	}
}
