package routes

import (
	"seoboost-backend/handlers/generate"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func GenerateRoutes(r *gin.Engine) {
	generateRoutes := r.Group("/generate")
	generateRoutes.Use(middleware.JWTAuth())
	{
		generateRoutes.POST("/description", generate.GenerateDescription)
		generateRoutes.POST("/keywords", generate.SuggestKeywords)
		generateRoutes.POST("/seo-score", generate.CalculateSeoScore)
	}
}
