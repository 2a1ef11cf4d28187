package routes

import (
	"seoboost-backend/handlers/products"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProductsRoutes(r *gin.Engine) {
	productsRoutes := r.Group("/products")
	productsRoutes.Use(middleware.JWTAuth())
	{
		productsRoutes.POST("", products.CreateProduct)
		productsRoutes.GET("", products.GetUserProducts)
		productsRoutes.GET("/:id", products.GetProductByID)
		productsRoutes.PUT("/:id", products.UpdateProduct)
		productsRoutes.DELETE("/:id", products.DeleteProduct)
	}
}
