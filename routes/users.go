package routes

import (
	"seoboost-backend/handlers/users"
	"seoboost-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/me", users.GetCurrentUser)
	}
}
