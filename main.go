package main

import (
	"log"

	"seoboost-backend/db"
	"seoboost-backend/routes"

	"github.com/gin-gonic/gin"
)

// @title SEO Boost API
// @version 1.0
// @description API for AI-written, SEO-oriented product descriptions
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
