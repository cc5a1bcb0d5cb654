package main

import (
	"fmt"
	"log"
	"net/http"

	"tailspin/backend/internal/config"
	"tailspin/backend/internal/database"
	"tailspin/backend/internal/handler"
	"tailspin/backend/internal/repository"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "tailspin/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Tailspin Toys Crowdfunding API
// @version         1.0
// @description     REST API for the crowdfunding catalog of games, publishers and categories.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	h := handler.New(repository.NewStore(database.DB))
	handler.RegisterRoutes(router, h)

	addr := ":" + config.AppConfig.ServerPort
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
