package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the catalog API under /api.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	api := router.Group("/api")
	{
		games := api.Group("/games")
		{
			games.GET("", h.GetGames)
			games.GET("/:id", h.GetGameByID)
			games.POST("", h.CreateGame)
			games.PUT("/:id", h.UpdateGame)
			games.DELETE("/:id", h.DeleteGame)
		}

		api.GET("/categories", h.GetCategories)
		api.GET("/publishers", h.GetPublishers)
	}
}
