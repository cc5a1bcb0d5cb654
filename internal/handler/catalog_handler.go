package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailspin/backend/internal/models"
)

type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	GameCount   int     `json:"game_count"`
}

type PublisherResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	GameCount   int     `json:"game_count"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		GameCount:   len(category.Games),
	}
}

func newPublisherResponse(publisher models.Publisher) PublisherResponse {
	return PublisherResponse{
		ID:          publisher.ID,
		Name:        publisher.Name,
		Description: publisher.Description,
		GameCount:   len(publisher.Games),
	}
}

// GetCategories godoc
// @Summary      List categories
// @Description  Retrieves all categories sorted by name, with game counts.
// @Tags         categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.store.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// GetPublishers godoc
// @Summary      List publishers
// @Description  Retrieves all publishers sorted by name, with game counts.
// @Tags         publishers
// @Produce      json
// @Success      200  {array}  PublisherResponse
// @Router       /publishers [get]
func (h *Handler) GetPublishers(c *gin.Context) {
	publishers, err := h.store.ListPublishers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]PublisherResponse, 0, len(publishers))
	for _, publisher := range publishers {
		response = append(response, newPublisherResponse(publisher))
	}
	c.JSON(http.StatusOK, response)
}
