package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tailspin/backend/internal/models"
	"tailspin/backend/internal/repository"
)

// region --- DTOs ---

// GameInput is the payload for creating and updating games. Every field is a
// pointer so a partial update can tell an omitted field from a zero one.
type GameInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	StarRating  *float64 `json:"star_rating"`
	CategoryID  *uint    `json:"category_id"`
	PublisherID *uint    `json:"publisher_id"`
}

// GameRef is the nested publisher/category summary inside a game response.
type GameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type GameResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Publisher   *GameRef `json:"publisher"`
	Category    *GameRef `json:"category"`
	StarRating  *float64 `json:"starRating"`
}

func newGameResponse(game models.Game) GameResponse {
	resp := GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		StarRating:  game.StarRating,
	}
	if game.Publisher != nil {
		resp.Publisher = &GameRef{ID: game.Publisher.ID, Name: game.Publisher.Name}
	}
	if game.Category != nil {
		resp.Category = &GameRef{ID: game.Category.ID, Name: game.Category.Name}
	}
	return resp
}

// firstMissingField returns the name of the first required create field that
// is absent or falsy, or "" when all are present. Order matches the API's
// documented error precedence.
func firstMissingField(input GameInput) string {
	switch {
	case input.Title == nil || *input.Title == "":
		return "title"
	case input.Description == nil || *input.Description == "":
		return "description"
	case input.CategoryID == nil || *input.CategoryID == 0:
		return "category_id"
	case input.PublisherID == nil || *input.PublisherID == 0:
		return "publisher_id"
	}
	return ""
}

// checkReferences verifies that any category/publisher id present in the
// input resolves to an existing row. Returns false after writing the error
// response when one does not.
func (h *Handler) checkReferences(c *gin.Context, input GameInput) bool {
	if input.CategoryID != nil {
		ok, err := h.store.CategoryExists(*input.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return false
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return false
		}
	}
	if input.PublisherID != nil {
		ok, err := h.store.PublisherExists(*input.PublisherID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return false
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Publisher not found"})
			return false
		}
	}
	return true
}

// endregion

// GetGames godoc
// @Summary      List games
// @Description  Retrieves all games with their publisher and category, optionally filtered by exact category and/or publisher id.
// @Tags         games
// @Produce      json
// @Param        category   query  int  false  "Category ID"
// @Param        publisher  query  int  false  "Publisher ID"
// @Success      200  {array}  GameResponse
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	var filter repository.GameFilter
	if v := c.Query("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if v := c.Query("publisher"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			publisherID := uint(id)
			filter.PublisherID = &publisherID
		}
	}

	games, err := h.store.ListGames(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves one game with its publisher and category.
// @Tags         games
// @Produce      json
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	game, err := h.store.GetGame(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game referencing an existing category and publisher.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input  body  GameInput  true  "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil || input == (GameInput{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if field := firstMissingField(input); field != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Missing required field: %s", field)})
		return
	}

	if !h.checkReferences(c, input) {
		return
	}

	game := models.Game{
		Title:       *input.Title,
		Description: *input.Description,
		StarRating:  input.StarRating,
		CategoryID:  *input.CategoryID,
		PublisherID: *input.PublisherID,
	}
	if err := game.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.WithTx(func(tx *repository.Store) error {
		return tx.CreateGame(&game)
	}); err != nil {
		writeWriteError(c, err)
		return
	}

	created, err := h.store.GetGame(game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, newGameResponse(*created))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Applies a partial update; only fields present in the payload change.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id     path  int        true  "Game ID"
// @Param        input  body  GameInput  true  "Fields to update"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	game, err := h.store.GetGame(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil || input == (GameInput{}) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if !h.checkReferences(c, input) {
		return
	}

	if input.Title != nil {
		game.Title = *input.Title
	}
	if input.Description != nil {
		game.Description = *input.Description
	}
	if input.StarRating != nil {
		game.StarRating = input.StarRating
	}
	if input.CategoryID != nil {
		game.CategoryID = *input.CategoryID
	}
	if input.PublisherID != nil {
		game.PublisherID = *input.PublisherID
	}

	if err := game.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.WithTx(func(tx *repository.Store) error {
		return tx.SaveGame(game)
	}); err != nil {
		writeWriteError(c, err)
		return
	}

	updated, err := h.store.GetGame(game.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*updated))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes an existing game.
// @Tags         games
// @Produce      json
// @Param        id  path  int  true  "Game ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	game, err := h.store.GetGame(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.store.WithTx(func(tx *repository.Store) error {
		return tx.DeleteGame(game)
	}); err != nil {
		writeWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Game '%s' deleted successfully", game.Title)})
}
