package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tailspin/backend/internal/repository"
)

// Handler carries the catalog's route handlers and their store.
type Handler struct {
	store *repository.Store
}

func New(store *repository.Store) *Handler {
	return &Handler{store: store}
}

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for successful deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeWriteError maps a failed persistence call to a response. Constraint
// violations are the client's fault (dangling foreign key, duplicate name);
// everything else is ours. The surrounding transaction has already rolled back
// by the time this runs.
func writeWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Database constraint violation"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
