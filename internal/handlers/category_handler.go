package handlers

import (
	"log"
	"net/http"

	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/utils"
)

type CategoryHandler struct {
	Logger *log.Logger
}

func NewCategoryHandler(logger *log.Logger) *CategoryHandler {
	return &CategoryHandler{Logger: logger}
}

func (ch *CategoryHandler) HandlerGetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"data": models.Categories()})
}
