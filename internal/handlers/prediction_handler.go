package handlers

import (
	"log"
	"net/http"

	"github.com/trendcraft/trendcraft-server/internal/store"
	"github.com/trendcraft/trendcraft-server/internal/utils"
)

type PredictionHandler struct {
	PredictionStore store.PredictionStore
	Logger          *log.Logger
}

func NewPredictionHandler(predictionStore store.PredictionStore, logger *log.Logger) *PredictionHandler {
	return &PredictionHandler{
		PredictionStore: predictionStore,
		Logger:          logger,
	}
}

func (ph *PredictionHandler) HandlerGetRecentPredictions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"), 20, 100)
	if err != nil {
		ph.Logger.Println("Error:", err)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	predictions, err := ph.PredictionStore.GetRecentPredictions(limit)
	if err != nil {
		ph.Logger.Println("Error getting predictions from store", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": "Internal Server Error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"data": predictions})
}
