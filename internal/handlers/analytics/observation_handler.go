package analytics

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/store/analytics"
	"github.com/trendcraft/trendcraft-server/internal/utils"
)

type ObservationHandler struct {
	ObservationStore analytics.ObservationStore
	Logger           *log.Logger
}

func NewObservationHandler(observationStore analytics.ObservationStore, logger *log.Logger) *ObservationHandler {
	return &ObservationHandler{
		ObservationStore: observationStore,
		Logger:           logger,
	}
}

func (oh *ObservationHandler) HandlerGetCategoryTimeline(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		oh.Logger.Println("Error: id parameter is missing")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	categoryID, err := strconv.Atoi(idStr)
	if err != nil || !models.ValidCategoryID(categoryID) {
		oh.Logger.Printf("Error: invalid category id %q", idStr)
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": "Bad Request"})
		return
	}

	timeline, err := oh.ObservationStore.GetCategoryTimeline(r.Context(), categoryID)
	if err != nil {
		oh.Logger.Println("Error getting category timeline from store", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": "Internal Server Error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"data": timeline})
}
