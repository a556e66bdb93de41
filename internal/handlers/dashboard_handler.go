package handlers

import (
	"log"
	"net/http"

	"github.com/trendcraft/trendcraft-server/internal/store"
	"github.com/trendcraft/trendcraft-server/internal/utils"
)

type DashboardHandler struct {
	dashboardStore store.DashboardStore
	Logger         *log.Logger
}

func NewDashboardHandler(dashboardStore store.DashboardStore, logger *log.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardStore: dashboardStore,
		Logger:         logger,
	}
}

func (dh *DashboardHandler) HandlerGetDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	dashboard, err := dh.dashboardStore.GetDashboardMetrics()
	if err != nil {
		dh.Logger.Println("error getting dashboard metrics", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": "Internal server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"data": dashboard})
}
