package handlers

import (
	"net/http"

	"github.com/trendcraft/trendcraft-server/internal/utils"
)

type HealthHandler struct {
	Env string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{Env: env}
}

func (hh *HealthHandler) HandlerHealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, utils.Envelope{
		"status": "available",
		"env":    hh.Env,
	})
}
