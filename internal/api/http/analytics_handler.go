package http

import (
	"net/http"

	"carrental-backend/internal/service"
)

type analyticsHandler struct {
	analytics service.AnalyticsService
}

func newAnalyticsHandler(analytics service.AnalyticsService) *analyticsHandler {
	return &analyticsHandler{analytics: analytics}
}

func (h *analyticsHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analytics.Dashboard(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *analyticsHandler) revenue(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt32(r, "days", 30)
	if err != nil {
		writeError(w, err)
		return
	}
	points, err := h.analytics.Revenue(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *analyticsHandler) fleetStatus(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analytics.FleetStatus(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
