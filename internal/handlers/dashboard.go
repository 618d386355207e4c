package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mosdac/assistant/internal/dashboard"
	"github.com/mosdac/assistant/internal/notify"
)

type LiveRequest struct {
	Live *bool `json:"live"`
}

type DashboardHandler struct {
	monitor  *dashboard.Monitor
	notifier *notify.Notifier
}

func NewDashboardHandler(monitor *dashboard.Monitor, notifier *notify.Notifier) *DashboardHandler {
	return &DashboardHandler{monitor: monitor, notifier: notifier}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.monitor.Snapshot())
}

func (h *DashboardHandler) SetLive(w http.ResponseWriter, r *http.Request) {
	var req LiveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Live == nil {
		writeError(w, r, http.StatusBadRequest, `"live" is required`)
		return
	}
	h.monitor.SetLive(*req.Live)
	writeJSON(w, r, http.StatusOK, h.monitor.Snapshot())
}

func (h *DashboardHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.notifier.Recent())
}

func FeaturesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dashboard.Showcase())
}

func FeatureHandler(w http.ResponseWriter, r *http.Request) {
	f, ok := dashboard.Showcase().Feature(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "feature not found")
		return
	}
	writeJSON(w, r, http.StatusOK, f)
}
