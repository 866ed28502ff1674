package httpapi

import (
	"encoding/json"
	"net/http"

	"arabian-treat-hub/dashboard-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dashboard service.DashboardInterface
}

func NewHandler(svc service.DashboardInterface) *Handler {
	return &Handler{Dashboard: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/dashboard/stats", h.getLiveStats).Methods("GET")
	r.HandleFunc("/api/dashboard/top-items", h.getTopItems).Methods("GET")
}

func (h *Handler) getLiveStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.LiveStats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	top, err := h.Dashboard.TopItemsToday()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}
