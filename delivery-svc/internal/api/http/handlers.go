package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"arabian-treat-hub/delivery-svc/internal/domain"
	"arabian-treat-hub/delivery-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Scanner service.ScannerServiceInterface
}

func NewHandler(scanner service.ScannerServiceInterface) *Handler {
	return &Handler{Scanner: scanner}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/delivery/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/delivery/orders/{id}/deliver", h.confirmDelivery).Methods("POST")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.Scanner.Lookup(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

func (h *Handler) confirmDelivery(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	var req domain.ConfirmDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	order, err := h.Scanner.ConfirmDelivery(r.Context(), orderID, req.DeliveredBy)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrMissingDriver):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrAlreadyDelivered):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}
