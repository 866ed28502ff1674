package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/admin-svc/internal/service"
	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"

	"github.com/gorilla/mux"
)

type Handler struct {
	Board    service.BoardServiceInterface
	Sales    service.SalesServiceInterface
	Shift    service.ShiftServiceInterface
	Settings service.SettingsServiceInterface
	Menu     service.MenuServiceInterface
}

func NewHandler(board service.BoardServiceInterface, sales service.SalesServiceInterface,
	shift service.ShiftServiceInterface, settingsSvc service.SettingsServiceInterface,
	menu service.MenuServiceInterface) *Handler {
	return &Handler{
		Board:    board,
		Sales:    sales,
		Shift:    shift,
		Settings: settingsSvc,
		Menu:     menu,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/admin/orders/live", h.getLiveOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/delivered", h.getDeliveredOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/history", h.getHistoryOrders).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/admin/orders/{id}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/admin/sales", h.getSalesReport).Methods("GET")
	r.HandleFunc("/api/admin/sales/export", h.exportSalesCSV).Methods("GET")
	r.HandleFunc("/api/admin/shift/start", h.startNewDay).Methods("POST")
	r.HandleFunc("/api/admin/shift/end", h.endDay).Methods("POST")
	r.HandleFunc("/api/admin/settings", h.getSettings).Methods("GET")
	r.HandleFunc("/api/admin/settings", h.updateSettings).Methods("PUT")
	r.HandleFunc("/api/admin/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/admin/menu/import", h.importMenu).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeBoard(w http.ResponseWriter, list []orders.Order, err error) {
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) getLiveOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Board.LiveOrders()
	h.writeBoard(w, list, err)
}

func (h *Handler) getDeliveredOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Board.DeliveredOrders()
	h.writeBoard(w, list, err)
}

func (h *Handler) getHistoryOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.Board.HistoryOrders()
	h.writeBoard(w, list, err)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	var req domain.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	order, err := h.Board.SetStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrIllegalTransition), errors.Is(err, service.ErrUnknownStatus):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	var req domain.CancelRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	order, err := h.Board.Cancel(r.Context(), orderID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, service.ErrIllegalTransition):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getSalesReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	report, err := h.Sales.Report(date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) exportSalesCSV(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	data, err := h.Sales.ExportCSV(date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-`+date+`.csv"`)
	w.Write(data)
}

func (h *Handler) startNewDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.Shift.StartNewDay(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) endDay(w http.ResponseWriter, r *http.Request) {
	result, err := h.Shift.EndDay(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	store, err := h.Settings.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, store)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.StoreSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	store, err := h.Settings.Update(req)
	if err != nil {
		if errors.Is(err, service.ErrNegativeDeliveryCharge) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, store)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) importMenu(w http.ResponseWriter, r *http.Request) {
	var rows []domain.MenuImportRow
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	count, err := h.Menu.Import(rows)
	if err != nil {
		if errors.Is(err, service.ErrNoMenuRows) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
