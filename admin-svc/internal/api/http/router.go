package httpapi

import (
	"log"
	"net/http"

	"arabian-treat-hub/admin-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler, settingsSvc service.SettingsServiceInterface) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Use(DayOpenGate(settingsSvc))
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Admin Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
