package main

import (
	"os"

	"arabian-treat-hub/config"
	httpapi "arabian-treat-hub/dashboard-svc/internal/api/http"
	"arabian-treat-hub/dashboard-svc/internal/service"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewDashboardService(db, rdb)
	handler := httpapi.NewHandler(svc)
	router := httpapi.NewRouter(handler)

	port := os.Getenv("DASHBOARD_SVC_PORT")
	if port == "" {
		port = "8084"
	}
	httpapi.StartServer(":"+port, router)
}
