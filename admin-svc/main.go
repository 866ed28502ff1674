package main

import (
	"os"

	httpapi "arabian-treat-hub/admin-svc/internal/api/http"
	"arabian-treat-hub/admin-svc/internal/service"
	"arabian-treat-hub/admin-svc/internal/storage"
	"arabian-treat-hub/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	ordersRepo := storage.NewOrdersRepository(db)
	settingsRepo := storage.NewSettingsRepository(db)
	menuRepo := storage.NewMenuRepository(db)
	publisher := storage.NewKafkaPublisher(writer)

	settingsSvc := service.NewSettingsService(settingsRepo)
	handler := httpapi.NewHandler(
		service.NewBoardService(ordersRepo, publisher),
		service.NewSalesService(ordersRepo),
		service.NewShiftService(ordersRepo, settingsRepo, publisher),
		settingsSvc,
		service.NewMenuService(menuRepo),
	)
	router := httpapi.NewRouter(handler, settingsSvc)

	port := os.Getenv("ADMIN_SVC_PORT")
	if port == "" {
		port = "8082"
	}
	httpapi.StartServer(":"+port, router)
}
