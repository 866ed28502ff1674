package main

import (
	"os"

	"arabian-treat-hub/config"
	httpapi "arabian-treat-hub/delivery-svc/internal/api/http"
	"arabian-treat-hub/delivery-svc/internal/service"
	"arabian-treat-hub/delivery-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	svc := service.NewScannerService(
		storage.NewDeliveryRepository(db),
		storage.NewKafkaPublisher(writer),
	)

	handler := httpapi.NewHandler(svc)
	router := httpapi.NewRouter(handler)

	port := os.Getenv("DELIVERY_SVC_PORT")
	if port == "" {
		port = "8083"
	}
	httpapi.StartServer(":"+port, router)
}
