package main

import (
	"log"
	"os"

	"arabian-treat-hub/config"
	httpapi "arabian-treat-hub/order-svc/internal/api/http"
	"arabian-treat-hub/order-svc/internal/service"
	"arabian-treat-hub/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	writer := config.NewKafkaWriter("orders")
	defer writer.Close()

	svc := service.NewOrderService(
		repo,
		storage.NewSettingsRepository(db),
		service.DefaultQRGenerator{},
		storage.NewKafkaPublisher(writer),
	)

	handler := httpapi.NewHandler(svc)
	router := httpapi.NewRouter(handler)

	port := os.Getenv("ORDER_SVC_PORT")
	if port == "" {
		port = "8081"
	}
	httpapi.StartServer(":"+port, router)
}
