package main

import (
	"log"
	"net/http"
	"os"

	"arabian-treat-hub/api-gateway/internal/gateway"
	"arabian-treat-hub/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		OrderSvcURL:     getEnv("ORDER_SVC_URL", "http://localhost:8081"),
		AdminSvcURL:     getEnv("ADMIN_SVC_URL", "http://localhost:8082"),
		DeliverySvcURL:  getEnv("DELIVERY_SVC_URL", "http://localhost:8083"),
		DashboardSvcURL: getEnv("DASHBOARD_SVC_URL", "http://localhost:8084"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	log.Println("API Gateway starting on port 8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
