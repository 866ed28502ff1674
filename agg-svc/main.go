package main

import (
	"context"

	"arabian-treat-hub/agg-svc/internal/service"
	"arabian-treat-hub/agg-svc/internal/storage"
	"arabian-treat-hub/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("orders", "agg-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
