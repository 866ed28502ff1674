package service

import (
	"context"
	"encoding/json"
	"log"

	"arabian-treat-hub/agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

// ProcessEvent refreshes the dashboard snapshot. Every known event type
// moves either the live revenue or the active count, so they all trigger
// the same recompute over the recent order window.
func (c *Consumer) ProcessEvent(event domain.OrderEvent) {
	switch event.Type {
	case domain.EventOrderCreated, domain.EventStatusChanged, domain.EventOrdersArchived:
	default:
		return
	}

	log.Printf("Processing event: type=%s order=%d status=%s",
		event.Type, event.OrderID, event.Status)

	if err := c.Store.RecomputeLiveStats(); err != nil {
		log.Printf("Error recomputing live stats: %v", err)
		return
	}

	log.Printf("Live stats refreshed after %s", event.Type)
}
