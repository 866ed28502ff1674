package service

import (
	"context"

	"arabian-treat-hub/agg-svc/internal/domain"
	"arabian-treat-hub/agg-svc/internal/storage"
)

type StoreInterface interface {
	RecomputeLiveStats() error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
