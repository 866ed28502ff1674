package service

import (
	"context"
	"fmt"
	"time"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
)

// archiveBatchSize bounds one atomic archive write.
const archiveBatchSize = 500

// ShiftService opens and closes the trading day. Archival runs in
// atomic-per-batch chunks; a crash between batches leaves the operation
// resumable, and re-running it is a no-op for already archived orders.
type ShiftService struct {
	repo      OrdersRepository
	settings  SettingsRepository
	publisher EventPublisher

	// Now is swappable in tests.
	Now func() time.Time
}

func NewShiftService(repo OrdersRepository, settingsRepo SettingsRepository, publisher EventPublisher) *ShiftService {
	return &ShiftService{
		repo:      repo,
		settings:  settingsRepo,
		publisher: publisher,
		Now:       time.Now,
	}
}

// StartNewDay archives every archivable order created before today's 4 AM
// cutoff, then unlocks the shift on today's business date.
func (s *ShiftService) StartNewDay(ctx context.Context) (domain.ShiftResult, error) {
	now := s.Now()
	today := orders.BusinessDateOf(now)

	cutoff, err := orders.CutoffInstant(today, now.Location())
	if err != nil {
		return domain.ShiftResult{}, err
	}

	candidates, err := s.repo.ListOrdersByStatus(orders.ArchivableStatuses)
	if err != nil {
		return domain.ShiftResult{}, err
	}

	var stale []int64
	for _, o := range candidates {
		if o.CreatedAt.Before(cutoff) {
			stale = append(stale, o.ID)
		}
	}

	archived, err := s.archive(ctx, stale)
	if err != nil {
		return domain.ShiftResult{}, err
	}

	store, err := s.settings.Get()
	if err != nil {
		return domain.ShiftResult{}, err
	}
	store.IsOpen = true
	store.IsDayOpen = true
	store.BusinessDate = today
	if err := s.settings.Save(store); err != nil {
		return domain.ShiftResult{}, fmt.Errorf("failed to unlock day: %w", err)
	}

	return domain.ShiftResult{BusinessDate: today, ArchivedCount: archived}, nil
}

// EndDay archives every archivable order regardless of age and locks both
// the storefront and the admin shift.
func (s *ShiftService) EndDay(ctx context.Context) (domain.ShiftResult, error) {
	candidates, err := s.repo.ListOrdersByStatus(orders.ArchivableStatuses)
	if err != nil {
		return domain.ShiftResult{}, err
	}

	ids := make([]int64, 0, len(candidates))
	for _, o := range candidates {
		ids = append(ids, o.ID)
	}

	archived, err := s.archive(ctx, ids)
	if err != nil {
		return domain.ShiftResult{}, err
	}

	store, err := s.settings.Get()
	if err != nil {
		return domain.ShiftResult{}, err
	}
	store.IsOpen = false
	store.IsDayOpen = false
	if err := s.settings.Save(store); err != nil {
		return domain.ShiftResult{}, fmt.Errorf("failed to lock day: %w", err)
	}

	return domain.ShiftResult{BusinessDate: store.BusinessDate, ArchivedCount: archived}, nil
}

func (s *ShiftService) archive(ctx context.Context, ids []int64) (int, error) {
	archived := 0
	for start := 0; start < len(ids); start += archiveBatchSize {
		end := start + archiveBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]
		if err := s.repo.ArchiveOrders(batch); err != nil {
			return archived, fmt.Errorf("failed to archive batch of %d orders: %w", len(batch), err)
		}
		archived += len(batch)
	}

	if archived > 0 && s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrdersArchived,
			Status:    orders.StatusHistory,
			Timestamp: time.Now(),
		})
	}
	return archived, nil
}
