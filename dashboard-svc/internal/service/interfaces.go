package service

import (
	"arabian-treat-hub/dashboard-svc/internal/domain"
)

type DashboardInterface interface {
	LiveStats() (domain.DashboardStats, error)
	TopItemsToday() (domain.TopItemsResponse, error)
}

var _ DashboardInterface = (*DashboardService)(nil)
