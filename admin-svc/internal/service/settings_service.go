package service

import (
	"errors"

	"arabian-treat-hub/internal/settings"
)

var ErrNegativeDeliveryCharge = errors.New("delivery charge must not be negative")

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get() (settings.StoreSettings, error) {
	return s.repo.Get()
}

// Update writes the storefront toggles and delivery charge. The business
// date is owned by the shift controller and cannot be edited here.
func (s *SettingsService) Update(updated settings.StoreSettings) (settings.StoreSettings, error) {
	if updated.DeliveryCharge < 0 {
		return settings.StoreSettings{}, ErrNegativeDeliveryCharge
	}

	current, err := s.repo.Get()
	if err != nil {
		return settings.StoreSettings{}, err
	}

	current.IsOpen = updated.IsOpen
	current.DeliveryCharge = updated.DeliveryCharge

	if err := s.repo.Save(current); err != nil {
		return settings.StoreSettings{}, err
	}
	return current, nil
}
