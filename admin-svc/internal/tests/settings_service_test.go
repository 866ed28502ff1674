package tests

import (
	"testing"

	"arabian-treat-hub/admin-svc/internal/mocks"
	"arabian-treat-hub/admin-svc/internal/service"
	"arabian-treat-hub/internal/settings"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_Update(t *testing.T) {
	repo := mocks.NewSettingsRepository(t)
	svc := service.NewSettingsService(repo)

	current := settings.StoreSettings{
		IsOpen: true, IsDayOpen: true, BusinessDate: "2024-06-01", DeliveryCharge: 20,
	}
	repo.On("Get").Return(current, nil).Once()
	repo.On("Save", settings.StoreSettings{
		IsOpen: false, IsDayOpen: true, BusinessDate: "2024-06-01", DeliveryCharge: 35,
	}).Return(nil).Once()

	// The caller cannot touch isDayOpen or businessDate through this path.
	updated, err := svc.Update(settings.StoreSettings{
		IsOpen: false, IsDayOpen: false, BusinessDate: "1999-01-01", DeliveryCharge: 35,
	})

	assert.NoError(t, err)
	assert.False(t, updated.IsOpen)
	assert.True(t, updated.IsDayOpen)
	assert.Equal(t, "2024-06-01", updated.BusinessDate)
	assert.Equal(t, 35.0, updated.DeliveryCharge)
}

func TestSettingsService_Update_RejectsNegativeCharge(t *testing.T) {
	repo := mocks.NewSettingsRepository(t)
	svc := service.NewSettingsService(repo)

	_, err := svc.Update(settings.StoreSettings{DeliveryCharge: -1})
	assert.ErrorIs(t, err, service.ErrNegativeDeliveryCharge)
}
