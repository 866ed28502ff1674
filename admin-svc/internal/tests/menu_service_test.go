package tests

import (
	"testing"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/admin-svc/internal/mocks"
	"arabian-treat-hub/admin-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_Import(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	var inserted []domain.MenuItem
	repo.On("InsertMenuItems", mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(0).([]domain.MenuItem)
	}).Return(nil).Once()

	rows := []domain.MenuImportRow{
		// Size columns expand into one item each; quantity merges into the name.
		{Item: "Al Faham", Quantity: "1 PC", Type: "non-veg", Category: "Arabian",
			Prices: map[string]string{"qtr": "120", "half": "220", "full": "420"}},
		// Plain price column, VEG normalization, default category.
		{Item: "Kunafa", Type: "VEG", Prices: map[string]string{"price": "150"}},
		// Seasonal and unparseable prices are skipped silently.
		{Item: "Mango Shake", Type: "veg", Prices: map[string]string{"price": "Seasonal"}},
		{Item: "Mystery", Prices: map[string]string{"price": "abc"}},
		// Nameless rows are skipped.
		{Item: "  ", Prices: map[string]string{"price": "99"}},
	}

	count, err := svc.Import(rows)

	assert.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Len(t, inserted, 4)

	assert.Equal(t, "AL FAHAM 1 PC", inserted[0].Name)
	assert.Equal(t, "QTR", inserted[0].SizeLabel)
	assert.Equal(t, 120.0, inserted[0].Price)
	assert.Equal(t, "ARABIAN", inserted[0].Category)
	assert.Equal(t, "NON-VEG", inserted[0].Diet)

	assert.Equal(t, "HALF", inserted[1].SizeLabel)
	assert.Equal(t, "FULL", inserted[2].SizeLabel)

	kunafa := inserted[3]
	assert.Equal(t, "KUNAFA", kunafa.Name)
	assert.Equal(t, "", kunafa.SizeLabel)
	assert.Equal(t, "VEG", kunafa.Diet)
	assert.Equal(t, "GENERAL", kunafa.Category)
	assert.Equal(t, "/veg.jpg", kunafa.ImageURL)
}

func TestMenuService_Import_EmptyPayload(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	_, err := svc.Import(nil)
	assert.ErrorIs(t, err, service.ErrNoMenuRows)
}

func TestMenuService_Import_AllRowsSkipped(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)

	count, err := svc.Import([]domain.MenuImportRow{
		{Item: "Mango Shake", Prices: map[string]string{"price": "Seasonal"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertNotCalled(t, "InsertMenuItems", mock.Anything)
}
