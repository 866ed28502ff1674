package service

import (
	"errors"
	"strconv"
	"strings"

	"arabian-treat-hub/admin-svc/internal/domain"
)

var ErrNoMenuRows = errors.New("import payload has no rows")

// sizeColumns is the order portion columns are expanded in. A plain
// "price" column yields an unlabelled item.
var sizeColumns = []string{"qtr", "half", "full", "price"}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.repo.ListMenu()
}

// Import expands bulk upload rows into menu items. Each priced size column
// becomes its own item; the quantity cell ("6 PC") is merged into the item
// name; "Seasonal" and unparseable prices are skipped, not errors.
func (s *MenuService) Import(rows []domain.MenuImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, ErrNoMenuRows
	}

	var items []domain.MenuItem
	for _, row := range rows {
		name := strings.TrimSpace(row.Item)
		if name == "" {
			continue
		}
		if qty := strings.TrimSpace(row.Quantity); qty != "" {
			name = name + " " + qty
		}
		name = strings.ToUpper(name)

		diet := "NON-VEG"
		if strings.EqualFold(strings.TrimSpace(row.Type), "VEG") {
			diet = "VEG"
		}
		category := strings.ToUpper(strings.TrimSpace(row.Category))
		if category == "" {
			category = "GENERAL"
		}

		for _, size := range sizeColumns {
			raw, ok := row.Prices[size]
			if !ok {
				continue
			}
			raw = strings.TrimSpace(raw)
			if raw == "" || strings.EqualFold(raw, "Seasonal") {
				continue
			}
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				continue
			}

			sizeLabel := ""
			if size != "price" {
				sizeLabel = strings.ToUpper(size)
			}
			items = append(items, domain.MenuItem{
				Name:      name,
				Price:     price,
				Category:  category,
				SizeLabel: sizeLabel,
				Diet:      diet,
				ImageURL:  imageFor(diet, category),
			})
		}
	}

	if len(items) == 0 {
		return 0, nil
	}
	if err := s.repo.InsertMenuItems(items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func imageFor(diet, category string) string {
	if diet == "VEG" {
		return "/veg.jpg"
	}
	clean := strings.ToLower(strings.TrimSpace(category))
	clean = strings.ReplaceAll(clean, "'", "")
	clean = strings.ReplaceAll(clean, "&", "and")
	clean = strings.Join(strings.Fields(clean), "_")
	if clean == "" {
		clean = "arabian"
	}
	return "/categories/" + clean + ".jpg"
}
