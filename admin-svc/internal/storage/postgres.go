package storage

import (
	"database/sql"
	"encoding/json"

	"arabian-treat-hub/admin-svc/internal/domain"
	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"

	"github.com/lib/pq"
)

type OrdersRepository struct {
	DB *sql.DB
}

func NewOrdersRepository(db *sql.DB) *OrdersRepository {
	return &OrdersRepository{DB: db}
}

const orderColumns = `id, bill_no, customer_phone, delivery_phone, items, delivery_details,
	delivery_fee, total_bill, status, cancel_reason, payment_method, created_at, delivered_at, delivered_by`

func scanOrders(rows *sql.Rows) []orders.Order {
	var result []orders.Order
	for rows.Next() {
		var o orders.Order
		var itemsJSON, detailsJSON []byte
		var cancelReason, deliveredBy sql.NullString
		var deliveredAt sql.NullTime

		if err := rows.Scan(&o.ID, &o.BillNo, &o.CustomerPhone, &o.DeliveryPhone, &itemsJSON, &detailsJSON,
			&o.DeliveryFee, &o.TotalBill, &o.Status, &cancelReason, &o.PaymentMethod,
			&o.CreatedAt, &deliveredAt, &deliveredBy); err != nil {
			continue
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			continue
		}
		if len(detailsJSON) > 0 {
			o.DeliveryDetails = &orders.DeliveryDetails{}
			_ = json.Unmarshal(detailsJSON, o.DeliveryDetails)
		}
		o.CancelReason = cancelReason.String
		o.DeliveredBy = deliveredBy.String
		if deliveredAt.Valid {
			t := deliveredAt.Time
			o.DeliveredAt = &t
		}
		result = append(result, o)
	}
	return result
}

func (r *OrdersRepository) ListAllOrders() ([]orders.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows), nil
}

func (r *OrdersRepository) ListOrdersByStatus(statuses []orders.Status) ([]orders.Order, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	rows, err := r.DB.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at DESC
	`, pq.Array(values))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows), nil
}

func (r *OrdersRepository) GetOrder(orderID int64) (*orders.Order, error) {
	var o orders.Order
	var itemsJSON, detailsJSON []byte
	var cancelReason, deliveredBy sql.NullString
	var deliveredAt sql.NullTime

	err := r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID).
		Scan(&o.ID, &o.BillNo, &o.CustomerPhone, &o.DeliveryPhone, &itemsJSON, &detailsJSON,
			&o.DeliveryFee, &o.TotalBill, &o.Status, &cancelReason, &o.PaymentMethod,
			&o.CreatedAt, &deliveredAt, &deliveredBy)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	if len(detailsJSON) > 0 {
		o.DeliveryDetails = &orders.DeliveryDetails{}
		_ = json.Unmarshal(detailsJSON, o.DeliveryDetails)
	}
	o.CancelReason = cancelReason.String
	o.DeliveredBy = deliveredBy.String
	if deliveredAt.Valid {
		t := deliveredAt.Time
		o.DeliveredAt = &t
	}
	return &o, nil
}

// UpdateStatus is a blind overwrite, last write wins.
func (r *OrdersRepository) UpdateStatus(orderID int64, status orders.Status) error {
	_, err := r.DB.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, string(status), orderID)
	return err
}

func (r *OrdersRepository) CancelOrder(orderID int64, reason string) error {
	_, err := r.DB.Exec(`
		UPDATE orders SET status = $1, cancel_reason = $2 WHERE id = $3
	`, string(orders.StatusCancelled), reason, orderID)
	return err
}

// ArchiveOrders moves one batch to History in a single statement, so the
// batch lands all-or-nothing.
func (r *OrdersRepository) ArchiveOrders(orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	_, err := r.DB.Exec(`
		UPDATE orders SET status = $1 WHERE id = ANY($2)
	`, string(orders.StatusHistory), pq.Array(orderIDs))
	return err
}

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) Get() (settings.StoreSettings, error) {
	var s settings.StoreSettings
	err := r.DB.QueryRow(`
		SELECT is_open, is_day_open, business_date, delivery_charge
		FROM settings WHERE id = 'store'
	`).Scan(&s.IsOpen, &s.IsDayOpen, &s.BusinessDate, &s.DeliveryCharge)
	if err == sql.ErrNoRows {
		return settings.Defaults(), nil
	}
	if err != nil {
		return settings.StoreSettings{}, err
	}
	return s, nil
}

func (r *SettingsRepository) Save(s settings.StoreSettings) error {
	_, err := r.DB.Exec(`
		INSERT INTO settings (id, is_open, is_day_open, business_date, delivery_charge)
		VALUES ('store', $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			is_day_open = EXCLUDED.is_day_open,
			business_date = EXCLUDED.business_date,
			delivery_charge = EXCLUDED.delivery_charge
	`, s.IsOpen, s.IsDayOpen, s.BusinessDate, s.DeliveryCharge)
	return err
}

type MenuRepository struct {
	DB *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) InsertMenuItems(items []domain.MenuItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	for _, m := range items {
		if _, err := tx.Exec(`
			INSERT INTO menu (name, price, category, size_label, diet, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, m.Name, m.Price, m.Category, m.SizeLabel, m.Diet, m.ImageURL); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *MenuRepository) ListMenu() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, category, size_label, diet, image_url
		FROM menu ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.SizeLabel, &m.Diet, &m.ImageURL); err != nil {
			continue
		}
		items = append(items, m)
	}
	return items, nil
}
