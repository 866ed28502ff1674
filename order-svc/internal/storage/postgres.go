package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"arabian-treat-hub/internal/orders"
	"arabian-treat-hub/internal/settings"
	"arabian-treat-hub/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates the tables this service writes to. Schema lives in
// code; there is no separate migration tool.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			bill_no BIGINT NOT NULL UNIQUE,
			customer_phone TEXT NOT NULL,
			delivery_phone TEXT NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			delivery_details JSONB,
			delivery_fee NUMERIC NOT NULL DEFAULT 0,
			total_bill NUMERIC NOT NULL,
			status TEXT NOT NULL,
			cancel_reason TEXT,
			payment_method TEXT NOT NULL DEFAULT 'COD',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			delivered_at TIMESTAMPTZ,
			delivered_by TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			latest BIGINT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS order_qrcodes (
			order_id BIGINT PRIMARY KEY REFERENCES orders(id),
			png BYTEA NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menu (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			category TEXT NOT NULL DEFAULT 'GENERAL',
			size_label TEXT NOT NULL DEFAULT '',
			diet TEXT NOT NULL DEFAULT 'NON-VEG',
			image_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id TEXT PRIMARY KEY,
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			is_day_open BOOLEAN NOT NULL DEFAULT TRUE,
			business_date TEXT NOT NULL DEFAULT '',
			delivery_charge NUMERIC NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// NextBillNo increments the bill counter under a transaction so concurrent
// checkouts never see the same number and lost updates cannot skip one.
func (r *PostgresRepository) NextBillNo() (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin counter transaction: %w", err)
	}

	var latest int64
	err = tx.QueryRow(`SELECT latest FROM counters WHERE name = 'orders' FOR UPDATE`).Scan(&latest)
	if err == sql.ErrNoRows {
		latest = 0
		if _, err = tx.Exec(`INSERT INTO counters (name, latest) VALUES ('orders', 0)`); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to seed bill counter: %w", err)
		}
	} else if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to read bill counter: %w", err)
	}

	next := latest + 1
	if _, err = tx.Exec(`UPDATE counters SET latest = $1 WHERE name = 'orders'`, next); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to advance bill counter: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bill counter: %w", err)
	}
	return next, nil
}

func (r *PostgresRepository) InsertOrder(order *orders.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	var detailsJSON []byte
	if order.DeliveryDetails != nil {
		if detailsJSON, err = json.Marshal(order.DeliveryDetails); err != nil {
			return err
		}
	}

	return r.DB.QueryRow(`
		INSERT INTO orders (bill_no, customer_phone, delivery_phone, items, delivery_details,
			delivery_fee, total_bill, status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, order.BillNo, order.CustomerPhone, order.DeliveryPhone, itemsJSON, detailsJSON,
		order.DeliveryFee, order.TotalBill, string(order.Status), order.PaymentMethod).
		Scan(&order.ID, &order.CreatedAt)
}

const orderColumns = `id, bill_no, customer_phone, delivery_phone, items, delivery_details,
	delivery_fee, total_bill, status, cancel_reason, payment_method, created_at, delivered_at, delivered_by`

func scanOrder(row *sql.Row) (*orders.Order, error) {
	var o orders.Order
	var itemsJSON []byte
	var detailsJSON []byte
	var cancelReason, deliveredBy sql.NullString
	var deliveredAt sql.NullTime

	err := row.Scan(&o.ID, &o.BillNo, &o.CustomerPhone, &o.DeliveryPhone, &itemsJSON, &detailsJSON,
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
		if err := json.Unmarshal(detailsJSON, o.DeliveryDetails); err != nil {
			return nil, err
		}
	}
	o.CancelReason = cancelReason.String
	o.DeliveredBy = deliveredBy.String
	if deliveredAt.Valid {
		t := deliveredAt.Time
		o.DeliveredAt = &t
	}
	return &o, nil
}

func (r *PostgresRepository) GetOrder(orderID int64) (*orders.Order, error) {
	row := r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	return scanOrder(row)
}

func (r *PostgresRepository) ListOrdersByPhone(phone string) ([]orders.Order, error) {
	rows, err := r.DB.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_phone = $1
		ORDER BY created_at DESC
	`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
	return result, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int64, png []byte) error {
	_, err := r.DB.Exec(`
		INSERT INTO order_qrcodes (order_id, png) VALUES ($1, $2)
		ON CONFLICT (order_id) DO UPDATE SET png = EXCLUDED.png
	`, orderID, png)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int64) ([]byte, error) {
	var png []byte
	err := r.DB.QueryRow(`SELECT png FROM order_qrcodes WHERE order_id = $1`, orderID).Scan(&png)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (r *PostgresRepository) ListMenu() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`SELECT id, name, price, category, size_label, diet, image_url FROM menu ORDER BY name ASC`)
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

// SettingsRepository reads the singleton store record, falling back to
// defaults when it has not been created yet.
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
