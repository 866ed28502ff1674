package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"arabian-treat-hub/internal/orders"
)

type DeliveryRepository struct {
	DB *sql.DB
}

func NewDeliveryRepository(db *sql.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) GetOrder(orderID int64) (*orders.Order, error) {
	var o orders.Order
	var itemsJSON, detailsJSON []byte
	var cancelReason, deliveredBy sql.NullString
	var deliveredAt sql.NullTime

	err := r.DB.QueryRow(`
		SELECT id, bill_no, customer_phone, delivery_phone, items, delivery_details,
			delivery_fee, total_bill, status, cancel_reason, payment_method,
			created_at, delivered_at, delivered_by
		FROM orders WHERE id = $1
	`, orderID).Scan(&o.ID, &o.BillNo, &o.CustomerPhone, &o.DeliveryPhone, &itemsJSON, &detailsJSON,
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

// MarkDelivered writes status, timestamp and driver unconditionally, the
// same last-write-wins rule as every other status update.
func (r *DeliveryRepository) MarkDelivered(orderID int64, at time.Time, by string) error {
	_, err := r.DB.Exec(`
		UPDATE orders SET status = $1, delivered_at = $2, delivered_by = $3 WHERE id = $4
	`, string(orders.StatusDelivered), at, by, orderID)
	return err
}
