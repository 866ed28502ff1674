package service

import (
	"strconv"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int64) ([]byte, error)
}

// DefaultQRGenerator encodes the opaque order id; the driver scanner
// resolves it straight back to the order.
type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(orderID int64) ([]byte, error) {
	return qrcode.Encode(strconv.FormatInt(orderID, 10), qrcode.Medium, 256)
}
