package settings

// StoreSettings is the single store-wide configuration record. The JSON
// field names are a persisted contract shared by every client; callers
// receive the current value from a repository instead of holding a live
// global.
type StoreSettings struct {
	IsOpen         bool    `json:"isOpen"`
	IsDayOpen      bool    `json:"isDayOpen"`
	BusinessDate   string  `json:"businessDate"`
	DeliveryCharge float64 `json:"deliveryCharge"`
}

// Defaults is the record created the first time the store boots: open for
// business with no delivery charge configured yet.
func Defaults() StoreSettings {
	return StoreSettings{IsOpen: true, IsDayOpen: true}
}
