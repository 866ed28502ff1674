package orders

// Status is the lifecycle state of an order. The string values are a
// persisted contract shared by every client: exact spelling and casing,
// underscore in Out_for_Delivery included.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusAccepted       Status = "Accepted"
	StatusPreparing      Status = "Preparing"
	StatusReady          Status = "Ready"
	StatusOutForDelivery Status = "Out_for_Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
	StatusHistory        Status = "History"
)

// LiveStatuses is the kitchen's working set: orders that still need
// attention.
var LiveStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
}

// ArchivableStatuses is everything shift close sweeps into History.
// Cancelled and History orders are already settled and stay put.
var ArchivableStatuses = []Status{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

func statusIn(s Status, set []Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

// IsLive reports whether the order shows up on the kitchen's Live board.
func (s Status) IsLive() bool {
	return statusIn(s, LiveStatuses)
}

// InHistoryView reports whether the order shows up on the History board.
func (s Status) InHistoryView() bool {
	return s == StatusHistory || s == StatusCancelled
}

// CanAccept: kitchen accepts a fresh order and starts preparing it.
func CanAccept(from Status) bool {
	return from == StatusPending
}

// CanDispatch: kitchen hands a prepared order to a driver.
func CanDispatch(from Status) bool {
	return from == StatusPreparing || from == StatusReady
}

// CanDeliver: the driver scanner allows direct completion from any state
// that is not already Delivered, archived orders included.
func CanDeliver(from Status) bool {
	return from != StatusDelivered
}

// CanCancel: admin may cancel anything that is not already settled.
func CanCancel(from Status) bool {
	return from != StatusDelivered && from != StatusCancelled && from != StatusHistory
}
