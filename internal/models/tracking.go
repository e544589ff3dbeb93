package models

import "time"

// Стандартные значения location в журнале.
const (
	LocationMerchant = "merchant"
	LocationCustomer = "customer"
)

// TrackingEvent is one immutable entry of the delivery ledger.
type TrackingEvent struct {
	ID         uint64        `json:"id"`
	OrderID    int64         `json:"order_id"`
	CourierID  int64         `json:"courier_id"`
	TrackingID string        `json:"tracking_id"`
	Status     CourierStatus `json:"status"`
	Details    string        `json:"details,omitempty"`
	Location   string        `json:"location,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
}

// ShipmentCheck schedules vendor status polling for an externally dispatched order.
type ShipmentCheck struct {
	OrderID        int64
	CourierName    string
	ConsignmentID  string
	CourierStatus  CourierStatus
	NextCheckAt    time.Time
	LastCheckedAt  *time.Time
	CheckFailCount int32
	LastError      *string
}
