package messages

import "time"

// ShipmentStatusObserved публикует воркер после опроса курьера. Error заполнен, если опрос
// не удался; тогда статус не меняется, а NextCheckAt содержит время повтора по backoff.
type ShipmentStatusObserved struct {
	OrderID       int64     `json:"order_id"`
	Vendor        string    `json:"vendor"`
	ConsignmentID string    `json:"consignment_id"`
	CheckedAt     time.Time `json:"checked_at"`

	Status    string     `json:"status,omitempty"`
	StatusRaw string     `json:"status_raw,omitempty"`
	StatusAt  *time.Time `json:"status_at,omitempty"`

	NextCheckAt time.Time `json:"next_check_at"`

	Error *string `json:"error,omitempty"`
}

// ShipmentStatusChanged is emitted after a committed courier status change on either channel.
type ShipmentStatusChanged struct {
	OrderID     int64     `json:"order_id"`
	CourierID   int64     `json:"courier_id"`
	Channel     string    `json:"channel"`
	TrackingID  string    `json:"tracking_id"`
	Status      string    `json:"status"`
	OrderStatus string    `json:"order_status"`
	ChangedAt   time.Time `json:"changed_at"`
}

// Kind values let consumers of the shared shipment.status topic tell the messages apart.
const (
	KindStatusObserved = "status_observed"
	KindStatusChanged  = "status_changed"
)

// Envelope wraps every message on the shipment.status topic.
type Envelope struct {
	Kind     string                  `json:"kind"`
	Observed *ShipmentStatusObserved `json:"observed,omitempty"`
	Changed  *ShipmentStatusChanged  `json:"changed,omitempty"`
}
