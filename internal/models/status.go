package models

// OrderStatus: грубая проекция состояния доставки для витрины.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusInTransit  OrderStatus = "in_transit"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether no further dispatch is possible for the order.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CourierStatus is the shipment state shared by the external and internal channels.
type CourierStatus string

const (
	CourierStatusPending   CourierStatus = "pending"
	CourierStatusAssigned  CourierStatus = "assigned"
	CourierStatusPicked    CourierStatus = "picked"
	CourierStatusInTransit CourierStatus = "in_transit"
	CourierStatusDelivered CourierStatus = "delivered"
	CourierStatusReturned  CourierStatus = "returned"
	CourierStatusCancelled CourierStatus = "cancelled"
)

// Позиция статуса на "прямом" пути доставки. returned/cancelled вне шкалы.
var courierStatusRank = map[CourierStatus]int{
	CourierStatusPending:   0,
	CourierStatusAssigned:  1,
	CourierStatusPicked:    2,
	CourierStatusInTransit: 3,
	CourierStatusDelivered: 4,
}

func ParseCourierStatus(s string) (CourierStatus, bool) {
	st := CourierStatus(s)
	return st, st.Valid()
}

func (s CourierStatus) Valid() bool {
	if _, ok := courierStatusRank[s]; ok {
		return true
	}
	return s == CourierStatusReturned || s == CourierStatusCancelled
}

func (s CourierStatus) Terminal() bool {
	switch s {
	case CourierStatusDelivered, CourierStatusReturned, CourierStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo allows forward moves along pending → assigned → picked → in_transit → delivered
// (skipping steps is fine) and returned/cancelled from any non-terminal state.
// An empty current status is treated as pending.
func (s CourierStatus) CanTransitionTo(next CourierStatus) bool {
	if s == "" {
		s = CourierStatusPending
	}
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == CourierStatusReturned || next == CourierStatusCancelled {
		return true
	}
	return courierStatusRank[next] > courierStatusRank[s]
}

// OrderStatus projects the courier status onto the order status.
func (s CourierStatus) OrderStatus() OrderStatus {
	switch s {
	case CourierStatusInTransit:
		return OrderStatusInTransit
	case CourierStatusDelivered:
		return OrderStatusDelivered
	case CourierStatusReturned, CourierStatusCancelled:
		return OrderStatusCancelled
	default:
		return OrderStatusProcessing
	}
}
