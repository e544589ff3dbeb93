package models

import "time"

type ChannelType string

const (
	ChannelExternal ChannelType = "external"
	ChannelInternal ChannelType = "internal"
)

// InternalCourierName is the directory row every in-house assignment points at.
const InternalCourierName = "internal"

type Courier struct {
	ID        int64
	Name      string
	Channel   ChannelType
	IsActive  bool
	CreatedAt time.Time
}

type DeliveryPersonStatus string

const (
	DeliveryPersonActive     DeliveryPersonStatus = "active"
	DeliveryPersonInactive   DeliveryPersonStatus = "inactive"
	DeliveryPersonOnDelivery DeliveryPersonStatus = "on_delivery"
)

type DeliveryPerson struct {
	ID            int64
	Name          string
	Phone         string
	Email         string
	Status        DeliveryPersonStatus
	CurrentOrders int
	TotalOrders   int
	Rating        float64
}
