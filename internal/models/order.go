package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Money хранится в пойша (1/100 таки).
type Money int64

func MoneyFromTaka(v float64) Money {
	return Money(math.Round(v * 100))
}

func (m Money) Taka() float64 {
	return float64(m) / 100
}

// WholeTaka rounds half up to whole taka.
func (m Money) WholeTaka() int64 {
	return (int64(m) + 50) / 100
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Taka(), 'f', 2, 64)
}

const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

type ShippingAddress struct {
	Address      string
	City         string
	PostCode     string
	Phone        string
	Area         string
	Landmark     string
	Instructions string
}

// FullAddress joins the non-empty address parts the way couriers print them on labels.
func (a ShippingAddress) FullAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Address, a.Landmark, a.Area, a.City, a.PostCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Order struct {
	ID         int64
	CustomerID int64
	Status     OrderStatus

	CourierID         *int64
	CourierOrderID    *string
	CourierTrackingID *string
	CourierStatus     CourierStatus

	DeliveryPersonID    *int64
	DeliveryOTP         *string
	DeliveryOTPVerified bool
	DeliveryOTPSentAt   *time.Time

	Shipping      ShippingAddress
	Total         Money
	PaymentMethod string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCashOnDelivery accepts the spellings the storefront has used over time.
func (o *Order) IsCashOnDelivery() bool {
	switch strings.ToLower(strings.TrimSpace(o.PaymentMethod)) {
	case PaymentMethodCOD, "cash_on_delivery", "cash on delivery":
		return true
	default:
		return false
	}
}

// Clone returns a deep copy so callers can mutate dispatch fields without aliasing.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.CourierID = clonePtr(o.CourierID)
	c.CourierOrderID = clonePtr(o.CourierOrderID)
	c.CourierTrackingID = clonePtr(o.CourierTrackingID)
	c.DeliveryPersonID = clonePtr(o.DeliveryPersonID)
	c.DeliveryOTP = clonePtr(o.DeliveryOTP)
	c.DeliveryOTPSentAt = clonePtr(o.DeliveryOTPSentAt)
	return &c
}

type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	Name         string
	Quantity     int
	UnitWeightKg float64
}

type Customer struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func Ptr[T any](v T) *T { return &v }
