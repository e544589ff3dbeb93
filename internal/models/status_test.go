package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCourierStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to CourierStatus
		want     bool
	}{
		{CourierStatusPending, CourierStatusAssigned, true},
		{CourierStatusAssigned, CourierStatusPicked, true},
		{CourierStatusAssigned, CourierStatusDelivered, true},
		{CourierStatusPicked, CourierStatusInTransit, true},
		{CourierStatusInTransit, CourierStatusPicked, false},
		{CourierStatusInTransit, CourierStatusInTransit, false},
		{CourierStatusPicked, CourierStatusReturned, true},
		{CourierStatusPending, CourierStatusCancelled, true},
		{CourierStatusDelivered, CourierStatusReturned, false},
		{CourierStatusCancelled, CourierStatusAssigned, false},
		{"", CourierStatusAssigned, true},
		{CourierStatusAssigned, "lost", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCourierStatus_OrderStatus(t *testing.T) {
	require.Equal(t, OrderStatusProcessing, CourierStatusPicked.OrderStatus())
	require.Equal(t, OrderStatusProcessing, CourierStatusAssigned.OrderStatus())
	require.Equal(t, OrderStatusInTransit, CourierStatusInTransit.OrderStatus())
	require.Equal(t, OrderStatusDelivered, CourierStatusDelivered.OrderStatus())
	require.Equal(t, OrderStatusCancelled, CourierStatusReturned.OrderStatus())
}

func TestParseCourierStatus(t *testing.T) {
	st, ok := ParseCourierStatus("in_transit")
	require.True(t, ok)
	require.Equal(t, CourierStatusInTransit, st)

	_, ok = ParseCourierStatus("IN_TRANSIT")
	require.False(t, ok)
}

func TestMoney(t *testing.T) {
	m := MoneyFromTaka(1500.00)
	require.Equal(t, Money(150000), m)
	require.Equal(t, int64(1500), m.WholeTaka())
	require.InDelta(t, 1500.0, m.Taka(), 0.0001)

	require.Equal(t, int64(13), MoneyFromTaka(12.50).WholeTaka())
	require.Equal(t, "12.49", MoneyFromTaka(12.49).String())
}
