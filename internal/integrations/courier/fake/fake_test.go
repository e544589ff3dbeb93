package fake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

func TestClient_Deterministic(t *testing.T) {
	f := New()
	ctx := context.Background()

	r1, err := f.CreateShipment(ctx, courier.ShipmentRequest{MerchantOrderID: "ORD-1"})
	require.NoError(t, err)
	r2, err := f.CreateShipment(ctx, courier.ShipmentRequest{MerchantOrderID: "ORD-1"})
	require.NoError(t, err)
	require.Equal(t, r1, r2)
	require.NotEmpty(t, r1.ConsignmentID)

	t1, err := f.TrackShipment(ctx, r1.ConsignmentID)
	require.NoError(t, err)
	t2, err := f.TrackShipment(ctx, r1.ConsignmentID)
	require.NoError(t, err)
	require.Equal(t, t1.Status, t2.Status)
	require.Contains(t, []models.CourierStatus{models.CourierStatusInTransit, models.CourierStatusDelivered}, t1.Status)
}

func TestClient_Capabilities(t *testing.T) {
	var a courier.Adapter = New()
	_, ok := a.(courier.LocationSource)
	require.True(t, ok)
	_, ok = a.(courier.Tracker)
	require.True(t, ok)

	zones, err := New().Zones(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, zones, 3)
	require.Equal(t, int64(101), zones[0].ID)
}

func TestClient_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewWithCode("fake2").CreateShipment(ctx, courier.ShipmentRequest{MerchantOrderID: "x"})
	require.Error(t, err)
}
