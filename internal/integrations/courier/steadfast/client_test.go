package steadfast

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

func TestClient_CreateShipment_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/create_order", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "key", r.Header.Get("Api-Key"))
		require.Equal(t, "secret", r.Header.Get("Secret-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ORD-7", body["invoice"])
		require.EqualValues(t, 1234.5, body["cod_amount"])
		require.Len(t, []rune(body["recipient_address"].(string)), maxAddress)
		require.Equal(t, "leave at gate", body["note"])

		_, _ = w.Write([]byte(`{"status":200,"message":"Consignment has been created successfully.",
			"consignment":{"consignment_id":1424107,"invoice":"ORD-7","tracking_code":"15BAEB8A","status":"in_review"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "secret")
	res, err := c.CreateShipment(context.Background(), courier.ShipmentRequest{
		MerchantOrderID:    "ORD-7",
		RecipientName:      "Karim",
		RecipientPhone:     "01812345678",
		RecipientAddress:   strings.Repeat("a", 300),
		AmountToCollect:    models.Money(123450),
		SpecialInstruction: "leave at gate",
	})
	require.NoError(t, err)
	require.Equal(t, "1424107", res.ConsignmentID)
	require.Equal(t, "15BAEB8A", res.TrackingCode)
	require.Equal(t, "in_review", res.StatusRaw)
}

func TestClient_CreateShipment_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":400,"message":"invoice already exists"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "key", "secret").CreateShipment(context.Background(), courier.ShipmentRequest{MerchantOrderID: "ORD-7"})
	require.ErrorIs(t, err, errs.ExternalService)
	require.False(t, errs.IsRetryable(err))
	require.Contains(t, err.Error(), "invoice already exists")
}

func TestClient_CreateShipment_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, "key", "secret").CreateShipment(context.Background(), courier.ShipmentRequest{MerchantOrderID: "ORD-7"})
	require.ErrorIs(t, err, errs.ExternalService)
	require.True(t, errs.IsRetryable(err))
}

func TestClient_TrackShipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/status_by_cid/1424107", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":200,"delivery_status":"delivered"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, "key", "secret").TrackShipment(context.Background(), "1424107")
	require.NoError(t, err)
	require.Equal(t, models.CourierStatusDelivered, res.Status)
	require.NotNil(t, res.StatusAt)
}

func TestMapStatus(t *testing.T) {
	require.Equal(t, models.CourierStatusDelivered, mapStatus("delivered"))
	require.Equal(t, models.CourierStatusDelivered, mapStatus("partial_delivered_approval_pending"))
	require.Equal(t, models.CourierStatusCancelled, mapStatus("cancelled_approval_pending"))
	require.Equal(t, models.CourierStatusInTransit, mapStatus("pending"))
	require.Equal(t, models.CourierStatusPending, mapStatus("in_review"))
}
