package fake

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/models"
)

const Code = "fake"

// Client это локальный "курьер" для разработки без сети. Результаты детерминированы по
// merchant order id / consignment id.
type Client struct {
	code string
}

func New() *Client { return &Client{code: Code} }

// NewWithCode lets several fake vendors coexist in one registry.
func NewWithCode(code string) *Client { return &Client{code: code} }

func (f *Client) Code() string { return f.code }

func (f *Client) CreateShipment(ctx context.Context, req courier.ShipmentRequest) (courier.ShipmentResult, error) {
	if err := ctx.Err(); err != nil {
		return courier.ShipmentResult{}, courier.TransportError("fake create shipment", err)
	}
	v := hash(f.code, req.MerchantOrderID)
	id := fmt.Sprintf("FK%010d", v)
	return courier.ShipmentResult{
		ConsignmentID: id,
		TrackingCode:  id,
		StatusRaw:     "pending",
		DeliveryFee:   models.MoneyFromTaka(60),
	}, nil
}

func (f *Client) Cities(context.Context) ([]courier.Place, error) {
	return []courier.Place{{ID: 1, Name: "Dhaka"}, {ID: 2, Name: "Chattogram"}}, nil
}

func (f *Client) Zones(_ context.Context, cityID int64) ([]courier.Place, error) {
	return []courier.Place{
		{ID: cityID*100 + 1, Name: "Gulshan"},
		{ID: cityID*100 + 2, Name: "Banani"},
		{ID: cityID*100 + 3, Name: "Dhanmondi"},
	}, nil
}

func (f *Client) Areas(_ context.Context, zoneID int64) ([]courier.Place, error) {
	return []courier.Place{
		{ID: zoneID*100 + 1, Name: "Road 1"},
		{ID: zoneID*100 + 2, Name: "Road 2"},
	}, nil
}

// TrackShipment: 20% отправлений считаем доставленными, остальные в пути.
func (f *Client) TrackShipment(_ context.Context, consignmentID string) (courier.TrackingResult, error) {
	now := time.Now().UTC()
	status := models.CourierStatusInTransit
	if hash(f.code, consignmentID)%5 == 0 {
		status = models.CourierStatusDelivered
	}
	return courier.TrackingResult{
		Status:    status,
		StatusRaw: string(status),
		StatusAt:  &now,
	}, nil
}

func hash(parts ...string) uint32 {
	h := fnv.New32a()
	for i, p := range parts {
		if i > 0 {
			_, _ = h.Write([]byte("|"))
		}
		_, _ = h.Write([]byte(p))
	}
	return h.Sum32()
}
