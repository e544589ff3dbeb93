// Package courier defines the contract every external delivery vendor implements and the
// decorators (retry, idempotency) that wrap it.
package courier

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
)

// Location is the vendor's city → zone → area hierarchy resolved for a shipment.
type Location struct {
	CityID int64 `json:"city_id"`
	ZoneID int64 `json:"zone_id"`
	AreaID int64 `json:"area_id"`
}

// Place is one node of a vendor location list.
type Place struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ShipmentRequest struct {
	MerchantOrderID  string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	Location         Location

	ItemQuantity    int
	ItemWeightKg    float64
	ItemDescription string

	// AmountToCollect is the cash-on-delivery amount; zero when paid online.
	AmountToCollect    models.Money
	SpecialInstruction string
}

type ShipmentResult struct {
	ConsignmentID string       `json:"consignment_id"`
	TrackingCode  string       `json:"tracking_code"`
	StatusRaw     string       `json:"status_raw,omitempty"`
	DeliveryFee   models.Money `json:"delivery_fee,omitempty"`
}

type Adapter interface {
	Code() string
	CreateShipment(ctx context.Context, req ShipmentRequest) (ShipmentResult, error)
}

// LocationSource is implemented by vendors that address shipments by location ids.
type LocationSource interface {
	Cities(ctx context.Context) ([]Place, error)
	Zones(ctx context.Context, cityID int64) ([]Place, error)
	Areas(ctx context.Context, zoneID int64) ([]Place, error)
}

type TrackingResult struct {
	Status    models.CourierStatus
	StatusRaw string
	StatusAt  *time.Time
}

// Tracker is implemented by vendors that expose a consignment status endpoint.
type Tracker interface {
	TrackShipment(ctx context.Context, consignmentID string) (TrackingResult, error)
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// HTTPStatusError classifies a non-2xx vendor response. 5xx and 429 are worth retrying.
func HTTPStatusError(op string, code int, body string) error {
	retryable := code == 429 || code >= 500
	return errs.Externalf(op, retryable, "http %d: %s", code, Truncate(body, 200))
}

// TransportError wraps a network failure; always retryable.
func TransportError(op string, err error) error {
	return errs.External(op, err, true)
}

// MalformedResponse reports a payload that decoded but lacks required fields.
func MalformedResponse(op string, format string, args ...any) error {
	return errs.Externalf(op, false, "malformed response: %s", fmt.Sprintf(format, args...))
}
