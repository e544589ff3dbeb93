package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/BearBump/DispatchBox/internal/cache"
)

// Idempotent remembers successful shipments by vendor and merchant order reference, so a
// dispatch retried after a partial failure returns the recorded consignment instead of
// creating a second one at the vendor.
type Idempotent struct {
	next  Adapter
	store cache.BytesCache
	ttl   time.Duration
}

func WithIdempotency(store cache.BytesCache, ttl time.Duration) Decorator {
	return func(a Adapter) Adapter {
		return NewIdempotent(a, store, ttl)
	}
}

func NewIdempotent(next Adapter, store cache.BytesCache, ttl time.Duration) *Idempotent {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Idempotent{next: next, store: store, ttl: ttl}
}

func (a *Idempotent) Code() string { return a.next.Code() }

func (a *Idempotent) CreateShipment(ctx context.Context, req ShipmentRequest) (ShipmentResult, error) {
	if a.store == nil || req.MerchantOrderID == "" {
		return a.next.CreateShipment(ctx, req)
	}
	key := shipmentKey(a.next.Code(), req.MerchantOrderID)

	b, ok, err := a.store.Get(ctx, key)
	switch {
	case err != nil:
		slog.Warn("idempotency lookup failed", "key", key, "error", err.Error())
	case ok:
		var res ShipmentResult
		if json.Unmarshal(b, &res) == nil && res.ConsignmentID != "" {
			slog.Info("shipment already created, reusing", "vendor", a.next.Code(),
				"merchant_order_id", req.MerchantOrderID, "consignment_id", res.ConsignmentID)
			return res, nil
		}
	}

	res, err := a.next.CreateShipment(ctx, req)
	if err != nil {
		return ShipmentResult{}, err
	}

	if b, err := json.Marshal(res); err == nil {
		if err := a.store.Set(ctx, key, b, a.ttl); err != nil {
			slog.Warn("idempotency store failed", "key", key, "error", err.Error())
		}
	}
	return res, nil
}

func shipmentKey(vendor, merchantOrderID string) string {
	return fmt.Sprintf("shipment:%s:%s", vendor, merchantOrderID)
}
