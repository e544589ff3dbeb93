// Package dispatch hands paid orders to an external courier vendor.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

type Repository interface {
	dispatchtx.Runner
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
}

type Directory interface {
	Get(ctx context.Context, name string, channel models.ChannelType) (*models.Courier, error)
}

type Vendors interface {
	Get(code string) (courier.Vendor, error)
}

type GeoResolver interface {
	Resolve(ctx context.Context, vendor string, src courier.LocationSource, addr models.ShippingAddress) (courier.Location, error)
}

type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

type Ledger interface {
	Append(ctx context.Context, w ledger.Writer, e *models.TrackingEvent) error
}

// ChangeListener is told about every committed courier status change.
type ChangeListener interface {
	ShipmentChanged(ctx context.Context, ev messages.ShipmentStatusChanged)
}

type Config struct {
	Enabled           bool
	DefaultVendor     string
	MerchantRefPrefix string
	// OperationTimeout bounds one Dispatch call including vendor retries.
	OperationTimeout time.Duration
	// FirstCheckDelay: через сколько воркер впервые спросит статус у курьера.
	FirstCheckDelay time.Duration
}

type Outcome string

const (
	OutcomeDispatched Outcome = "dispatched"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
)

// Result replaces a nil "nothing happened" return: callers on the payment path may ignore
// it, but the outcome and error kind are always explicit.
type Result struct {
	Outcome  Outcome
	OrderID  int64
	Vendor   string
	Shipment *courier.ShipmentResult
	Reason   string
	Err      error
}

func (r Result) Kind() errs.Kind { return errs.KindOf(r.Err) }

func (r Result) OK() bool { return r.Outcome == OutcomeDispatched }

type Options struct {
	// Force dispatches even when automatic dispatch is disabled.
	Force bool
}

type Orchestrator struct {
	cfg Config

	repo     Repository
	dir      Directory
	vendors  Vendors
	geo      GeoResolver
	phone    PhoneNormalizer
	ledger   Ledger
	listener ChangeListener
	metrics  *metrics.Metrics

	now func() time.Time
}

func New(cfg Config, repo Repository, dir Directory, vendors Vendors, geo GeoResolver, phone PhoneNormalizer, l Ledger) *Orchestrator {
	if cfg.MerchantRefPrefix == "" {
		cfg.MerchantRefPrefix = "ORD-"
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 60 * time.Second
	}
	if cfg.FirstCheckDelay <= 0 {
		cfg.FirstCheckDelay = 5 * time.Minute
	}
	return &Orchestrator{
		cfg: cfg, repo: repo, dir: dir, vendors: vendors, geo: geo, phone: phone, ledger: l,
		now: time.Now,
	}
}

func (o *Orchestrator) WithListener(l ChangeListener) *Orchestrator {
	o.listener = l
	return o
}

func (o *Orchestrator) WithMetrics(m *metrics.Metrics) *Orchestrator {
	o.metrics = m
	return o
}

// Dispatch creates a vendor shipment for the order and records it. It never returns an
// error: failures come back as Result{Outcome: OutcomeFailed} and leave the order untouched.
func (o *Orchestrator) Dispatch(ctx context.Context, orderID int64, vendor string, opts Options) Result {
	if vendor == "" {
		vendor = o.cfg.DefaultVendor
	}
	vendor = strings.ToLower(strings.TrimSpace(vendor))

	res := o.dispatch(ctx, orderID, vendor, opts)
	res.OrderID, res.Vendor = orderID, vendor

	switch res.Outcome {
	case OutcomeDispatched:
		slog.Info("order dispatched", "order_id", orderID, "vendor", vendor,
			"consignment_id", res.Shipment.ConsignmentID, "tracking_code", res.Shipment.TrackingCode)
	case OutcomeSkipped:
		slog.Info("dispatch skipped", "order_id", orderID, "vendor", vendor, "reason", res.Reason)
	case OutcomeFailed:
		slog.Error("dispatch failed", "order_id", orderID, "vendor", vendor,
			"kind", string(res.Kind()), "error", res.Err.Error())
	}
	o.metrics.DispatchOutcome(vendor, string(res.Outcome))
	return res
}

func (o *Orchestrator) dispatch(ctx context.Context, orderID int64, vendor string, opts Options) Result {
	if !o.cfg.Enabled && !opts.Force {
		return Result{Outcome: OutcomeSkipped, Reason: "automatic dispatch disabled"}
	}
	if vendor == "" {
		return failed(errs.Validationf("dispatch", "no vendor given and no default vendor configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.OperationTimeout)
	defer cancel()

	v, err := o.vendors.Get(vendor)
	if err != nil {
		return failed(err)
	}

	order, err := o.repo.GetOrder(ctx, orderID)
	if err != nil {
		return failed(err)
	}
	if order.Status.Terminal() {
		return failed(errs.Statef("dispatch", "order %d is %s", orderID, order.Status))
	}
	if order.CourierTrackingID != nil && order.CourierStatus != models.CourierStatusCancelled && !opts.Force {
		return Result{Outcome: OutcomeSkipped, Reason: "order already has an active shipment"}
	}

	customer, err := o.repo.GetCustomer(ctx, order.CustomerID)
	if err != nil {
		return failed(err)
	}
	items, err := o.repo.ListOrderItems(ctx, orderID)
	if err != nil {
		return failed(err)
	}
	if len(items) == 0 {
		return failed(errs.NotFoundf("dispatch", "order %d has no items", orderID))
	}

	c, err := o.dir.Get(ctx, vendor, models.ChannelExternal)
	if err != nil {
		return failed(err)
	}
	if !c.IsActive {
		return failed(errs.Statef("dispatch", "courier %s is inactive", c.Name))
	}

	var loc courier.Location
	if v.Locations != nil {
		loc, err = o.geo.Resolve(ctx, vendor, v.Locations, order.Shipping)
		if err != nil {
			return failed(err)
		}
	}

	rawPhone := order.Shipping.Phone
	if strings.TrimSpace(rawPhone) == "" {
		rawPhone = customer.Phone
	}
	phone, err := o.phone.Normalize(rawPhone)
	if err != nil {
		return failed(err)
	}

	req := BuildShipmentRequest(o.cfg.MerchantRefPrefix, order, customer, items)
	req.RecipientPhone = phone
	req.Location = loc

	shipment, err := v.Adapter.CreateShipment(ctx, req)
	if err != nil {
		return failed(err)
	}
	if shipment.ConsignmentID == "" {
		return failed(courier.MalformedResponse("dispatch", "vendor %s returned no consignment id", vendor))
	}
	if shipment.TrackingCode == "" {
		shipment.TrackingCode = shipment.ConsignmentID
	}

	now := o.now().UTC()
	var saved *models.Order
	err = o.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		cur, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if cur.Status.Terminal() {
			return errs.Statef("dispatch", "order %d became %s", orderID, cur.Status)
		}

		// заказ уходит от своего доставщика: OTP больше не действует
		if cur.DeliveryPersonID != nil {
			if err := tx.AdjustDeliveryPersonLoad(ctx, *cur.DeliveryPersonID, -1, 0); err != nil {
				return err
			}
			slog.Info("in-house assignment replaced by external shipment", "order_id", orderID,
				"delivery_person_id", *cur.DeliveryPersonID, "vendor", vendor)
			cur.DeliveryPersonID = nil
			cur.DeliveryOTP = nil
			cur.DeliveryOTPVerified = false
			cur.DeliveryOTPSentAt = nil
		}

		cur.CourierID = &c.ID
		cur.CourierOrderID = &req.MerchantOrderID
		cur.CourierTrackingID = &shipment.TrackingCode
		cur.CourierStatus = models.CourierStatusPending
		cur.Status = models.OrderStatusProcessing
		cur.UpdatedAt = now
		if err := tx.SaveOrderDispatch(ctx, cur); err != nil {
			return err
		}

		if err := o.ledger.Append(ctx, tx, &models.TrackingEvent{
			OrderID:    orderID,
			CourierID:  c.ID,
			TrackingID: shipment.TrackingCode,
			Status:     models.CourierStatusPending,
			Details:    fmt.Sprintf("Shipment created with %s, consignment %s", vendor, shipment.ConsignmentID),
			Location:   models.LocationMerchant,
			Timestamp:  now,
		}); err != nil {
			return err
		}

		if v.Tracker != nil {
			if err := tx.UpsertShipmentCheck(ctx, &models.ShipmentCheck{
				OrderID:       orderID,
				CourierName:   vendor,
				ConsignmentID: shipment.ConsignmentID,
				CourierStatus: models.CourierStatusPending,
				NextCheckAt:   now.Add(o.cfg.FirstCheckDelay),
			}); err != nil {
				return err
			}
		}
		saved = cur
		return nil
	})
	if err != nil {
		// отправление у курьера уже создано; повтор вернёт его же через idempotency-кэш
		slog.Warn("shipment created but not recorded", "order_id", orderID, "vendor", vendor,
			"consignment_id", shipment.ConsignmentID, "error", err.Error())
		return failed(err)
	}

	if o.listener != nil {
		o.listener.ShipmentChanged(ctx, messages.ShipmentStatusChanged{
			OrderID:     orderID,
			CourierID:   c.ID,
			Channel:     string(models.ChannelExternal),
			TrackingID:  shipment.TrackingCode,
			Status:      string(saved.CourierStatus),
			OrderStatus: string(saved.Status),
			ChangedAt:   now,
		})
	}

	return Result{Outcome: OutcomeDispatched, Shipment: &shipment}
}

func failed(err error) Result {
	return Result{Outcome: OutcomeFailed, Err: err}
}

// minimum weight the vendors accept
const minWeightKg = 0.5

// BuildShipmentRequest aggregates quantities and weights and computes the amount to collect.
// Phone and location are filled in by the caller.
func BuildShipmentRequest(prefix string, order *models.Order, customer *models.Customer, items []models.OrderItem) courier.ShipmentRequest {
	var (
		qty    int
		weight float64
		names  = make([]string, 0, len(items))
	)
	for _, it := range items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		qty += q
		weight += float64(q) * it.UnitWeightKg
		names = append(names, it.Name+" x"+strconv.Itoa(q))
	}
	weight = float64(int64(weight*1000+0.5)) / 1000
	if weight < minWeightKg {
		weight = minWeightKg
	}

	var cod models.Money
	if order.IsCashOnDelivery() {
		cod = order.Total
	}

	name := strings.TrimSpace(customer.Name)
	if name == "" {
		name = "Customer #" + strconv.FormatInt(customer.ID, 10)
	}

	return courier.ShipmentRequest{
		MerchantOrderID:    prefix + strconv.FormatInt(order.ID, 10),
		RecipientName:      name,
		RecipientAddress:   order.Shipping.FullAddress(),
		ItemQuantity:       qty,
		ItemWeightKg:       weight,
		ItemDescription:    strings.Join(names, ", "),
		AmountToCollect:    cod,
		SpecialInstruction: order.Shipping.Instructions,
	}
}
