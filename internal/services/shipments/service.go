// Package shipments is the tracking read model and applies vendor status observations
// coming back from the status sync worker.
package shipments

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/cache"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

type Repository interface {
	dispatchtx.Runner
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	GetCourier(ctx context.Context, courierID int64) (*models.Courier, error)
}

type Directory interface {
	Get(ctx context.Context, name string, channel models.ChannelType) (*models.Courier, error)
}

type Ledger interface {
	Append(ctx context.Context, w ledger.Writer, e *models.TrackingEvent) error
	History(ctx context.Context, orderID int64) ([]*models.TrackingEvent, error)
}

type Publisher interface {
	PublishJSON(ctx context.Context, topic string, key []byte, v any) error
}

// Current is the order's delivery state as cached.
type Current struct {
	OrderID          int64                `json:"order_id"`
	Status           models.OrderStatus   `json:"status"`
	CourierStatus    models.CourierStatus `json:"courier_status"`
	CourierID        *int64               `json:"courier_id,omitempty"`
	CourierName      string               `json:"courier_name,omitempty"`
	Channel          models.ChannelType   `json:"channel,omitempty"`
	CourierOrderID   string               `json:"courier_order_id,omitempty"`
	TrackingID       string               `json:"tracking_id,omitempty"`
	DeliveryPersonID *int64               `json:"delivery_person_id,omitempty"`
	OTPVerified      bool                 `json:"otp_verified"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type Tracking struct {
	Current
	Events []*models.TrackingEvent `json:"events"`
}

type Service struct {
	repo       Repository
	dir        Directory
	ledger     Ledger
	cache      cache.BytesCache
	currentTTL time.Duration

	pub   Publisher
	topic string

	now func() time.Time
}

func New(repo Repository, dir Directory, l Ledger, c cache.BytesCache, currentTTL time.Duration) *Service {
	return &Service{repo: repo, dir: dir, ledger: l, cache: c, currentTTL: currentTTL, now: time.Now}
}

// WithPublisher enables status_changed notifications on topic.
func (s *Service) WithPublisher(pub Publisher, topic string) *Service {
	s.pub, s.topic = pub, topic
	return s
}

// GetTracking returns the current shipment state (cached) with the full ledger history.
func (s *Service) GetTracking(ctx context.Context, orderID int64) (*Tracking, error) {
	if orderID <= 0 {
		return nil, errs.Validationf("get tracking", "order id is required")
	}
	cur, err := s.current(ctx, orderID)
	if err != nil {
		return nil, err
	}
	events, err := s.ledger.History(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.TrackingEvent{}
	}
	return &Tracking{Current: *cur, Events: events}, nil
}

func (s *Service) current(ctx context.Context, orderID int64) (*Current, error) {
	if s.cacheEnabled() {
		b, ok, err := s.cache.Get(ctx, currentKey(orderID))
		if err != nil {
			slog.Warn("tracking cache get failed", "order_id", orderID, "error", err.Error())
		} else if ok {
			var c Current
			if json.Unmarshal(b, &c) == nil {
				return &c, nil
			}
		}
	}
	return s.load(ctx, orderID)
}

// load reads the current state from storage and refreshes the cache.
func (s *Service) load(ctx context.Context, orderID int64) (*Current, error) {
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	c := &Current{
		OrderID:          o.ID,
		Status:           o.Status,
		CourierStatus:    o.CourierStatus,
		CourierID:        o.CourierID,
		DeliveryPersonID: o.DeliveryPersonID,
		OTPVerified:      o.DeliveryOTPVerified,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.CourierOrderID != nil {
		c.CourierOrderID = *o.CourierOrderID
	}
	if o.CourierTrackingID != nil {
		c.TrackingID = *o.CourierTrackingID
	}
	if o.CourierID != nil {
		courier, err := s.repo.GetCourier(ctx, *o.CourierID)
		if err != nil {
			return nil, err
		}
		c.CourierName, c.Channel = courier.Name, courier.Channel
	}

	if s.cacheEnabled() {
		if b, err := json.Marshal(c); err == nil {
			if err := s.cache.Set(ctx, currentKey(orderID), b, s.currentTTL); err != nil {
				slog.Warn("tracking cache set failed", "order_id", orderID, "error", err.Error())
			}
		}
	}
	return c, nil
}

// ShipmentChanged refreshes the cached state and announces the change. Both steps are best
// effort; the change itself is already committed.
func (s *Service) ShipmentChanged(ctx context.Context, ev messages.ShipmentStatusChanged) {
	if s.cacheEnabled() {
		if _, err := s.load(ctx, ev.OrderID); err != nil {
			slog.Warn("tracking cache refresh failed", "order_id", ev.OrderID, "error", err.Error())
		}
	}
	if s.pub == nil {
		return
	}
	env := messages.Envelope{Kind: messages.KindStatusChanged, Changed: &ev}
	if err := s.pub.PublishJSON(ctx, s.topic, []byte(strconv.FormatInt(ev.OrderID, 10)), env); err != nil {
		slog.Warn("publish status change failed", "order_id", ev.OrderID, "topic", s.topic, "error", err.Error())
	}
}

// ApplyObservation records one vendor poll. A new status moves the order through the courier
// state machine and lands in the ledger; a repeated or regressing status only reschedules the
// next check.
func (s *Service) ApplyObservation(ctx context.Context, msg messages.ShipmentStatusObserved) error {
	const op = "apply shipment observation"
	if msg.OrderID <= 0 {
		return errs.Validationf(op, "order_id is required")
	}
	if msg.CheckedAt.IsZero() {
		msg.CheckedAt = s.now().UTC()
	}
	if msg.NextCheckAt.IsZero() {
		// воркер не прислал next_check_at, проверим через час
		msg.NextCheckAt = msg.CheckedAt.Add(60 * time.Minute)
	}

	if msg.Error != nil {
		return s.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
			return tx.RecordShipmentCheckFailure(ctx, msg.OrderID, msg.CheckedAt, *msg.Error, msg.NextCheckAt)
		})
	}

	next, ok := models.ParseCourierStatus(msg.Status)
	if !ok {
		return errs.Validationf(op, "unknown status %q", msg.Status)
	}
	c, err := s.dir.Get(ctx, msg.Vendor, models.ChannelExternal)
	if err != nil {
		return err
	}

	var changed *models.Order
	err = s.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, msg.OrderID)
		if err != nil {
			return err
		}
		if o.CourierID == nil || *o.CourierID != c.ID {
			slog.Info("stale observation ignored", "order_id", msg.OrderID, "vendor", msg.Vendor,
				"consignment_id", msg.ConsignmentID)
			return nil
		}

		cur := o.CourierStatus
		check := &models.ShipmentCheck{
			OrderID:       o.ID,
			CourierName:   c.Name,
			ConsignmentID: msg.ConsignmentID,
			CourierStatus: cur,
			NextCheckAt:   msg.NextCheckAt,
			LastCheckedAt: &msg.CheckedAt,
		}

		switch {
		case next == cur:
			return tx.UpsertShipmentCheck(ctx, check)
		case !cur.CanTransitionTo(next):
			slog.Debug("status regression ignored", "order_id", o.ID, "current", string(cur), "observed", string(next))
			if cur.Terminal() {
				return tx.FinishShipmentCheck(ctx, o.ID)
			}
			return tx.UpsertShipmentCheck(ctx, check)
		}

		o.CourierStatus = next
		o.Status = next.OrderStatus()
		o.UpdatedAt = msg.CheckedAt
		if err := tx.SaveOrderDispatch(ctx, o); err != nil {
			return err
		}

		at := msg.CheckedAt
		if msg.StatusAt != nil {
			at = msg.StatusAt.UTC()
		}
		ev := &models.TrackingEvent{
			OrderID:   o.ID,
			CourierID: c.ID,
			Status:    next,
			Details:   fmt.Sprintf("%s reported %q", c.Name, msg.StatusRaw),
			Timestamp: at,
		}
		if o.CourierTrackingID != nil {
			ev.TrackingID = *o.CourierTrackingID
		}
		if err := s.ledger.Append(ctx, tx, ev); err != nil {
			return err
		}

		if next.Terminal() {
			if err := tx.FinishShipmentCheck(ctx, o.ID); err != nil {
				return err
			}
		} else {
			check.CourierStatus = next
			if err := tx.UpsertShipmentCheck(ctx, check); err != nil {
				return err
			}
		}
		changed = o
		return nil
	})
	if err != nil {
		return err
	}

	if changed != nil {
		slog.Info("courier status changed", "order_id", changed.ID, "vendor", c.Name, "status", string(changed.CourierStatus))
		ev := messages.ShipmentStatusChanged{
			OrderID:     changed.ID,
			CourierID:   c.ID,
			Channel:     string(models.ChannelExternal),
			Status:      string(changed.CourierStatus),
			OrderStatus: string(changed.Status),
			ChangedAt:   msg.CheckedAt,
		}
		if changed.CourierTrackingID != nil {
			ev.TrackingID = *changed.CourierTrackingID
		}
		s.ShipmentChanged(ctx, ev)
	}
	return nil
}

func (s *Service) cacheEnabled() bool {
	return s.cache != nil && s.currentTTL > 0
}

func currentKey(orderID int64) string {
	return fmt.Sprintf("tracking:%d:current", orderID)
}
