// Package statussync polls external couriers for the status of dispatched shipments and
// publishes what it sees to Kafka.
package statussync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/models"
)

type Repository interface {
	ClaimDueShipmentChecks(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*models.ShipmentCheck, error)
}

type Vendors interface {
	Get(code string) (courier.Vendor, error)
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

const publishAttempts = 10

type Syncer struct {
	repo     Repository
	vendors  Vendors
	producer Producer
	rl       RateLimiter
	metrics  *metrics.Metrics

	topic string

	planner *Planner

	pollInterval       time.Duration
	batchSize          int
	concurrency        int
	lease              time.Duration
	rateLimitPerMinute int64
	vendorLimits       map[string]int64

	now       func() time.Time
	triggerCh chan struct{}

	startedAtUnixNano   int64
	lastCycleUnixNano   atomic.Int64
	lastTriggerUnixNano atomic.Int64
	totalClaimed        atomic.Int64
	totalProcessed      atomic.Int64
	totalErrors         atomic.Int64
	totalDeferred       atomic.Int64
	inFlight            atomic.Int64
	lastErrorMu         sync.Mutex
	lastError           string
}

func New(repo Repository, vendors Vendors, producer Producer, rl RateLimiter, topic string) *Syncer {
	return &Syncer{
		repo: repo, vendors: vendors, producer: producer, rl: rl, topic: topic,
		planner:            NewPlanner(DefaultPlannerConfig(), nil),
		pollInterval:       5 * time.Second,
		batchSize:          100,
		concurrency:        10,
		lease:              120 * time.Second,
		rateLimitPerMinute: 60,
		vendorLimits:       map[string]int64{},
		now:                time.Now,
		triggerCh:          make(chan struct{}, 1),
		startedAtUnixNano:  time.Now().UTC().UnixNano(),
	}
}

func (s *Syncer) WithSettings(pollInterval time.Duration, batchSize, concurrency int, lease time.Duration, rlPerMin int64) *Syncer {
	if pollInterval > 0 {
		s.pollInterval = pollInterval
	}
	if batchSize > 0 {
		s.batchSize = batchSize
	}
	if concurrency > 0 {
		s.concurrency = concurrency
	}
	if lease > 0 {
		s.lease = lease
	}
	if rlPerMin > 0 {
		s.rateLimitPerMinute = rlPerMin
	}
	return s
}

// WithVendorRateLimits overrides the per-minute limit for individual vendors.
func (s *Syncer) WithVendorRateLimits(limits map[string]int64) *Syncer {
	for code, n := range limits {
		if n > 0 {
			s.vendorLimits[code] = n
		}
	}
	return s
}

func (s *Syncer) WithPlanner(cfg PlannerConfig) *Syncer {
	s.planner = NewPlanner(cfg, nil)
	return s
}

func (s *Syncer) WithMetrics(m *metrics.Metrics) *Syncer {
	s.metrics = m
	return s
}

// Trigger forces an immediate poll cycle (best-effort, non-blocking).
func (s *Syncer) Trigger() {
	s.lastTriggerUnixNano.Store(time.Now().UTC().UnixNano())
	select {
	case s.triggerCh <- struct{}{}:
	default:
	}
}

type Stats struct {
	StartedAt      time.Time  `json:"startedAt"`
	LastCycleAt    *time.Time `json:"lastCycleAt,omitempty"`
	LastTriggerAt  *time.Time `json:"lastTriggerAt,omitempty"`
	TotalClaimed   int64      `json:"totalClaimed"`
	TotalProcessed int64      `json:"totalProcessed"`
	TotalErrors    int64      `json:"totalErrors"`
	TotalDeferred  int64      `json:"totalDeferred"`
	InFlight       int64      `json:"inFlight"`
	LastError      string     `json:"lastError,omitempty"`
}

func (s *Syncer) Stats() Stats {
	st := Stats{
		StartedAt:      time.Unix(0, s.startedAtUnixNano).UTC(),
		TotalClaimed:   s.totalClaimed.Load(),
		TotalProcessed: s.totalProcessed.Load(),
		TotalErrors:    s.totalErrors.Load(),
		TotalDeferred:  s.totalDeferred.Load(),
		InFlight:       s.inFlight.Load(),
	}
	if n := s.lastCycleUnixNano.Load(); n > 0 {
		t := time.Unix(0, n).UTC()
		st.LastCycleAt = &t
	}
	if n := s.lastTriggerUnixNano.Load(); n > 0 {
		t := time.Unix(0, n).UTC()
		st.LastTriggerAt = &t
	}
	s.lastErrorMu.Lock()
	st.LastError = s.lastError
	s.lastErrorMu.Unlock()
	return st
}

func (s *Syncer) Run(ctx context.Context) error {
	t := time.NewTicker(s.pollInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.runOnce(ctx)
		case <-s.triggerCh:
			s.runOnce(ctx)
		}
	}
}

func (s *Syncer) setLastError(err error) {
	s.lastErrorMu.Lock()
	s.lastError = err.Error()
	s.lastErrorMu.Unlock()
}

func (s *Syncer) runOnce(ctx context.Context) {
	now := s.now().UTC()
	s.lastCycleUnixNano.Store(now.UnixNano())

	checks, err := s.repo.ClaimDueShipmentChecks(ctx, now, s.batchSize, s.lease)
	if err != nil {
		slog.Error("claim due shipment checks", "error", err.Error())
		s.setLastError(err)
		return
	}
	s.totalClaimed.Add(int64(len(checks)))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for _, c := range checks {
		sem <- struct{}{}
		wg.Add(1)
		s.inFlight.Add(1)
		go func(c *models.ShipmentCheck) {
			defer func() {
				s.inFlight.Add(-1)
				<-sem
				wg.Done()
			}()
			if err := s.processOne(ctx, c); err != nil {
				s.totalErrors.Add(1)
				s.setLastError(err)
				slog.Error("process shipment check", "order_id", c.OrderID, "vendor", c.CourierName, "error", err.Error())
			}
			s.totalProcessed.Add(1)
		}(c)
	}
	wg.Wait()
}

func (s *Syncer) limitFor(vendor string) int64 {
	if n, ok := s.vendorLimits[vendor]; ok {
		return n
	}
	return s.rateLimitPerMinute
}

func (s *Syncer) processOne(ctx context.Context, c *models.ShipmentCheck) error {
	now := s.now().UTC()

	if s.rl != nil && s.limitFor(c.CourierName) > 0 {
		minuteKey := fmt.Sprintf("rl:courier:%s:%s", c.CourierName, now.Format("200601021504"))
		allowed, n, err := s.rl.Allow(ctx, minuteKey, s.limitFor(c.CourierName), 70*time.Second)
		if err != nil {
			return err
		}
		if !allowed {
			// lease истечёт, и запись заберёт следующий цикл
			slog.Warn("courier rate limit exceeded, check deferred", "vendor", c.CourierName, "count", n, "order_id", c.OrderID)
			s.totalDeferred.Add(1)
			return nil
		}
	}

	msg := messages.ShipmentStatusObserved{
		OrderID:       c.OrderID,
		Vendor:        c.CourierName,
		ConsignmentID: c.ConsignmentID,
		CheckedAt:     now,
	}

	res, err := s.track(ctx, c)
	if err != nil {
		e := err.Error()
		msg.Error = &e
		msg.NextCheckAt = now.Add(s.planner.BackoffDelay(c.CheckFailCount + 1))
		s.metrics.StatusCheck(c.CourierName, "error")
	} else {
		msg.Status = string(res.Status)
		msg.StatusRaw = res.StatusRaw
		msg.StatusAt = res.StatusAt
		msg.NextCheckAt = now.Add(s.planner.NextCheckDelay(res.Status))
		s.metrics.StatusCheck(c.CourierName, "ok")
	}

	b, err := json.Marshal(messages.Envelope{Kind: messages.KindStatusObserved, Observed: &msg})
	if err != nil {
		return errors.Wrap(err, "marshal kafka msg")
	}
	return s.publish(ctx, []byte(strconv.FormatInt(c.OrderID, 10)), b)
}

func (s *Syncer) track(ctx context.Context, c *models.ShipmentCheck) (courier.TrackingResult, error) {
	v, err := s.vendors.Get(c.CourierName)
	if err != nil {
		return courier.TrackingResult{}, err
	}
	if v.Tracker == nil {
		return courier.TrackingResult{}, errors.Errorf("vendor %s does not support tracking", c.CourierName)
	}
	return v.Tracker.TrackShipment(ctx, c.ConsignmentID)
}

// publish retries: Kafka may not be ready right after the stack starts.
func (s *Syncer) publish(ctx context.Context, key, value []byte) error {
	var err error
	for i := 0; i < publishAttempts; i++ {
		if err = s.producer.Publish(ctx, s.topic, key, value); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(150*(i+1)) * time.Millisecond):
		}
	}
	return err
}
