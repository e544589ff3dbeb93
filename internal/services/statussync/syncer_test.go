package statussync

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/cache/rediscache"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
	"github.com/BearBump/DispatchBox/internal/storage/memdispatch"
)

type fakeProducer struct {
	mu     sync.Mutex
	topic  string
	values [][]byte
	keys   []string
	fails  int
}

func (p *fakeProducer) Publish(_ context.Context, topic string, key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fails > 0 {
		p.fails--
		return errors.New("leader not available")
	}
	p.topic = topic
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func (p *fakeProducer) observed(t *testing.T, i int) messages.ShipmentStatusObserved {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	var env messages.Envelope
	require.NoError(t, json.Unmarshal(p.values[i], &env))
	require.Equal(t, messages.KindStatusObserved, env.Kind)
	require.NotNil(t, env.Observed)
	return *env.Observed
}

type fakeRL struct {
	allowed bool
	err     error
	keys    []string
	limits  []int64
}

func (r *fakeRL) Allow(_ context.Context, key string, limit int64, _ time.Duration) (bool, int64, error) {
	r.keys = append(r.keys, key)
	r.limits = append(r.limits, limit)
	return r.allowed, 1, r.err
}

type stubTracker struct {
	courier.Adapter
	res courier.TrackingResult
	err error
}

func (s stubTracker) TrackShipment(context.Context, string) (courier.TrackingResult, error) {
	return s.res, s.err
}

type plainAdapter struct{ code string }

func (a plainAdapter) Code() string { return a.code }

func (a plainAdapter) CreateShipment(context.Context, courier.ShipmentRequest) (courier.ShipmentResult, error) {
	return courier.ShipmentResult{}, nil
}

func registry(adapters ...courier.Adapter) *courier.Registry {
	reg := courier.NewRegistry()
	for _, a := range adapters {
		reg.Register(a)
	}
	return reg
}

var fixedNow = time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

func newSyncer(repo Repository, reg Vendors, p Producer, rl RateLimiter) *Syncer {
	s := New(repo, reg, p, rl, "shipment.status")
	s.now = func() time.Time { return fixedNow }
	s.planner = NewPlanner(PlannerConfig{MovingMinDelay: 30 * time.Minute, MovingMaxDelay: 30 * time.Minute}, nil)
	return s
}

func TestSyncer_processOne_okPublishes(t *testing.T) {
	at := fixedNow.Add(-time.Hour)
	fp := &fakeProducer{}
	reg := registry(stubTracker{
		Adapter: plainAdapter{code: "pathao"},
		res:     courier.TrackingResult{Status: models.CourierStatusInTransit, StatusRaw: "Picked_up", StatusAt: &at},
	})
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	s := newSyncer(nil, reg, fp, &fakeRL{allowed: true}).WithMetrics(m)

	c := &models.ShipmentCheck{OrderID: 42, CourierName: "pathao", ConsignmentID: "DL42"}
	require.NoError(t, s.processOne(context.Background(), c))

	require.Equal(t, "shipment.status", fp.topic)
	require.Equal(t, []string{"42"}, fp.keys)
	msg := fp.observed(t, 0)
	require.Equal(t, int64(42), msg.OrderID)
	require.Equal(t, "pathao", msg.Vendor)
	require.Equal(t, "DL42", msg.ConsignmentID)
	require.Equal(t, "in_transit", msg.Status)
	require.Equal(t, "Picked_up", msg.StatusRaw)
	require.True(t, at.Equal(*msg.StatusAt))
	require.Equal(t, fixedNow.Add(30*time.Minute), msg.NextCheckAt)
	require.Nil(t, msg.Error)
}

func TestSyncer_processOne_errorBackoff(t *testing.T) {
	fp := &fakeProducer{}
	reg := registry(stubTracker{Adapter: plainAdapter{code: "steadfast"}, err: errors.New("http 503")})
	s := newSyncer(nil, reg, fp, nil)

	c := &models.ShipmentCheck{OrderID: 1, CourierName: "steadfast", ConsignmentID: "9", CheckFailCount: 2}
	require.NoError(t, s.processOne(context.Background(), c))

	msg := fp.observed(t, 0)
	require.NotNil(t, msg.Error)
	require.Contains(t, *msg.Error, "http 503")
	require.Empty(t, msg.Status)
	require.Equal(t, fixedNow.Add(30*time.Minute), msg.NextCheckAt)
}

func TestSyncer_processOne_untrackableVendor(t *testing.T) {
	fp := &fakeProducer{}
	s := newSyncer(nil, registry(plainAdapter{code: "manual"}), fp, nil)

	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 2, CourierName: "manual"}))
	msg := fp.observed(t, 0)
	require.Contains(t, *msg.Error, "does not support tracking")
	require.Equal(t, fixedNow.Add(5*time.Minute), msg.NextCheckAt)

	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 3, CourierName: "unknown"}))
	msg = fp.observed(t, 1)
	require.Contains(t, *msg.Error, "unknown courier vendor")
}

func TestSyncer_processOne_rateLimitDefers(t *testing.T) {
	fp := &fakeProducer{}
	rl := &fakeRL{allowed: false}
	s := newSyncer(nil, registry(stubTracker{Adapter: plainAdapter{code: "pathao"}}), fp, rl).
		WithVendorRateLimits(map[string]int64{"pathao": 30, "steadfast": 0})

	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 4, CourierName: "pathao"}))
	require.Empty(t, fp.values)
	require.Equal(t, []string{"rl:courier:pathao:202506031200"}, rl.keys)
	require.Equal(t, []int64{30}, rl.limits)
	require.EqualValues(t, 1, s.Stats().TotalDeferred)

	rl.err = errors.New("redis down")
	require.Error(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 5, CourierName: "steadfast"}))
	require.Equal(t, int64(60), rl.limits[1])
}

func TestSyncer_publishRetries(t *testing.T) {
	fp := &fakeProducer{fails: 2}
	s := newSyncer(nil, registry(stubTracker{Adapter: plainAdapter{code: "pathao"}}), fp, nil)

	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 6, CourierName: "pathao"}))
	require.Len(t, fp.values, 1)

	fp.fails = 100
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.processOne(ctx, &models.ShipmentCheck{OrderID: 7, CourierName: "pathao"}), context.Canceled)
}

func TestSyncer_runOnce_claimsDueChecks(t *testing.T) {
	store := memdispatch.New()
	cust := store.PutCustomer(models.Customer{Name: "A"})
	for _, id := range []int64{10, 11, 12} {
		store.PutOrder(models.Order{ID: id, CustomerID: cust.ID})
	}
	require.NoError(t, store.WithTx(context.Background(), func(ctx context.Context, tx dispatchtx.Repository) error {
		for id, next := range map[int64]time.Time{10: fixedNow.Add(-time.Minute), 11: fixedNow, 12: fixedNow.Add(time.Hour)} {
			if err := tx.UpsertShipmentCheck(ctx, &models.ShipmentCheck{
				OrderID: id, CourierName: "pathao", ConsignmentID: "C", NextCheckAt: next,
			}); err != nil {
				return err
			}
		}
		return nil
	}))

	mr := miniredis.RunT(t)
	fp := &fakeProducer{}
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)
	s := newSyncer(store, registry(stubTracker{
		Adapter: plainAdapter{code: "pathao"},
		res:     courier.TrackingResult{Status: models.CourierStatusPicked},
	}), fp, rediscache.NewRateLimiter(mr.Addr())).WithMetrics(m)

	s.runOnce(context.Background())

	st := s.Stats()
	require.EqualValues(t, 2, st.TotalClaimed)
	require.EqualValues(t, 2, st.TotalProcessed)
	require.Zero(t, st.TotalErrors)
	require.NotNil(t, st.LastCycleAt)
	require.ElementsMatch(t, []string{"10", "11"}, fp.keys)

	// leased: a second cycle at the same instant claims nothing
	s.runOnce(context.Background())
	require.EqualValues(t, 2, s.Stats().TotalClaimed)
	rlCount, err := mr.Get("rl:courier:pathao:202506031200")
	require.NoError(t, err)
	require.Equal(t, "2", rlCount)
}

type failingRepo struct{ calls int }

func (r *failingRepo) ClaimDueShipmentChecks(context.Context, time.Time, int, time.Duration) ([]*models.ShipmentCheck, error) {
	r.calls++
	return nil, errors.New("db gone")
}

func TestSyncer_Run_StopsOnContextCancel(t *testing.T) {
	repo := &failingRepo{}
	s := New(repo, registry(), &fakeProducer{}, nil, "t").WithSettings(5*time.Millisecond, 1, 1, time.Second, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.GreaterOrEqual(t, repo.calls, 1)
	require.Equal(t, "db gone", s.Stats().LastError)
}

func TestSyncer_Trigger(t *testing.T) {
	repo := &failingRepo{}
	s := New(repo, registry(), &fakeProducer{}, nil, "t").WithSettings(time.Hour, 1, 1, time.Second, 1)
	s.Trigger()
	s.Trigger() // второй не блокирует

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = s.Run(ctx)
	require.Equal(t, 1, repo.calls)
	require.NotNil(t, s.Stats().LastTriggerAt)
}

func TestSyncer_WithSettings(t *testing.T) {
	s := New(nil, registry(), &fakeProducer{}, nil, "t").
		WithSettings(5*time.Second, 7, 9, 11*time.Second, 13)
	require.Equal(t, 5*time.Second, s.pollInterval)
	require.Equal(t, 7, s.batchSize)
	require.Equal(t, 9, s.concurrency)
	require.Equal(t, 11*time.Second, s.lease)
	require.Equal(t, int64(13), s.rateLimitPerMinute)
}

func TestSyncer_metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	fp := &fakeProducer{}
	s := newSyncer(nil, registry(
		stubTracker{Adapter: plainAdapter{code: "pathao"}, res: courier.TrackingResult{Status: models.CourierStatusPending}},
		stubTracker{Adapter: plainAdapter{code: "steadfast"}, err: errors.New("x")},
	), fp, nil).WithMetrics(m)

	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 1, CourierName: "pathao"}))
	require.NoError(t, s.processOne(context.Background(), &models.ShipmentCheck{OrderID: 2, CourierName: "steadfast"}))

	n, err := testutil.GatherAndCount(reg, "shipment_status_checks_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
