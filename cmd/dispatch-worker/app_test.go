package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BearBump/DispatchBox/config"
	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/fake"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/vendors"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/services/statussync"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
	"github.com/BearBump/DispatchBox/internal/storage/memdispatch"
)

type recordingProducer struct {
	mu     sync.Mutex
	topics []string
	values [][]byte
}

func (p *recordingProducer) Publish(_ context.Context, topic string, _, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.values = append(p.values, value)
	return nil
}

func (p *recordingProducer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.values)
}

func testFactories(repo statussync.Repository, prod statussync.Producer, closed *bool) workerFactories {
	return workerFactories{
		newStorage: func(*config.Config) (statussync.Repository, func(), error) {
			return repo, func() { *closed = true }, nil
		},
		newProducer:    func(*config.Config) statussync.Producer { return prod },
		newRateLimiter: func(*config.Config) statussync.RateLimiter { return nil },
		newVendors:     func(cfg *config.Config) statussync.Vendors { return vendors.New(cfg) },
		newMetrics:     func(*config.Config) *metrics.Metrics { return nil },
	}
}

func TestDefaultWorkerFactories_NonNil(t *testing.T) {
	f := defaultWorkerFactories()
	cfg := &config.Config{
		Kafka: config.KafkaConfig{Host: "localhost", Port: 9092},
		Redis: config.RedisConfig{Host: "localhost", Port: 6379},
	}
	require.NotNil(t, f.newProducer(cfg))
	require.NotNil(t, f.newRateLimiter(cfg))

	v, err := f.newVendors(cfg).Get("pathao")
	require.NoError(t, err)
	_, ok := v.Adapter.(*fake.Client)
	require.True(t, ok)
	require.NotNil(t, v.Tracker)
}

func TestPlannerConfig_FromWorkerConfig(t *testing.T) {
	pc := plannerConfig(config.WorkerConfig{
		NextCheckActiveSeconds:    600,
		NextCheckActiveMaxSeconds: 1200,
		NextCheckPendingSeconds:   300,
		Backoff1Seconds:           60,
	})
	require.Equal(t, 10*time.Minute, pc.MovingMinDelay)
	require.Equal(t, 20*time.Minute, pc.MovingMaxDelay)
	require.Equal(t, 5*time.Minute, pc.WaitingDelay)
	require.Equal(t, time.Minute, pc.Backoff1)
	require.Zero(t, pc.Backoff2)
}

func TestRunDispatchWorker_ContextCanceled(t *testing.T) {
	closed := false
	f := testFactories(memdispatch.New(), &recordingProducer{}, &closed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunDispatchWorker(ctx, &config.Config{Worker: config.WorkerConfig{PollIntervalSeconds: 1}}, f, workerHTTPOpts{})
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, closed)
}

func TestRunDispatchWorker_StorageError(t *testing.T) {
	f := testFactories(nil, nil, new(bool))
	f.newStorage = func(*config.Config) (statussync.Repository, func(), error) {
		return nil, nil, errors.New("pg down")
	}
	err := RunDispatchWorker(context.Background(), &config.Config{}, f, workerHTTPOpts{})
	require.EqualError(t, err, "pg down")
}

func TestRunDispatchWorker_TriggerPublishesObservation(t *testing.T) {
	store := memdispatch.New()
	cust := store.PutCustomer(models.Customer{Name: "A"})
	store.PutOrder(models.Order{ID: 5, CustomerID: cust.ID})
	require.NoError(t, store.WithTx(context.Background(), func(ctx context.Context, tx dispatchtx.Repository) error {
		return tx.UpsertShipmentCheck(ctx, &models.ShipmentCheck{
			OrderID: 5, CourierName: "pathao", ConsignmentID: "FAKE-5",
			CourierStatus: models.CourierStatusPending, NextCheckAt: time.Now().Add(-time.Minute),
		})
	}))

	prod := &recordingProducer{}
	cfg := &config.Config{
		Pathao: config.PathaoConfig{ClientSecret: "topsecret"},
		Worker: config.WorkerConfig{PollIntervalSeconds: 3600, BatchSize: 7},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- RunDispatchWorker(ctx, cfg, testFactories(store, prod, new(bool)), workerHTTPOpts{
			httpAddr: "127.0.0.1:0",
			onListen: func(addr string) { addrCh <- addr },
		})
	}()
	base := "http://" + <-addrCh

	resp, err := http.Post(base+"/trigger", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Eventually(t, func() bool { return prod.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	prod.mu.Lock()
	require.Equal(t, "shipment.status", prod.topics[0])
	var env messages.Envelope
	require.NoError(t, json.Unmarshal(prod.values[0], &env))
	prod.mu.Unlock()
	require.Equal(t, messages.KindStatusObserved, env.Kind)
	require.EqualValues(t, 5, env.Observed.OrderID)
	require.Equal(t, "pathao", env.Observed.Vendor)

	resp, err = http.Get(base + "/stats")
	require.NoError(t, err)
	var st statussync.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	_ = resp.Body.Close()
	require.EqualValues(t, 1, st.TotalClaimed)
	require.NotNil(t, st.LastTriggerAt)

	resp, err = http.Get(base + "/config")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Contains(t, string(body), `"batchSize":7`)
	require.NotContains(t, string(body), "topsecret")

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
