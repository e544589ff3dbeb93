package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BearBump/DispatchBox/config"
	"github.com/BearBump/DispatchBox/internal/broker/kafka"
	"github.com/BearBump/DispatchBox/internal/cache/rediscache"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/pathao"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/steadfast"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/vendors"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/services/statussync"
	"github.com/BearBump/DispatchBox/internal/storage/pgdispatch"
)

type workerFactories struct {
	newStorage     func(cfg *config.Config) (repo statussync.Repository, closeFn func(), err error)
	newProducer    func(cfg *config.Config) statussync.Producer
	newRateLimiter func(cfg *config.Config) statussync.RateLimiter
	newVendors     func(cfg *config.Config) statussync.Vendors
	newMetrics     func(cfg *config.Config) *metrics.Metrics
}

func defaultWorkerFactories() workerFactories {
	return workerFactories{
		newStorage: func(cfg *config.Config) (statussync.Repository, func(), error) {
			st, err := pgdispatch.New(cfg.Database.DSN())
			if err != nil {
				return nil, nil, err
			}
			return st, st.Close, nil
		},
		newProducer: func(cfg *config.Config) statussync.Producer {
			brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
			return kafka.NewProducer(brokers)
		},
		newRateLimiter: func(cfg *config.Config) statussync.RateLimiter {
			redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
			return rediscache.NewRateLimiter(redisAddr)
		},
		// трекинг идёт мимо декораторов, так что ретраи и идемпотентность тут не нужны
		newVendors: func(cfg *config.Config) statussync.Vendors {
			return vendors.New(cfg)
		},
		newMetrics: func(*config.Config) *metrics.Metrics {
			m, err := metrics.New(nil)
			if err != nil {
				slog.Warn("metrics disabled", "error", err.Error())
				return nil
			}
			return m
		},
	}
}

func plannerConfig(w config.WorkerConfig) statussync.PlannerConfig {
	sec := func(v int) time.Duration { return time.Duration(v) * time.Second }
	// нули заменит NewPlanner
	return statussync.PlannerConfig{
		MovingMinDelay: sec(w.NextCheckActiveSeconds),
		MovingMaxDelay: sec(w.NextCheckActiveMaxSeconds),
		WaitingDelay:   sec(w.NextCheckPendingSeconds),
		Backoff1:       sec(w.Backoff1Seconds),
		Backoff2:       sec(w.Backoff2Seconds),
		Backoff3:       sec(w.Backoff3Seconds),
		Backoff4:       sec(w.Backoff4Seconds),
	}
}

// newSyncer wires the syncer from cfg; closeFn releases the storage.
func newSyncer(cfg *config.Config, f workerFactories) (*statussync.Syncer, func(), error) {
	topic := cfg.Kafka.ShipmentStatusTopic
	if topic == "" {
		topic = "shipment.status"
	}

	pollInterval := time.Duration(cfg.Worker.PollIntervalSeconds) * time.Second
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	batchSize := cfg.Worker.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	concurrency := cfg.Worker.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	lease := time.Duration(cfg.Worker.LeaseSeconds) * time.Second
	if lease <= 0 {
		lease = 120 * time.Second
	}
	rlPerMin := int64(cfg.Worker.RateLimitPerMinute)
	if rlPerMin <= 0 {
		rlPerMin = 60
	}

	repo, closeFn, err := f.newStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	if closeFn == nil {
		closeFn = func() {}
	}

	var m *metrics.Metrics
	if f.newMetrics != nil {
		m = f.newMetrics(cfg)
	}

	s := statussync.New(repo, f.newVendors(cfg), f.newProducer(cfg), f.newRateLimiter(cfg), topic).
		WithSettings(pollInterval, batchSize, concurrency, lease, rlPerMin).
		WithVendorRateLimits(map[string]int64{
			pathao.Code:    int64(cfg.Worker.RateLimitPathaoPerMinute),
			steadfast.Code: int64(cfg.Worker.RateLimitSteadfastPerMinute),
		}).
		WithPlanner(plannerConfig(cfg.Worker)).
		WithMetrics(m)
	return s, closeFn, nil
}

// RunDispatchWorker runs the sync loop and, when httpOpts.httpAddr is set, the ops HTTP server.
func RunDispatchWorker(ctx context.Context, cfg *config.Config, f workerFactories, httpOpts workerHTTPOpts) error {
	s, closeFn, err := newSyncer(cfg, f)
	if err != nil {
		return err
	}
	defer closeFn()

	if httpOpts.httpAddr != "" {
		httpOpts.syncer = s
		httpOpts.cfg = cfg
		go func() {
			if err := runWorkerHTTPServer(ctx, httpOpts); err != nil {
				slog.Error("worker http server stopped", "error", err.Error())
			}
		}()
	}

	slog.Info("status sync worker started")
	return s.Run(ctx)
}
