package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BearBump/DispatchBox/config"
	"github.com/BearBump/DispatchBox/internal/api/dispatchapi"
	"github.com/BearBump/DispatchBox/internal/broker/kafka"
	"github.com/BearBump/DispatchBox/internal/cache/rediscache"
	"github.com/BearBump/DispatchBox/internal/geo"
	"github.com/BearBump/DispatchBox/internal/integrations/courier"
	"github.com/BearBump/DispatchBox/internal/integrations/courier/vendors"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/notify"
	"github.com/BearBump/DispatchBox/internal/phone"
	"github.com/BearBump/DispatchBox/internal/services/directory"
	"github.com/BearBump/DispatchBox/internal/services/dispatch"
	"github.com/BearBump/DispatchBox/internal/services/inhouse"
	"github.com/BearBump/DispatchBox/internal/services/ledger"
	"github.com/BearBump/DispatchBox/internal/services/shipments"
	"github.com/BearBump/DispatchBox/internal/storage/pgdispatch"
)

type dispatchAPIApp struct {
	ctx      context.Context
	cancel   context.CancelFunc
	opts     dispatchAPIOpts
	deps     apiDeps
	payments *kafka.Consumer
	statuses *kafka.Consumer
	producer *kafka.Producer
	redis    *rediscache.RedisCache
	closeDB  func()
}

func mustBootstrapDispatchAPI() *dispatchAPIApp {
	cfgPath := os.Getenv("configPath")
	if cfgPath == "" {
		panic("configPath env var is required")
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		panic(fmt.Sprintf("ошибка парсинга конфига, %v", err))
	}

	opts := apiOptsFromConfig(cfg)
	opts.swaggerPath = os.Getenv("swaggerPath")

	otpTopic := cfg.Kafka.OTPNotificationTopic
	if otpTopic == "" {
		otpTopic = "notifications.delivery_otp"
	}
	idemTTL := seconds(cfg.Dispatch.IdempotencyTTLSeconds, 7*24*time.Hour)
	locTTL := seconds(cfg.Dispatch.LocationCacheTTLSeconds, 24*time.Hour)
	trackingTTL := seconds(cfg.Dispatch.TrackingCacheTTLSeconds, 10*time.Minute)
	opTimeout := seconds(cfg.Dispatch.OperationTimeoutSeconds, 30*time.Second)
	otpWindow := seconds(cfg.Dispatch.OTPAttemptWindowSeconds, 15*time.Minute)
	otpMaxAttempts := cfg.Dispatch.OTPMaxAttempts
	if otpMaxAttempts <= 0 {
		otpMaxAttempts = 5
	}
	defaultVendor := cfg.Dispatch.DefaultVendor
	if defaultVendor == "" {
		defaultVendor = "pathao"
	}
	refPrefix := cfg.Dispatch.MerchantRefPrefix
	if refPrefix == "" {
		refPrefix = "ORD-"
	}

	st := mustOpenPostgresWithRetry(cfg.Database.DSN(), 60*time.Second)

	rc := rediscache.New(fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port))
	attempts := rediscache.NewRateLimiterWithClient(rc.Client())

	brokers := []string{fmt.Sprintf("%s:%d", cfg.Kafka.Host, cfg.Kafka.Port)}
	producer := kafka.NewProducer(brokers)

	m, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}

	registry := vendors.New(cfg,
		courier.WithRetry(courier.RetryPolicy{
			MaxAttempts: cfg.Dispatch.Retry.MaxAttempts,
			BaseDelay:   time.Duration(cfg.Dispatch.Retry.BaseDelayMS) * time.Millisecond,
			MaxDelay:    time.Duration(cfg.Dispatch.Retry.MaxDelayMS) * time.Millisecond,
			Timeout:     time.Duration(cfg.Dispatch.Retry.TimeoutSeconds) * time.Second,
		}, m.CourierRetry),
		courier.WithIdempotency(rc, idemTTL),
	)

	dir := directory.New(st)
	led := ledger.New(st)

	tracking := shipments.New(st, dir, led, rc, trackingTTL).
		WithPublisher(producer, opts.statusTopic)

	orch := dispatch.New(
		dispatch.Config{
			Enabled:           cfg.Dispatch.AutoDispatchEnabled,
			DefaultVendor:     defaultVendor,
			MerchantRefPrefix: refPrefix,
			OperationTimeout:  opTimeout,
		},
		st, dir, registry,
		geo.NewResolver(geo.Config{
			Policy:        geo.Policy(cfg.Pathao.GeoPolicy),
			DefaultCityID: cfg.Pathao.DefaultCityID,
			DefaultZoneID: cfg.Pathao.DefaultZoneID,
			CacheTTL:      locTTL,
		}, rc),
		phone.New(phone.Policy(cfg.Dispatch.PhonePolicy), cfg.Dispatch.PhonePlaceholder),
		led,
	).WithListener(tracking).WithMetrics(m)

	inh := inhouse.NewDispatcher(st, dir, led, notify.NewKafkaNotifier(producer, otpTopic)).
		WithListener(tracking)
	ver := inhouse.NewVerifier(inhouse.VerifierConfig{MaxAttempts: int64(otpMaxAttempts), Window: otpWindow}, st, led).
		WithLimiter(attempts).
		WithListener(tracking)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &dispatchAPIApp{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
		deps: apiDeps{
			api:        dispatchapi.New(orch, inh, ver, tracking),
			dispatcher: orch,
			observer:   tracking,
			metrics:    m,
			gatherer:   prometheus.DefaultGatherer,
			ping:       st.Ping,
		},
		payments: kafka.NewConsumer(brokers, opts.paymentTopic, opts.consumerGroup),
		statuses: kafka.NewConsumer(brokers, opts.statusTopic, opts.consumerGroup),
		producer: producer,
		redis:    rc,
		closeDB:  st.Close,
	}
}

func apiOptsFromConfig(cfg *config.Config) dispatchAPIOpts {
	opts := dispatchAPIOpts{
		grpcAddr:      cfg.Dispatch.GRPCAddr,
		httpAddr:      cfg.Dispatch.HTTPAddr,
		paymentTopic:  cfg.Kafka.PaymentSucceededTopic,
		statusTopic:   cfg.Kafka.ShipmentStatusTopic,
		consumerGroup: cfg.Kafka.ConsumerGroup,
	}
	if opts.grpcAddr == "" {
		opts.grpcAddr = ":50051"
	}
	opts.grpcDialAddr = opts.grpcAddr
	if opts.httpAddr == "" {
		opts.httpAddr = ":8080"
	}
	if opts.paymentTopic == "" {
		opts.paymentTopic = "payment.succeeded"
	}
	if opts.statusTopic == "" {
		opts.statusTopic = "shipment.status"
	}
	if opts.consumerGroup == "" {
		opts.consumerGroup = "dispatch-api"
	}
	return opts
}

func seconds(v int, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func mustOpenPostgresWithRetry(connString string, wait time.Duration) *pgdispatch.Storage {
	deadline := time.Now().Add(wait)
	var lastErr error
	for time.Now().Before(deadline) {
		st, err := pgdispatch.New(connString)
		if err == nil {
			return st
		}
		lastErr = err
		time.Sleep(1 * time.Second)
	}
	panic(fmt.Sprintf("postgres is not ready after %s: %v", wait, lastErr))
}

func (a *dispatchAPIApp) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.payments != nil {
		_ = a.payments.Close()
	}
	if a.statuses != nil {
		_ = a.statuses.Close()
	}
	if a.producer != nil {
		_ = a.producer.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.closeDB != nil {
		a.closeDB()
	}
}

func (a *dispatchAPIApp) Run() error {
	return runDispatchAPI(a.ctx, a.opts, a.deps, a.payments, a.statuses)
}
