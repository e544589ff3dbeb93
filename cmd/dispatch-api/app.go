package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/BearBump/DispatchBox/internal/api/dispatchapi"
	"github.com/BearBump/DispatchBox/internal/broker/kafka"
	"github.com/BearBump/DispatchBox/internal/broker/messages"
	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/metrics"
	"github.com/BearBump/DispatchBox/internal/pb/dispatch_api"
	"github.com/BearBump/DispatchBox/internal/services/dispatch"
)

type dispatchAPIOpts struct {
	grpcAddr     string
	httpAddr     string
	grpcDialAddr string
	swaggerPath  string

	paymentTopic  string
	statusTopic   string
	consumerGroup string

	// applyTimeout ограничивает повторы ApplyObservation для одного сообщения.
	applyTimeout time.Duration

	onListen func(grpcAddr, httpAddr string)
}

type kafkaConsumer interface {
	Consume(ctx context.Context, handler kafka.Handler) error
}

type paymentDispatcher interface {
	Dispatch(ctx context.Context, orderID int64, vendor string, opts dispatch.Options) dispatch.Result
}

type observationApplier interface {
	ApplyObservation(ctx context.Context, msg messages.ShipmentStatusObserved) error
}

// apiDeps is everything runDispatchAPI serves; bootstrap fills it from config.
type apiDeps struct {
	api        *dispatchapi.DispatchAPI
	dispatcher paymentDispatcher
	observer   observationApplier
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	ping       func(ctx context.Context) error
}

func runDispatchAPI(ctx context.Context, opts dispatchAPIOpts, deps apiDeps, payments, statuses kafkaConsumer) error {
	if opts.swaggerPath != "" {
		if _, err := os.Stat(opts.swaggerPath); os.IsNotExist(err) {
			return fmt.Errorf("swagger file not found: %s", opts.swaggerPath)
		}
	}

	grpcLis, err := net.Listen("tcp", opts.grpcAddr)
	if err != nil {
		return err
	}
	httpLis, err := net.Listen("tcp", opts.httpAddr)
	if err != nil {
		_ = grpcLis.Close()
		return err
	}

	if opts.onListen != nil {
		opts.onListen(grpcLis.Addr().String(), httpLis.Addr().String())
	}

	dialAddr := opts.grpcDialAddr
	if dialAddr == "" || strings.HasSuffix(dialAddr, ":0") {
		dialAddr = grpcLis.Addr().String()
	}

	grpcErr := make(chan error, 1)
	go func() {
		grpcErr <- runGRPCServer(ctx, grpcLis, deps.api)
	}()

	httpErr := make(chan error, 1)
	go func() {
		httpErr <- runGatewayServer(ctx, httpLis, dialAddr, opts, deps)
	}()

	if payments != nil {
		go runConsumer(ctx, opts.paymentTopic, opts.consumerGroup, payments, paymentHandler(deps.dispatcher))
	}
	if statuses != nil {
		go runConsumer(ctx, opts.statusTopic, opts.consumerGroup, statuses, statusHandler(deps.observer, opts.applyTimeout))
	}

	var srvErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case srvErr = <-grpcErr:
	case srvErr = <-httpErr:
	}
	// при остановке серверы возвращают nil раньше, чем сработает ctx.Done
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return srvErr
}

func runGRPCServer(ctx context.Context, lis net.Listener, api *dispatchapi.DispatchAPI) error {
	s := grpc.NewServer()
	dispatch_api.RegisterDispatchServiceServer(s, api)

	go func() {
		<-ctx.Done()
		stopped := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			s.Stop()
		}
		_ = lis.Close()
	}()

	slog.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.Serve(lis)
}

func runGatewayServer(ctx context.Context, lis net.Listener, grpcAddr string, opts dispatchAPIOpts, deps apiDeps) error {
	gw := dispatchapi.NewGatewayMux()
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := dispatch_api.RegisterDispatchServiceHandlerFromEndpoint(ctx, gw, grpcAddr, dialOpts); err != nil {
		return err
	}

	srv := &http.Server{Handler: newRouter(opts, deps, gw), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP gateway listening", "addr", lis.Addr().String())
	err := srv.Serve(lis)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func newRouter(opts dispatchAPIOpts, deps apiDeps, gw http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(dispatchapi.Instrument(deps.metrics))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := deps.ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db not ready"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	gatherer := deps.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if opts.swaggerPath != "" {
		r.Get("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, opts.swaggerPath)
		})
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger.json"),
		))
	}

	dispatchapi.Routes(r, gw)
	return r
}

// runConsumer перезапускает чтение после ошибок брокера, пока жив ctx.
func runConsumer(ctx context.Context, topic, group string, c kafkaConsumer, h kafka.Handler) {
	slog.Info("kafka consumer started", "topic", topic, "group", group)
	for {
		err := c.Consume(ctx, h)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Error("kafka consumer failed", "topic", topic, "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

// paymentHandler always commits: a failed dispatch is logged and retried by hand or by the
// next payment event, never by redelivery.
func paymentHandler(d paymentDispatcher) kafka.Handler {
	return func(ctx context.Context, _ []byte, value []byte) error {
		var m messages.PaymentSucceeded
		if err := json.Unmarshal(value, &m); err != nil {
			slog.Error("bad payment.succeeded message", "error", err.Error())
			return nil
		}
		res := d.Dispatch(ctx, m.OrderID, m.Vendor, dispatch.Options{Force: m.Force})
		if res.Err != nil {
			slog.Error("auto dispatch failed",
				"order_id", m.OrderID, "transaction_id", m.TransactionID, "kind", string(res.Kind()), "error", res.Err.Error())
			return nil
		}
		slog.Info("auto dispatch finished", "order_id", m.OrderID, "outcome", string(res.Outcome), "reason", res.Reason)
		return nil
	}
}

func statusHandler(a observationApplier, timeout time.Duration) kafka.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return func(ctx context.Context, _ []byte, value []byte) error {
		var env messages.Envelope
		if err := json.Unmarshal(value, &env); err != nil {
			slog.Error("bad shipment.status message", "error", err.Error())
			return nil
		}
		// status_changed публикуем сами, пропускаем
		if env.Kind != messages.KindStatusObserved || env.Observed == nil {
			return nil
		}
		obs := *env.Observed

		bo := backoff.NewExponentialBackOff()
		bo.MaxElapsedTime = timeout
		err := backoff.Retry(func() error {
			err := a.ApplyObservation(ctx, obs)
			if err == nil {
				return nil
			}
			switch errs.KindOf(err) {
			case errs.KindValidation, errs.KindNotFound, errs.KindState:
				return backoff.Permanent(err)
			}
			return err
		}, backoff.WithContext(bo, ctx))
		if err != nil {
			// чек остаётся в аренде и после её истечения воркер спросит курьера снова
			slog.Error("apply shipment observation failed",
				"order_id", obs.OrderID, "vendor", obs.Vendor, "error", err.Error())
		}
		return nil
	}
}
