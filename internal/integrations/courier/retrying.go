package courier

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/BearBump/DispatchBox/internal/errs"
)

type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Timeout bounds a single vendor call.
	Timeout time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
		Timeout:     15 * time.Second,
	}
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	def := DefaultRetryPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = def.BaseDelay
	}
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}
	if p.Timeout <= 0 {
		p.Timeout = def.Timeout
	}
	return p
}

// Retrying retries retryable vendor failures with exponential backoff and bounds each
// attempt with a hard timeout.
type Retrying struct {
	next    Adapter
	policy  RetryPolicy
	onRetry func(vendor string)
}

// WithRetry returns a Decorator; onRetry (optional) is called before every retry.
func WithRetry(policy RetryPolicy, onRetry func(vendor string)) Decorator {
	return func(a Adapter) Adapter {
		return NewRetrying(a, policy, onRetry)
	}
}

func NewRetrying(next Adapter, policy RetryPolicy, onRetry func(vendor string)) *Retrying {
	return &Retrying{next: next, policy: policy.withDefaults(), onRetry: onRetry}
}

func (r *Retrying) Code() string { return r.next.Code() }

func (r *Retrying) CreateShipment(ctx context.Context, req ShipmentRequest) (ShipmentResult, error) {
	var res ShipmentResult
	attempt := 0

	op := func() error {
		attempt++
		callCtx, cancel := context.WithTimeout(ctx, r.policy.Timeout)
		defer cancel()

		out, err := r.next.CreateShipment(callCtx, req)
		if err == nil {
			res = out
			return nil
		}
		if !errs.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.BaseDelay
	b.MaxInterval = r.policy.MaxDelay
	b.MaxElapsedTime = 0

	bo := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.policy.MaxAttempts-1)), ctx)
	notify := func(err error, d time.Duration) {
		slog.Warn("courier call retry",
			"vendor", r.next.Code(),
			"merchant_order_id", req.MerchantOrderID,
			"attempt", attempt,
			"delay", d.String(),
			"error", err.Error(),
		)
		if r.onRetry != nil {
			r.onRetry(r.next.Code())
		}
	}

	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return ShipmentResult{}, err
	}
	return res, nil
}
