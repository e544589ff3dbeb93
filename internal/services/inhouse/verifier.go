package inhouse

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

const (
	MsgOrderNotFound    = "Order not found"
	MsgNoDeliveryPerson = "No delivery person assigned"
	MsgAlreadyVerified  = "OTP already verified"
	MsgTooManyAttempts  = "Too many attempts"
	MsgInvalidOTP       = "Invalid OTP"
	MsgDeliveryClosed   = "Delivery already closed"
	MsgDelivered        = "Delivery confirmed"
)

type VerifyResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AttemptLimiter counts OTP attempts per order in a fixed window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
	Reset(ctx context.Context, key string) error
}

type VerifierConfig struct {
	// MaxAttempts per Window; 0 disables limiting.
	MaxAttempts int64
	Window      time.Duration
}

// Verifier confirms an in-house delivery when the customer's OTP matches.
type Verifier struct {
	cfg      VerifierConfig
	repo     Repository
	ledger   Ledger
	limiter  AttemptLimiter
	listener ChangeListener

	now func() time.Time
}

func NewVerifier(cfg VerifierConfig, repo Repository, l Ledger) *Verifier {
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	return &Verifier{cfg: cfg, repo: repo, ledger: l, now: time.Now}
}

func (v *Verifier) WithLimiter(l AttemptLimiter) *Verifier {
	v.limiter = l
	return v
}

func (v *Verifier) WithListener(l ChangeListener) *Verifier {
	v.listener = l
	return v
}

// отказ внутри транзакции, который надо вернуть как VerifyResult, а не как ошибку
type rejection string

func (r rejection) Error() string { return string(r) }

// Verify checks otp against the order. Expected failures (wrong code, already verified,
// no assignment) come back as an unsuccessful result; only infrastructure failures are errors.
func (v *Verifier) Verify(ctx context.Context, orderID int64, otp string) (VerifyResult, error) {
	o, err := v.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return reject(MsgOrderNotFound), nil
		}
		return VerifyResult{}, err
	}
	if o.DeliveryPersonID == nil || o.DeliveryOTP == nil {
		return reject(MsgNoDeliveryPerson), nil
	}
	if o.DeliveryOTPVerified {
		return reject(MsgAlreadyVerified), nil
	}

	key := fmt.Sprintf("otp:attempts:%d", orderID)
	if !v.allow(ctx, key) {
		slog.Warn("otp attempts exceeded", "order_id", orderID)
		return reject(MsgTooManyAttempts), nil
	}

	if subtle.ConstantTimeCompare([]byte(otp), []byte(*o.DeliveryOTP)) != 1 {
		slog.Info("otp mismatch", "order_id", orderID)
		return reject(MsgInvalidOTP), nil
	}

	now := v.now().UTC()
	var saved *models.Order
	var transitioned bool
	err = v.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		cur, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if cur.DeliveryOTPVerified {
			return rejection(MsgAlreadyVerified)
		}
		// переназначили между чтением и транзакцией
		if cur.DeliveryPersonID == nil || cur.DeliveryOTP == nil ||
			subtle.ConstantTimeCompare([]byte(otp), []byte(*cur.DeliveryOTP)) != 1 {
			return rejection(MsgInvalidOTP)
		}

		cur.DeliveryOTPVerified = true
		cur.UpdatedAt = now

		switch {
		case cur.CourierStatus == models.CourierStatusDelivered:
			// already delivered via status update; the load was released there
		case cur.CourierStatus.CanTransitionTo(models.CourierStatusDelivered):
			transitioned = true
			cur.CourierStatus = models.CourierStatusDelivered
			cur.Status = models.OrderStatusDelivered
		default:
			return rejection(MsgDeliveryClosed)
		}

		if err := tx.SaveOrderDispatch(ctx, cur); err != nil {
			return err
		}
		if transitioned {
			ev := &models.TrackingEvent{
				OrderID:   orderID,
				Status:    models.CourierStatusDelivered,
				Details:   "Delivered, OTP confirmed by customer",
				Location:  models.LocationCustomer,
				Timestamp: now,
			}
			if cur.CourierID != nil {
				ev.CourierID = *cur.CourierID
			}
			if cur.CourierTrackingID != nil {
				ev.TrackingID = *cur.CourierTrackingID
			}
			if err := v.ledger.Append(ctx, tx, ev); err != nil {
				return err
			}
			if err := tx.AdjustDeliveryPersonLoad(ctx, *cur.DeliveryPersonID, -1, 0); err != nil {
				return err
			}
		}
		saved = cur
		return nil
	})
	if err != nil {
		var r rejection
		if errors.As(err, &r) {
			return reject(string(r)), nil
		}
		return VerifyResult{}, err
	}

	v.resetAttempts(ctx, key)
	slog.Info("delivery confirmed by otp", "order_id", orderID)
	if transitioned && v.listener != nil {
		v.listener.ShipmentChanged(ctx, changed(saved, now))
	}
	return VerifyResult{Success: true, Message: MsgDelivered}, nil
}

// allow fails open: a redis outage must not lock customers out.
func (v *Verifier) allow(ctx context.Context, key string) bool {
	if v.limiter == nil || v.cfg.MaxAttempts <= 0 {
		return true
	}
	ok, _, err := v.limiter.Allow(ctx, key, v.cfg.MaxAttempts, v.cfg.Window)
	if err != nil {
		slog.Warn("otp limiter unavailable", "key", key, "error", err.Error())
		return true
	}
	return ok
}

func (v *Verifier) resetAttempts(ctx context.Context, key string) {
	if v.limiter == nil || v.cfg.MaxAttempts <= 0 {
		return
	}
	if err := v.limiter.Reset(ctx, key); err != nil {
		slog.Warn("otp limiter reset failed", "key", key, "error", err.Error())
	}
}

func reject(msg string) VerifyResult {
	return VerifyResult{Success: false, Message: msg}
}
