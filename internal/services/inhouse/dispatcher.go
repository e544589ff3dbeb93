package inhouse

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/notify"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

const otpDigits = 6

// Dispatcher assigns orders to delivery staff. Unlike automatic dispatch every failure is
// returned to the caller.
type Dispatcher struct {
	repo     Repository
	dir      Directory
	ledger   Ledger
	notifier notify.Notifier
	listener ChangeListener

	now    func() time.Time
	newOTP func() (string, error)
}

func NewDispatcher(repo Repository, dir Directory, l Ledger, n notify.Notifier) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		dir:      dir,
		ledger:   l,
		notifier: n,
		now:      time.Now,
		newOTP:   generateOTP,
	}
}

func (d *Dispatcher) WithListener(l ChangeListener) *Dispatcher {
	d.listener = l
	return d
}

// Assign hands the order to a delivery person and issues a fresh OTP. A previous assignee's
// load is not released.
func (d *Dispatcher) Assign(ctx context.Context, orderID, personID int64) (*models.Order, error) {
	const op = "assign delivery person"

	person, err := d.repo.GetDeliveryPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person.Status == models.DeliveryPersonInactive {
		slog.Warn("assigning inactive delivery person", "order_id", orderID, "delivery_person_id", personID)
	}

	c, err := d.dir.Internal(ctx)
	if err != nil {
		return nil, err
	}

	otp, err := d.newOTP()
	if err != nil {
		return nil, errors.Wrap(err, "generate otp")
	}

	now := d.now().UTC()
	trackingID := fmt.Sprintf("INT-%d-%d", orderID, personID)

	var saved *models.Order
	err = d.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status.Terminal() {
			return errs.Statef(op, "order %d is %s", orderID, o.Status)
		}
		// повторное назначение тому же доставщику нагрузку не меняет
		same := o.DeliveryPersonID != nil && *o.DeliveryPersonID == personID
		if o.DeliveryPersonID != nil && !same {
			slog.Info("order reassigned", "order_id", orderID,
				"from_delivery_person_id", *o.DeliveryPersonID, "to_delivery_person_id", personID)
		}

		o.DeliveryPersonID = &personID
		o.CourierID = &c.ID
		o.CourierOrderID = &trackingID
		o.CourierTrackingID = &trackingID
		o.CourierStatus = models.CourierStatusAssigned
		o.Status = models.OrderStatusProcessing
		o.DeliveryOTP = &otp
		o.DeliveryOTPVerified = false
		o.DeliveryOTPSentAt = &now
		o.UpdatedAt = now
		if err := tx.SaveOrderDispatch(ctx, o); err != nil {
			return err
		}

		if !same {
			if err := tx.AdjustDeliveryPersonLoad(ctx, personID, 1, 1); err != nil {
				return err
			}
		}

		if err := d.ledger.Append(ctx, tx, &models.TrackingEvent{
			OrderID:    orderID,
			CourierID:  c.ID,
			TrackingID: trackingID,
			Status:     models.CourierStatusAssigned,
			Details:    "Assigned to " + person.Name,
			Location:   models.LocationMerchant,
			Timestamp:  now,
		}); err != nil {
			return err
		}
		saved = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order assigned", "order_id", orderID, "delivery_person_id", personID, "tracking_id", trackingID)

	d.sendOTP(ctx, saved, otp)
	if d.listener != nil {
		d.listener.ShipmentChanged(ctx, changed(saved, now))
	}
	return saved, nil
}

// sendOTP is best effort: the assignment is already committed.
func (d *Dispatcher) sendOTP(ctx context.Context, o *models.Order, otp string) {
	if d.notifier == nil {
		return
	}
	cust, err := d.repo.GetCustomer(ctx, o.CustomerID)
	if err != nil {
		slog.Warn("otp not sent: customer lookup failed", "order_id", o.ID, "error", err.Error())
		return
	}
	err = d.notifier.SendOTP(ctx, cust.Email, notify.OTPMessage{
		OrderID:      o.ID,
		OTP:          otp,
		CustomerName: cust.Name,
	})
	if err != nil {
		slog.Warn("otp not sent", "order_id", o.ID, "error", err.Error())
	}
}

// UpdateStatus moves an assigned order along the courier state machine. A terminal status
// releases the delivery person.
func (d *Dispatcher) UpdateStatus(ctx context.Context, orderID int64, status, details string) (*models.Order, error) {
	const op = "update delivery status"

	next, ok := models.ParseCourierStatus(status)
	if !ok {
		return nil, errs.Validationf(op, "unknown status %q", status)
	}

	internal, err := d.dir.Internal(ctx)
	if err != nil {
		return nil, err
	}

	now := d.now().UTC()
	var saved *models.Order
	err = d.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o.DeliveryPersonID == nil {
			return errs.Statef(op, "order %d has no delivery person assigned", orderID)
		}
		if !o.CourierStatus.CanTransitionTo(next) {
			return errs.Statef(op, "order %d cannot move from %s to %s", orderID, o.CourierStatus, next)
		}

		o.CourierStatus = next
		o.Status = next.OrderStatus()
		o.UpdatedAt = now
		if err := tx.SaveOrderDispatch(ctx, o); err != nil {
			return err
		}

		ev := &models.TrackingEvent{
			OrderID:   orderID,
			CourierID: internal.ID,
			Status:    next,
			Details:   details,
			Timestamp: now,
		}
		if o.CourierID != nil {
			ev.CourierID = *o.CourierID
		}
		if o.CourierTrackingID != nil {
			ev.TrackingID = *o.CourierTrackingID
		}
		if err := d.ledger.Append(ctx, tx, ev); err != nil {
			return err
		}

		if next.Terminal() {
			if err := tx.AdjustDeliveryPersonLoad(ctx, *o.DeliveryPersonID, -1, 0); err != nil {
				return err
			}
		}
		saved = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("delivery status updated", "order_id", orderID, "status", string(next))
	if d.listener != nil {
		d.listener.ShipmentChanged(ctx, changed(saved, now))
	}
	return saved, nil
}

// DeletePerson removes a delivery person who has never been assigned an order.
func (d *Dispatcher) DeletePerson(ctx context.Context, personID int64) error {
	const op = "delete delivery person"
	return d.repo.WithTx(ctx, func(ctx context.Context, tx dispatchtx.Repository) error {
		if _, err := tx.GetDeliveryPersonForUpdate(ctx, personID); err != nil {
			return err
		}
		n, err := tx.CountOrdersForDeliveryPerson(ctx, personID)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Statef(op, "delivery person %d has %d assigned orders", personID, n)
		}
		return tx.DeleteDeliveryPerson(ctx, personID)
	})
}

var otpMax = big.NewInt(1_000_000)

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
