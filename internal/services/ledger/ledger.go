// Package ledger is the append-only audit trail of shipment status events.
package ledger

import (
	"context"
	"time"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
)

// Writer is usually the transaction the status change itself is written in.
type Writer interface {
	AppendTrackingEvent(ctx context.Context, e *models.TrackingEvent) error
}

type Reader interface {
	ListTrackingEvents(ctx context.Context, orderID int64) ([]*models.TrackingEvent, error)
}

type Ledger struct {
	r   Reader
	now func() time.Time
}

func New(r Reader) *Ledger {
	return &Ledger{r: r, now: time.Now}
}

// WithClock подменяет часы (тесты).
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Append validates e, stamps it when Timestamp is zero, and writes it through w.
func (l *Ledger) Append(ctx context.Context, w Writer, e *models.TrackingEvent) error {
	const op = "ledger append"
	if e.OrderID <= 0 {
		return errs.Validationf(op, "order id is required")
	}
	if e.CourierID <= 0 {
		return errs.Validationf(op, "courier id is required")
	}
	if !e.Status.Valid() {
		return errs.Validationf(op, "invalid status %q", e.Status)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now().UTC()
	}
	return w.AppendTrackingEvent(ctx, e)
}

// History returns the order's events oldest first.
func (l *Ledger) History(ctx context.Context, orderID int64) ([]*models.TrackingEvent, error) {
	if orderID <= 0 {
		return nil, errs.Validationf("ledger history", "order id is required")
	}
	return l.r.ListTrackingEvents(ctx, orderID)
}
