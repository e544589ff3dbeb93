package pgdispatch

import (
	"context"

	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/models"
)

// AppendTrackingEvent: журнал только дописывается, UPDATE/DELETE для tracking_events нет.
func (q *queries) AppendTrackingEvent(ctx context.Context, e *models.TrackingEvent) error {
	err := q.q.QueryRow(ctx, `
INSERT INTO tracking_events (order_id, courier_id, tracking_id, status, details, location, event_time)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id
`, e.OrderID, e.CourierID, e.TrackingID, string(e.Status), e.Details, e.Location, e.Timestamp.UTC()).Scan(&e.ID)
	if err != nil {
		return errors.Wrap(err, "insert tracking event")
	}
	return nil
}

func (q *queries) ListTrackingEvents(ctx context.Context, orderID int64) ([]*models.TrackingEvent, error) {
	rows, err := q.q.Query(ctx, `
SELECT id, order_id, courier_id, tracking_id, status, details, location, event_time
FROM tracking_events
WHERE order_id = $1
ORDER BY event_time ASC, id ASC
`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "select events")
	}
	defer rows.Close()

	var out []*models.TrackingEvent
	for rows.Next() {
		var (
			e      models.TrackingEvent
			status string
		)
		if err := rows.Scan(&e.ID, &e.OrderID, &e.CourierID, &e.TrackingID, &status, &e.Details, &e.Location, &e.Timestamp); err != nil {
			return nil, errors.Wrap(err, "scan event")
		}
		e.Status = models.CourierStatus(status)
		out = append(out, &e)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "rows")
	}
	return out, nil
}
