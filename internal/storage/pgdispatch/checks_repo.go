package pgdispatch

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/models"
)

func (q *queries) UpsertShipmentCheck(ctx context.Context, c *models.ShipmentCheck) error {
	_, err := q.q.Exec(ctx, `
INSERT INTO shipment_checks (
  order_id, courier_name, consignment_id, courier_status,
  next_check_at, last_checked_at, check_fail_count, last_error, created_at, updated_at
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8, now(), now())
ON CONFLICT (order_id) DO UPDATE SET
  courier_name = EXCLUDED.courier_name,
  consignment_id = EXCLUDED.consignment_id,
  courier_status = EXCLUDED.courier_status,
  next_check_at = EXCLUDED.next_check_at,
  last_checked_at = EXCLUDED.last_checked_at,
  check_fail_count = EXCLUDED.check_fail_count,
  last_error = EXCLUDED.last_error,
  updated_at = now()
`, c.OrderID, c.CourierName, c.ConsignmentID, string(c.CourierStatus),
		c.NextCheckAt.UTC(), c.LastCheckedAt, c.CheckFailCount, c.LastError)
	if err != nil {
		return errors.Wrap(err, "upsert shipment check")
	}
	return nil
}

func (q *queries) RecordShipmentCheckFailure(ctx context.Context, orderID int64, checkedAt time.Time, errMsg string, nextCheckAt time.Time) error {
	_, err := q.q.Exec(ctx, `
UPDATE shipment_checks
SET
  last_checked_at = $2,
  check_fail_count = check_fail_count + 1,
  last_error = $3,
  next_check_at = $4,
  updated_at = now()
WHERE order_id = $1
`, orderID, checkedAt.UTC(), errMsg, nextCheckAt.UTC())
	if err != nil {
		return errors.Wrap(err, "update shipment check (error)")
	}
	return nil
}

func (q *queries) FinishShipmentCheck(ctx context.Context, orderID int64) error {
	_, err := q.q.Exec(ctx, `DELETE FROM shipment_checks WHERE order_id = $1`, orderID)
	return errors.Wrap(err, "delete shipment check")
}

const checkColumns = `
  order_id, courier_name, consignment_id, courier_status,
  next_check_at, last_checked_at, check_fail_count, last_error`

func scanCheck(row pgx.Row) (*models.ShipmentCheck, error) {
	var (
		c      models.ShipmentCheck
		status string
	)
	if err := row.Scan(&c.OrderID, &c.CourierName, &c.ConsignmentID, &status,
		&c.NextCheckAt, &c.LastCheckedAt, &c.CheckFailCount, &c.LastError); err != nil {
		return nil, err
	}
	c.CourierStatus = models.CourierStatus(status)
	return &c, nil
}

func (q *queries) GetShipmentCheck(ctx context.Context, orderID int64) (*models.ShipmentCheck, bool, error) {
	c, err := scanCheck(q.q.QueryRow(ctx, `SELECT`+checkColumns+` FROM shipment_checks WHERE order_id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "select shipment check")
	}
	return c, true, nil
}

// ClaimDueShipmentChecks выбирает пачку отправлений, готовых к проверке статуса, и
// "бронирует" их на время lease через SELECT ... FOR UPDATE SKIP LOCKED, чтобы параллельные
// воркеры не взяли их повторно.
func (s *Storage) ClaimDueShipmentChecks(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*models.ShipmentCheck, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `SELECT`+checkColumns+`
FROM shipment_checks
WHERE next_check_at <= $1
ORDER BY next_check_at ASC
LIMIT $2
FOR UPDATE SKIP LOCKED
`, now.UTC(), limit)
	if err != nil {
		return nil, errors.Wrap(err, "select due shipment checks")
	}

	var picked []*models.ShipmentCheck
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scan due shipment check")
		}
		picked = append(picked, c)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "rows")
	}

	leaseUntil := now.UTC().Add(lease)
	for _, c := range picked {
		_, err := tx.Exec(ctx, `UPDATE shipment_checks SET next_check_at = $2, updated_at = now() WHERE order_id = $1`, c.OrderID, leaseUntil)
		if err != nil {
			return nil, errors.Wrap(err, "lease shipment check")
		}
		c.NextCheckAt = leaseUntil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit tx")
	}
	return picked, nil
}
