package pgdispatch

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
)

// GetOrCreateCourier делает upsert по уникальному name, конкурентные вызовы сходятся к одной строке.
// Канал и активность существующей записи не меняются.
func (q *queries) GetOrCreateCourier(ctx context.Context, name string, channel models.ChannelType) (*models.Courier, error) {
	var (
		c  models.Courier
		ch string
	)
	err := q.q.QueryRow(ctx, `
INSERT INTO couriers (name, channel, is_active, created_at)
VALUES ($1, $2, TRUE, now())
ON CONFLICT (name)
DO UPDATE SET name = couriers.name
RETURNING id, name, channel, is_active, created_at
`, name, string(channel)).Scan(&c.ID, &c.Name, &ch, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "upsert courier")
	}
	c.Channel = models.ChannelType(ch)
	return &c, nil
}

func (q *queries) GetCourier(ctx context.Context, courierID int64) (*models.Courier, error) {
	var (
		c  models.Courier
		ch string
	)
	err := q.q.QueryRow(ctx, `SELECT id, name, channel, is_active, created_at FROM couriers WHERE id = $1`, courierID).
		Scan(&c.ID, &c.Name, &ch, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get courier", "courier %d not found", courierID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select courier")
	}
	c.Channel = models.ChannelType(ch)
	return &c, nil
}

const personColumns = `id, name, phone, email, status, current_orders, total_orders, rating`

func scanPerson(row pgx.Row) (*models.DeliveryPerson, error) {
	var (
		p      models.DeliveryPerson
		status string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &status, &p.CurrentOrders, &p.TotalOrders, &p.Rating); err != nil {
		return nil, err
	}
	p.Status = models.DeliveryPersonStatus(status)
	return &p, nil
}

func (q *queries) GetDeliveryPerson(ctx context.Context, personID int64) (*models.DeliveryPerson, error) {
	p, err := scanPerson(q.q.QueryRow(ctx, `SELECT `+personColumns+` FROM delivery_persons WHERE id = $1`, personID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get delivery person", "delivery person %d not found", personID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select delivery person")
	}
	return p, nil
}

func (q *queries) GetDeliveryPersonForUpdate(ctx context.Context, personID int64) (*models.DeliveryPerson, error) {
	p, err := scanPerson(q.q.QueryRow(ctx, `SELECT `+personColumns+` FROM delivery_persons WHERE id = $1 FOR UPDATE`, personID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get delivery person", "delivery person %d not found", personID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select delivery person for update")
	}
	return p, nil
}

func (q *queries) AdjustDeliveryPersonLoad(ctx context.Context, personID int64, currentDelta, totalDelta int) error {
	tag, err := q.q.Exec(ctx, `
UPDATE delivery_persons
SET
  current_orders = GREATEST(current_orders + $2, 0),
  total_orders = total_orders + $3
WHERE id = $1
`, personID, currentDelta, totalDelta)
	if err != nil {
		return errors.Wrap(err, "update delivery person load")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFoundf("adjust delivery person", "delivery person %d not found", personID)
	}
	return nil
}

func (q *queries) CountOrdersForDeliveryPerson(ctx context.Context, personID int64) (int, error) {
	var n int
	err := q.q.QueryRow(ctx, `SELECT count(*) FROM orders WHERE delivery_person_id = $1`, personID).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "count orders for delivery person")
	}
	return n, nil
}

func (q *queries) DeleteDeliveryPerson(ctx context.Context, personID int64) error {
	tag, err := q.q.Exec(ctx, `DELETE FROM delivery_persons WHERE id = $1`, personID)
	if err != nil {
		return errors.Wrap(err, "delete delivery person")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFoundf("delete delivery person", "delivery person %d not found", personID)
	}
	return nil
}

func (q *queries) CreateDeliveryPerson(ctx context.Context, p *models.DeliveryPerson) error {
	if p.Status == "" {
		p.Status = models.DeliveryPersonActive
	}
	err := q.q.QueryRow(ctx, `
INSERT INTO delivery_persons (name, phone, email, status, current_orders, total_orders, rating)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id
`, p.Name, p.Phone, p.Email, string(p.Status), p.CurrentOrders, p.TotalOrders, p.Rating).Scan(&p.ID)
	return errors.Wrap(err, "insert delivery person")
}
