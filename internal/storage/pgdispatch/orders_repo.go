package pgdispatch

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
)

const orderColumns = `
  id, customer_id, status,
  courier_id, courier_order_id, courier_tracking_id, courier_status,
  delivery_person_id, delivery_otp, delivery_otp_verified, delivery_otp_sent_at,
  shipping_address, shipping_city, shipping_post_code, shipping_phone,
  shipping_area, shipping_landmark, shipping_instructions,
  total_poisha, payment_method, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		o             models.Order
		status        string
		courierStatus string
		total         int64
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &status,
		&o.CourierID, &o.CourierOrderID, &o.CourierTrackingID, &courierStatus,
		&o.DeliveryPersonID, &o.DeliveryOTP, &o.DeliveryOTPVerified, &o.DeliveryOTPSentAt,
		&o.Shipping.Address, &o.Shipping.City, &o.Shipping.PostCode, &o.Shipping.Phone,
		&o.Shipping.Area, &o.Shipping.Landmark, &o.Shipping.Instructions,
		&total, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = models.OrderStatus(status)
	o.CourierStatus = models.CourierStatus(courierStatus)
	o.Total = models.Money(total)
	return &o, nil
}

func (q *queries) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	o, err := scanOrder(q.q.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get order", "order %d not found", orderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select order")
	}
	return o, nil
}

func (q *queries) GetOrderForUpdate(ctx context.Context, orderID int64) (*models.Order, error) {
	o, err := scanOrder(q.q.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get order", "order %d not found", orderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select order for update")
	}
	return o, nil
}

func (q *queries) SaveOrderDispatch(ctx context.Context, o *models.Order) error {
	tag, err := q.q.Exec(ctx, `
UPDATE orders
SET
  status = $2,
  courier_id = $3,
  courier_order_id = $4,
  courier_tracking_id = $5,
  courier_status = $6,
  delivery_person_id = $7,
  delivery_otp = $8,
  delivery_otp_verified = $9,
  delivery_otp_sent_at = $10,
  updated_at = $11
WHERE id = $1
`, o.ID, string(o.Status), o.CourierID, o.CourierOrderID, o.CourierTrackingID, string(o.CourierStatus),
		o.DeliveryPersonID, o.DeliveryOTP, o.DeliveryOTPVerified, o.DeliveryOTPSentAt, o.UpdatedAt.UTC())
	if err != nil {
		return errors.Wrap(err, "update order dispatch")
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFoundf("save order", "order %d not found", o.ID)
	}
	return nil
}

func (q *queries) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	var c models.Customer
	err := q.q.QueryRow(ctx, `SELECT id, name, email, phone FROM customers WHERE id = $1`, customerID).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.NotFoundf("get customer", "customer %d not found", customerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "select customer")
	}
	return &c, nil
}

func (q *queries) ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := q.q.Query(ctx, `
SELECT id, order_id, product_id, name, quantity, unit_weight_kg
FROM order_items
WHERE order_id = $1
ORDER BY id
`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "select order items")
	}
	defer rows.Close()

	var out []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.UnitWeightKg); err != nil {
			return nil, errors.Wrap(err, "scan order item")
		}
		out = append(out, it)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "rows")
	}
	return out, nil
}

// CreateOrder is used by seeding and tests; orders are normally owned by the storefront.
func (q *queries) CreateOrder(ctx context.Context, o *models.Order, items []models.OrderItem) error {
	now := time.Now().UTC()
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.CourierStatus == "" {
		o.CourierStatus = models.CourierStatusPending
	}
	err := q.q.QueryRow(ctx, `
INSERT INTO orders (
  customer_id, status, courier_status,
  shipping_address, shipping_city, shipping_post_code, shipping_phone,
  shipping_area, shipping_landmark, shipping_instructions,
  total_poisha, payment_method, created_at, updated_at
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$13)
RETURNING id
`, o.CustomerID, string(o.Status), string(o.CourierStatus),
		o.Shipping.Address, o.Shipping.City, o.Shipping.PostCode, o.Shipping.Phone,
		o.Shipping.Area, o.Shipping.Landmark, o.Shipping.Instructions,
		int64(o.Total), o.PaymentMethod, now).Scan(&o.ID)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	o.CreatedAt, o.UpdatedAt = now, now

	for i := range items {
		items[i].OrderID = o.ID
		err := q.q.QueryRow(ctx, `
INSERT INTO order_items (order_id, product_id, name, quantity, unit_weight_kg)
VALUES ($1,$2,$3,$4,$5)
RETURNING id
`, o.ID, items[i].ProductID, items[i].Name, items[i].Quantity, items[i].UnitWeightKg).Scan(&items[i].ID)
		if err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}
	return nil
}

func (q *queries) CreateCustomer(ctx context.Context, c *models.Customer) error {
	err := q.q.QueryRow(ctx, `INSERT INTO customers (name, email, phone) VALUES ($1,$2,$3) RETURNING id`,
		c.Name, c.Email, c.Phone).Scan(&c.ID)
	return errors.Wrap(err, "insert customer")
}
