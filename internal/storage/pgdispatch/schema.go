package pgdispatch

import (
	"context"

	"github.com/pkg/errors"
)

// Таблицы orders/customers/order_items принадлежат сервису заказов; здесь создаются на
// случай пустой базы (локальный запуск, тесты).
func (s *Storage) initSchema(ctx context.Context) error {
	stmts := []string{
		`
CREATE TABLE IF NOT EXISTS customers (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT ''
)`,
		`
CREATE TABLE IF NOT EXISTS couriers (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  channel TEXT NOT NULL DEFAULT 'external',
  is_active BOOLEAN NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`
CREATE TABLE IF NOT EXISTS delivery_persons (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'active',
  current_orders INT NOT NULL DEFAULT 0 CHECK (current_orders >= 0),
  total_orders INT NOT NULL DEFAULT 0,
  rating DOUBLE PRECISION NOT NULL DEFAULT 0
)`,
		`
CREATE TABLE IF NOT EXISTS orders (
  id BIGSERIAL PRIMARY KEY,
  customer_id BIGINT NOT NULL REFERENCES customers(id),
  status TEXT NOT NULL DEFAULT 'pending',
  courier_id BIGINT NULL REFERENCES couriers(id),
  courier_order_id TEXT NULL,
  courier_tracking_id TEXT NULL,
  courier_status TEXT NOT NULL DEFAULT 'pending',
  delivery_person_id BIGINT NULL REFERENCES delivery_persons(id),
  delivery_otp TEXT NULL,
  delivery_otp_verified BOOLEAN NOT NULL DEFAULT FALSE,
  delivery_otp_sent_at TIMESTAMPTZ NULL,
  shipping_address TEXT NOT NULL DEFAULT '',
  shipping_city TEXT NOT NULL DEFAULT '',
  shipping_post_code TEXT NOT NULL DEFAULT '',
  shipping_phone TEXT NOT NULL DEFAULT '',
  shipping_area TEXT NOT NULL DEFAULT '',
  shipping_landmark TEXT NOT NULL DEFAULT '',
  shipping_instructions TEXT NOT NULL DEFAULT '',
  total_poisha BIGINT NOT NULL DEFAULT 0,
  payment_method TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_delivery_person_id ON orders(delivery_person_id)`,
		`
CREATE TABLE IF NOT EXISTS order_items (
  id BIGSERIAL PRIMARY KEY,
  order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id BIGINT NOT NULL DEFAULT 0,
  name TEXT NOT NULL DEFAULT '',
  quantity INT NOT NULL DEFAULT 1,
  unit_weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0
)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id)`,
		`
CREATE TABLE IF NOT EXISTS tracking_events (
  id BIGSERIAL PRIMARY KEY,
  order_id BIGINT NOT NULL REFERENCES orders(id),
  courier_id BIGINT NOT NULL REFERENCES couriers(id),
  tracking_id TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL,
  details TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  event_time TIMESTAMPTZ NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_tracking_events_order_id_event_time ON tracking_events(order_id, event_time)`,
		`
CREATE TABLE IF NOT EXISTS shipment_checks (
  order_id BIGINT PRIMARY KEY REFERENCES orders(id),
  courier_name TEXT NOT NULL,
  consignment_id TEXT NOT NULL,
  courier_status TEXT NOT NULL,
  next_check_at TIMESTAMPTZ NOT NULL,
  last_checked_at TIMESTAMPTZ NULL,
  check_fail_count INT NOT NULL DEFAULT 0,
  last_error TEXT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_shipment_checks_next_check_at ON shipment_checks(next_check_at)`,
	}

	for _, q := range stmts {
		if _, err := s.db.Exec(ctx, q); err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}
