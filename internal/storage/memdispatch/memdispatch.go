// Package memdispatch is an in-memory implementation of the dispatch storage, used by the
// service tests and by the API in dev mode (no database configured).
package memdispatch

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BearBump/DispatchBox/internal/errs"
	"github.com/BearBump/DispatchBox/internal/models"
	"github.com/BearBump/DispatchBox/internal/storage/dispatchtx"
)

type state struct {
	seq       int64
	orders    map[int64]*models.Order
	customers map[int64]*models.Customer
	items     map[int64][]models.OrderItem
	couriers  map[int64]*models.Courier
	persons   map[int64]*models.DeliveryPerson
	events    []*models.TrackingEvent
	checks    map[int64]*models.ShipmentCheck
}

func newState() *state {
	return &state{
		orders:    make(map[int64]*models.Order),
		customers: make(map[int64]*models.Customer),
		items:     make(map[int64][]models.OrderItem),
		couriers:  make(map[int64]*models.Courier),
		persons:   make(map[int64]*models.DeliveryPerson),
		checks:    make(map[int64]*models.ShipmentCheck),
	}
}

func (s *state) clone() *state {
	c := newState()
	c.seq = s.seq
	for k, v := range s.orders {
		c.orders[k] = v.Clone()
	}
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.items {
		c.items[k] = append([]models.OrderItem(nil), v...)
	}
	for k, v := range s.couriers {
		cp := *v
		c.couriers[k] = &cp
	}
	for k, v := range s.persons {
		cp := *v
		c.persons[k] = &cp
	}
	c.events = make([]*models.TrackingEvent, len(s.events))
	for i, e := range s.events {
		cp := *e
		c.events[i] = &cp
	}
	for k, v := range s.checks {
		cp := *v
		c.checks[k] = &cp
	}
	return c
}

func (s *state) next() int64 {
	s.seq++
	return s.seq
}

type Store struct {
	mu    sync.Mutex
	st    *state
	fails map[string]error
}

func New() *Store {
	return &Store{st: newState(), fails: make(map[string]error)}
}

// FailOn makes the next call of the named operation return err. Used to simulate storage
// failures in tests.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[op] = err
}

func (s *Store) Ping(context.Context) error { return nil }

// WithTx runs fn against a private copy of the state and publishes it only on success.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx dispatchtx.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &view{st: work, fails: s.fails}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// do runs fn against the committed state.
func (s *Store) do(fn func(v *view) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&view{st: s.st, fails: s.fails})
}

// view implements every repository method against one state.
type view struct {
	st    *state
	fails map[string]error
}

var _ dispatchtx.Repository = (*view)(nil)

func (v *view) fail(op string) error {
	if err, ok := v.fails[op]; ok {
		delete(v.fails, op)
		return err
	}
	return nil
}

func (v *view) GetOrderForUpdate(_ context.Context, orderID int64) (*models.Order, error) {
	if err := v.fail("GetOrderForUpdate"); err != nil {
		return nil, err
	}
	o, ok := v.st.orders[orderID]
	if !ok {
		return nil, errs.NotFoundf("get order", "order %d not found", orderID)
	}
	return o.Clone(), nil
}

func (v *view) SaveOrderDispatch(_ context.Context, o *models.Order) error {
	if err := v.fail("SaveOrderDispatch"); err != nil {
		return err
	}
	cur, ok := v.st.orders[o.ID]
	if !ok {
		return errs.NotFoundf("save order", "order %d not found", o.ID)
	}
	n := o.Clone()
	// коммерческие поля не трогаем
	n.CustomerID = cur.CustomerID
	n.Shipping = cur.Shipping
	n.Total = cur.Total
	n.PaymentMethod = cur.PaymentMethod
	n.CreatedAt = cur.CreatedAt
	v.st.orders[o.ID] = n
	return nil
}

func (v *view) GetDeliveryPersonForUpdate(_ context.Context, personID int64) (*models.DeliveryPerson, error) {
	p, ok := v.st.persons[personID]
	if !ok {
		return nil, errs.NotFoundf("get delivery person", "delivery person %d not found", personID)
	}
	cp := *p
	return &cp, nil
}

func (v *view) AdjustDeliveryPersonLoad(_ context.Context, personID int64, currentDelta, totalDelta int) error {
	if err := v.fail("AdjustDeliveryPersonLoad"); err != nil {
		return err
	}
	p, ok := v.st.persons[personID]
	if !ok {
		return errs.NotFoundf("adjust delivery person", "delivery person %d not found", personID)
	}
	p.CurrentOrders = max(p.CurrentOrders+currentDelta, 0)
	p.TotalOrders += totalDelta
	return nil
}

func (v *view) CountOrdersForDeliveryPerson(_ context.Context, personID int64) (int, error) {
	n := 0
	for _, o := range v.st.orders {
		if o.DeliveryPersonID != nil && *o.DeliveryPersonID == personID {
			n++
		}
	}
	return n, nil
}

func (v *view) DeleteDeliveryPerson(_ context.Context, personID int64) error {
	if _, ok := v.st.persons[personID]; !ok {
		return errs.NotFoundf("delete delivery person", "delivery person %d not found", personID)
	}
	delete(v.st.persons, personID)
	return nil
}

func (v *view) AppendTrackingEvent(_ context.Context, e *models.TrackingEvent) error {
	if err := v.fail("AppendTrackingEvent"); err != nil {
		return err
	}
	if _, ok := v.st.orders[e.OrderID]; !ok {
		return errs.NotFoundf("append tracking event", "order %d not found", e.OrderID)
	}
	e.ID = uint64(v.st.next())
	cp := *e
	v.st.events = append(v.st.events, &cp)
	return nil
}

func (v *view) UpsertShipmentCheck(_ context.Context, c *models.ShipmentCheck) error {
	if err := v.fail("UpsertShipmentCheck"); err != nil {
		return err
	}
	cp := *c
	v.st.checks[c.OrderID] = &cp
	return nil
}

func (v *view) RecordShipmentCheckFailure(_ context.Context, orderID int64, checkedAt time.Time, errMsg string, nextCheckAt time.Time) error {
	c, ok := v.st.checks[orderID]
	if !ok {
		return nil
	}
	c.LastCheckedAt = &checkedAt
	c.CheckFailCount++
	c.LastError = &errMsg
	c.NextCheckAt = nextCheckAt
	return nil
}

func (v *view) FinishShipmentCheck(_ context.Context, orderID int64) error {
	delete(v.st.checks, orderID)
	return nil
}

func (s *Store) GetOrder(_ context.Context, orderID int64) (*models.Order, error) {
	var out *models.Order
	err := s.do(func(v *view) error {
		if err := v.fail("GetOrder"); err != nil {
			return err
		}
		o, ok := v.st.orders[orderID]
		if !ok {
			return errs.NotFoundf("get order", "order %d not found", orderID)
		}
		out = o.Clone()
		return nil
	})
	return out, err
}

func (s *Store) GetCustomer(_ context.Context, customerID int64) (*models.Customer, error) {
	var out *models.Customer
	err := s.do(func(v *view) error {
		c, ok := v.st.customers[customerID]
		if !ok {
			return errs.NotFoundf("get customer", "customer %d not found", customerID)
		}
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

func (s *Store) ListOrderItems(_ context.Context, orderID int64) ([]models.OrderItem, error) {
	var out []models.OrderItem
	err := s.do(func(v *view) error {
		out = append(out, v.st.items[orderID]...)
		return nil
	})
	return out, err
}

func (s *Store) GetDeliveryPerson(ctx context.Context, personID int64) (*models.DeliveryPerson, error) {
	var out *models.DeliveryPerson
	err := s.do(func(v *view) error {
		p, err := v.GetDeliveryPersonForUpdate(ctx, personID)
		out = p
		return err
	})
	return out, err
}

func (s *Store) GetOrCreateCourier(_ context.Context, name string, channel models.ChannelType) (*models.Courier, error) {
	var out *models.Courier
	err := s.do(func(v *view) error {
		if err := v.fail("GetOrCreateCourier"); err != nil {
			return err
		}
		for _, c := range v.st.couriers {
			if strings.EqualFold(c.Name, name) {
				cp := *c
				out = &cp
				return nil
			}
		}
		c := &models.Courier{ID: v.st.next(), Name: name, Channel: channel, IsActive: true, CreatedAt: time.Now().UTC()}
		v.st.couriers[c.ID] = c
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

func (s *Store) GetCourier(_ context.Context, courierID int64) (*models.Courier, error) {
	var out *models.Courier
	err := s.do(func(v *view) error {
		c, ok := v.st.couriers[courierID]
		if !ok {
			return errs.NotFoundf("get courier", "courier %d not found", courierID)
		}
		cp := *c
		out = &cp
		return nil
	})
	return out, err
}

func (s *Store) ListTrackingEvents(_ context.Context, orderID int64) ([]*models.TrackingEvent, error) {
	var out []*models.TrackingEvent
	err := s.do(func(v *view) error {
		for _, e := range v.st.events {
			if e.OrderID == orderID {
				cp := *e
				out = append(out, &cp)
			}
		}
		return nil
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, err
}

func (s *Store) GetShipmentCheck(_ context.Context, orderID int64) (*models.ShipmentCheck, bool, error) {
	var (
		out *models.ShipmentCheck
		ok  bool
	)
	err := s.do(func(v *view) error {
		c, found := v.st.checks[orderID]
		if found {
			cp := *c
			out, ok = &cp, true
		}
		return nil
	})
	return out, ok, err
}

func (s *Store) ClaimDueShipmentChecks(_ context.Context, now time.Time, limit int, lease time.Duration) ([]*models.ShipmentCheck, error) {
	var out []*models.ShipmentCheck
	err := s.do(func(v *view) error {
		var due []*models.ShipmentCheck
		for _, c := range v.st.checks {
			if !c.NextCheckAt.After(now) {
				due = append(due, c)
			}
		}
		sort.Slice(due, func(i, j int) bool { return due[i].NextCheckAt.Before(due[j].NextCheckAt) })
		if limit > 0 && len(due) > limit {
			due = due[:limit]
		}
		for _, c := range due {
			c.NextCheckAt = now.Add(lease)
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}
