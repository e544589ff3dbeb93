package memdispatch

import (
	"time"

	"github.com/BearBump/DispatchBox/internal/models"
)

// PutCustomer stores c, assigning an id when c.ID is zero.
func (s *Store) PutCustomer(c models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.st.next()
	} else if c.ID > s.st.seq {
		s.st.seq = c.ID
	}
	cp := c
	s.st.customers[c.ID] = &cp
	return c
}

// PutOrder stores o with its items. Empty statuses default to pending.
func (s *Store) PutOrder(o models.Order, items ...models.OrderItem) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.st.next()
	} else if o.ID > s.st.seq {
		s.st.seq = o.ID
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.CourierStatus == "" {
		o.CourierStatus = models.CourierStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
		o.UpdatedAt = o.CreatedAt
	}
	s.st.orders[o.ID] = o.Clone()
	for i := range items {
		items[i].OrderID = o.ID
		if items[i].ID == 0 {
			items[i].ID = s.st.next()
		}
	}
	s.st.items[o.ID] = append([]models.OrderItem(nil), items...)
	return o
}

func (s *Store) PutDeliveryPerson(p models.DeliveryPerson) models.DeliveryPerson {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.st.next()
	} else if p.ID > s.st.seq {
		s.st.seq = p.ID
	}
	if p.Status == "" {
		p.Status = models.DeliveryPersonActive
	}
	cp := p
	s.st.persons[p.ID] = &cp
	return p
}

// EventCount returns the number of ledger events for orderID.
func (s *Store) EventCount(orderID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.st.events {
		if e.OrderID == orderID {
			n++
		}
	}
	return n
}
